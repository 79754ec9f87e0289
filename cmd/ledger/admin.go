package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pflow-xyz/go-ledger/ledger"
)

func pause(args []string) error {
	fs := flag.NewFlagSet("pause", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger pause <governance>

Toggles the pause switch. While paused, transfers are rejected;
approvals and governance operations keep working.

Example:
  ledger pause treasury`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected <governance>")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.TogglePause(context.Background(), ledger.AccountID(fs.Arg(0))); err != nil {
		return err
	}

	if rt.IsPaused() {
		fmt.Println("Ledger paused")
	} else {
		fmt.Println("Ledger unpaused")
	}
	return nil
}

func governance(args []string) error {
	fs := flag.NewFlagSet("governance", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger governance <subcommand> [arguments]

Subcommands:
  show                       Print the current governance identity
  transfer <caller> <next>   Hand governance to another identity
  renounce <caller>          Give up governance forever

Renouncing is terminal: with no governance identity every privileged
operation is rejected from then on.

Examples:
  ledger governance show
  ledger governance transfer treasury regulator
  ledger governance renounce treasury`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("expected a subcommand")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	switch fs.Arg(0) {
	case "show":
		gov := rt.Governance()
		if gov.IsZero() {
			fmt.Println("Governance: renounced")
		} else {
			fmt.Printf("Governance: %s\n", gov)
		}
		return nil
	case "transfer":
		if fs.NArg() != 3 {
			return fmt.Errorf("expected governance transfer <caller> <next>")
		}
		caller := ledger.AccountID(fs.Arg(1))
		next := ledger.AccountID(fs.Arg(2))
		if err := rt.TransferGovernance(context.Background(), caller, next); err != nil {
			return err
		}
		fmt.Printf("Governance transferred: %s -> %s\n", caller, next)
		return nil
	case "renounce":
		if fs.NArg() != 2 {
			return fmt.Errorf("expected governance renounce <caller>")
		}
		if err := rt.RenounceGovernance(context.Background(), ledger.AccountID(fs.Arg(1))); err != nil {
			return err
		}
		fmt.Println("Governance renounced; privileged operations are disabled forever")
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown governance subcommand: %s", fs.Arg(0))
	}
}

func sanction(args []string) error {
	fs := flag.NewFlagSet("sanction", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger sanction <action> <governance> <target>

Actions:
  block     Target may neither send nor receive
  unblock   Clear the block flag
  freeze    Target may receive but not send
  unfreeze  Clear the freeze flag

The two flags are independent; re-applying or clearing an absent flag
succeeds and is journaled again.

Examples:
  ledger sanction freeze treasury mallory
  ledger sanction unblock treasury alice`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <action> <governance> <target>")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := context.Background()
	caller := ledger.AccountID(fs.Arg(1))
	target := ledger.AccountID(fs.Arg(2))

	switch action := fs.Arg(0); action {
	case "block":
		err = rt.Block(ctx, caller, target)
	case "unblock":
		err = rt.Unblock(ctx, caller, target)
	case "freeze":
		err = rt.Freeze(ctx, caller, target)
	case "unfreeze":
		err = rt.Unfreeze(ctx, caller, target)
	default:
		fs.Usage()
		return fmt.Errorf("unknown sanction action: %s", action)
	}
	if err != nil {
		return err
	}

	info := rt.Account(target)
	fmt.Printf("Account %s: blocked=%t frozen=%t\n", target, info.Blocked, info.Frozen)
	return nil
}
