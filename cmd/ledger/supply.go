package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pflow-xyz/go-ledger/ledger"
)

func mint(args []string) error {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger mint <governance> <to> <amount>

Creates new tokens on the receiver's account and grows the total
supply. The caller must be the governance identity.

Example:
  ledger mint treasury alice 1000`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <governance> <to> <amount>")
	}
	amount, err := parseAmount(fs.Arg(2))
	if err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	caller := ledger.AccountID(fs.Arg(0))
	to := ledger.AccountID(fs.Arg(1))
	if err := rt.Mint(context.Background(), caller, to, amount); err != nil {
		return err
	}

	fmt.Printf("Minted %d to %s (total supply: %d)\n", amount, to, rt.TotalSupply())
	return nil
}

func burn(args []string) error {
	fs := flag.NewFlagSet("burn", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger burn <governance> <amount>

Destroys tokens from the governance identity's own balance and shrinks
the total supply.

Example:
  ledger burn treasury 500`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <governance> <amount>")
	}
	amount, err := parseAmount(fs.Arg(1))
	if err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	caller := ledger.AccountID(fs.Arg(0))
	if err := rt.Burn(context.Background(), caller, amount); err != nil {
		return err
	}

	fmt.Printf("Burned %d (total supply: %d)\n", amount, rt.TotalSupply())
	return nil
}

func forceTransfer(args []string) error {
	fs := flag.NewFlagSet("force-transfer", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger force-transfer <governance> <from> <to> <amount>

Seizes tokens by governance decree. Ignores the pause switch and any
sanction flags on either account; only the source balance is checked.

Example:
  ledger force-transfer treasury mallory custody 900`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return fmt.Errorf("expected <governance> <from> <to> <amount>")
	}
	amount, err := parseAmount(fs.Arg(3))
	if err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	caller := ledger.AccountID(fs.Arg(0))
	from := ledger.AccountID(fs.Arg(1))
	to := ledger.AccountID(fs.Arg(2))
	if err := rt.ForceTransfer(context.Background(), caller, from, to, amount); err != nil {
		return err
	}

	fmt.Printf("Force-transferred %d: %s -> %s\n", amount, from, to)
	return nil
}
