package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pflow-xyz/go-ledger/ledger"
)

func transfer(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger transfer <from> <to> <amount>

Moves tokens from the caller's balance to the receiver. Rejected while
the ledger is paused or either party is sanctioned.

Example:
  ledger transfer alice bob 25`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <from> <to> <amount>")
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

	from := ledger.AccountID(fs.Arg(0))
	to := ledger.AccountID(fs.Arg(1))
	if err := rt.Transfer(context.Background(), from, to, amount); err != nil {
		return err
	}

	fmt.Printf("Transferred %d: %s (%d) -> %s (%d)\n",
		amount, from, rt.Account(from).Balance, to, rt.Account(to).Balance)
	return nil
}

func transferFrom(args []string) error {
	fs := flag.NewFlagSet("transfer-from", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger transfer-from <spender> <owner> <to> <amount>

Moves tokens from the owner's balance on the spender's allowance. The
owner and receiver must pass the same checks as a direct transfer; the
spender's own sanction flags are not consulted.

Example:
  ledger transfer-from exchange alice bob 25`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return fmt.Errorf("expected <spender> <owner> <to> <amount>")
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

	spender := ledger.AccountID(fs.Arg(0))
	owner := ledger.AccountID(fs.Arg(1))
	to := ledger.AccountID(fs.Arg(2))
	if err := rt.TransferFrom(context.Background(), spender, owner, to, amount); err != nil {
		return err
	}

	fmt.Printf("Transferred %d from %s to %s via %s (allowance left: %d)\n",
		amount, owner, to, spender, rt.Allowance(owner, spender))
	return nil
}

func approve(args []string) error {
	fs := flag.NewFlagSet("approve", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger approve <owner> <spender> <amount>

Sets the spender's allowance over the owner's balance. Overwrites any
prior allowance; zero revokes it.

Example:
  ledger approve alice exchange 100`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <owner> <spender> <amount>")
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

	owner := ledger.AccountID(fs.Arg(0))
	spender := ledger.AccountID(fs.Arg(1))
	if err := rt.Approve(context.Background(), owner, spender, amount); err != nil {
		return err
	}

	fmt.Printf("Approved: %s may spend %d of %s's balance\n", spender, amount, owner)
	return nil
}
