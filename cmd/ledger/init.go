package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-ledger/ledger"
)

func initLedger(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	governance := fs.String("governance", "", "governance account identity (required)")

	// Each metadata flag defaults independently, so overriding one keeps
	// the defaults for the others.
	def := ledger.DefaultMetadata()
	name := fs.String("name", def.Name, "token name")
	symbol := fs.String("symbol", def.Symbol, "token symbol")
	decimals := fs.Uint("decimals", uint(def.Decimals), "token decimals")

	var accounts []ledger.InitialAccount
	fs.Func("account", "seed balance as account=amount (repeatable)", func(v string) error {
		id, raw, ok := strings.Cut(v, "=")
		if !ok || id == "" {
			return fmt.Errorf("expected account=amount, got %q", v)
		}
		amount, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("bad amount in %q: %w", v, err)
		}
		accounts = append(accounts, ledger.InitialAccount{
			Account: ledger.AccountID(id),
			Balance: amount,
		})
		return nil
	})

	fs.Usage = func() {
		fmt.Println(`Usage: ledger init --governance <account> [--account id=amount ...]

Seeds the ledger balances and installs the governance identity. Runs
exactly once per deployment.

Examples:
  ledger init --governance treasury
  ledger init --governance treasury --account alice=1000 --account bob=500
  ledger init --governance treasury --name "Digital Euro" --symbol DEUR --decimals 6`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *governance == "" {
		fs.Usage()
		return fmt.Errorf("--governance is required")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	meta := ledger.Metadata{Name: *name, Symbol: *symbol, Decimals: uint8(*decimals)}
	if err := rt.Init(context.Background(), accounts, ledger.AccountID(*governance), meta); err != nil {
		return err
	}

	fmt.Printf("Initialized ledger: %d seeded accounts, supply %d, governance %s\n",
		len(accounts), rt.TotalSupply(), rt.Governance())
	return nil
}
