package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/pflow-xyz/go-ledger/ledger"
)

func status(args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Usage: ledger status

Prints the token metadata, supply, governance, pause state, every
account with its sanction flags, and all standing allowances.`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	snap := rt.Snapshot()
	if !snap.Initialized {
		fmt.Println("Ledger is not initialized. Run 'ledger init' first.")
		return nil
	}

	fmt.Printf("%s (%s), %d decimals\n", snap.Metadata.Name, snap.Metadata.Symbol, snap.Metadata.Decimals)
	fmt.Printf("Total supply: %d\n", snap.Supply)
	if snap.Governance.IsZero() {
		fmt.Println("Governance:   renounced")
	} else {
		fmt.Printf("Governance:   %s\n", snap.Governance)
	}
	fmt.Printf("Paused:       %t\n", snap.Paused)
	fmt.Printf("Journal:      version %d\n", rt.Version())

	ids := make([]ledger.AccountID, 0, len(snap.Accounts))
	for id := range snap.Accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Printf("\nAccounts (%d):\n", len(ids))
	for _, id := range ids {
		info := snap.Accounts[id]
		line := fmt.Sprintf("  %-20s %12d", id, info.Balance)
		if info.Blocked {
			line += "  BLOCKED"
		}
		if info.Frozen {
			line += "  FROZEN"
		}
		fmt.Println(line)
	}

	if len(snap.Allowances) > 0 {
		fmt.Println("\nAllowances:")
		owners := make([]ledger.AccountID, 0, len(snap.Allowances))
		for owner := range snap.Allowances {
			owners = append(owners, owner)
		}
		sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
		for _, owner := range owners {
			spenders := make([]ledger.AccountID, 0, len(snap.Allowances[owner]))
			for spender := range snap.Allowances[owner] {
				spenders = append(spenders, spender)
			}
			sort.Slice(spenders, func(i, j int) bool { return spenders[i] < spenders[j] })
			for _, spender := range spenders {
				fmt.Printf("  %s -> %s: %d\n", owner, spender, snap.Allowances[owner][spender])
			}
		}
	}
	return nil
}
