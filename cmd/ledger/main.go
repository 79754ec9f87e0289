package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "init":
		if err := initLedger(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "transfer":
		if err := transfer(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "transfer-from":
		if err := transferFrom(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "approve":
		if err := approve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mint":
		if err := mint(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "burn":
		if err := burn(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "force-transfer":
		if err := forceTransfer(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "pause":
		if err := pause(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "governance":
		if err := governance(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sanction":
		if err := sanction(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "status":
		if err := status(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "events":
		if err := events(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "export":
		if err := export(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("ledger version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ledger - governed fungible-token ledger

Usage:
  ledger <command> [arguments]

Commands:
  init            Initialize the ledger with seeded balances and governance
  transfer        Transfer tokens between accounts
  transfer-from   Transfer tokens on an approved allowance
  approve         Approve a spender allowance
  mint            Mint new tokens (governance)
  burn            Burn tokens from the governance balance (governance)
  force-transfer  Seize tokens bypassing sanctions (governance)
  pause           Toggle the pause switch (governance)
  governance      Show, transfer or renounce governance
  sanction        Freeze, unfreeze, block or unblock an account (governance)
  status          Show the current ledger state
  events          Show the journaled event timeline
  export          Export the journal as JSON Lines
  help            Show this help
  version         Show version

Environment:
  LEDGER_DB         SQLite journal database (default: ledger.db)
  LEDGER_SNAPSHOT   State snapshot file (default: ledger.snapshot.json)
  LEDGER_STREAM     Journal stream name (default: ledger)
  LEDGER_LOG_LEVEL  Log level (default: info)

Run 'ledger <command> -h' for command details.`)
}
