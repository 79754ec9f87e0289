package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-ledger/journal"
)

func events(args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	topic := fs.String("topic", "", "only show events with this topic")
	from := fs.Int("from", 0, "start at this journal version")
	fs.Usage = func() {
		fmt.Println(`Usage: ledger events [--topic <topic>] [--from <version>]

Prints the journaled event timeline in version order.

Examples:
  ledger events
  ledger events --topic transfer
  ledger events --from 10`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	recs, err := rt.Events(context.Background(), *from)
	if err != nil {
		return err
	}

	shown := 0
	for _, rec := range recs {
		if *topic != "" && rec.Topic != *topic {
			continue
		}
		fmt.Printf("%4d  %s  %-24s %s\n",
			rec.Version, rec.Timestamp.Format(time.RFC3339), rec.Topic, rec.Data)
		shown++
	}
	fmt.Printf("%d events\n", shown)
	return nil
}

func export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output file (default: stdout)")
	from := fs.Int("from", 0, "start at this journal version")
	fs.Usage = func() {
		fmt.Println(`Usage: ledger export [--out <file>] [--from <version>]

Writes the journal as JSON Lines, one record per line.

Examples:
  ledger export
  ledger export --out ledger.jsonl`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	recs, err := rt.Events(context.Background(), *from)
	if err != nil {
		return err
	}

	if *out == "" {
		return journal.WriteJSONL(os.Stdout, recs)
	}
	if err := journal.ExportJSONL(*out, recs); err != nil {
		return err
	}
	fmt.Printf("Exported %d records to %s\n", len(recs), *out)
	return nil
}
