package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes records to w as JSON Lines, one record per line.
func WriteJSONL(w io.Writer, recs []*Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ExportJSONL writes records to a JSONL file.
func ExportJSONL(filename string, recs []*Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := WriteJSONL(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSONL parses records from a JSONL reader. Empty lines are skipped.
func ReadJSONL(r io.Reader) ([]*Record, error) {
	var recs []*Record
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec := &Record{}
		if err := json.Unmarshal(line, rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return recs, nil
}

// ImportJSONL parses records from a JSONL file.
func ImportJSONL(filename string) ([]*Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadJSONL(f)
}
