// Command parser converts a vocabulary spreadsheet exported as CSV
// (surface,reading,romaji,type,short) into the JSON accepted by
// "partid dict import".
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"

	"github.com/tassa-yoniso-manasi-karoto/go-partid"
)

func main() {
	input := flag.String("input", "vocabulary.csv", "CSV file with a header row")
	output := flag.String("output", "", "destination JSON file (default: stdout)")
	dump := flag.Bool("dump", false, "pretty-print the parsed entries to stderr")
	flag.Parse()

	entries, err := LoadVocabularyCSV(*input)
	if err != nil {
		color.Redln("parser:", err)
		os.Exit(1)
	}
	if *dump {
		pp.BufferFoldThreshold = 100000
		pp.Fprintln(os.Stderr, entries)
	}

	// validation and encoding are those of the dictionary itself
	d := partid.NewDictionary(nil)
	if _, err := d.Import(entries); err != nil {
		color.Redln("parser:", err)
		os.Exit(1)
	}
	data, err := d.Export()
	if err != nil {
		color.Redln("parser:", err)
		os.Exit(1)
	}
	if *output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		color.Redln("parser:", err)
		os.Exit(1)
	}
	color.Greenf("wrote %d entries to %s\n", len(entries), *output)
}

// LoadVocabularyCSV loads vocabulary entries from a CSV file
func LoadVocabularyCSV(csvPath string) (map[string]partid.Entry, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return ParseVocabularyCSV(file)
}

// ParseVocabularyCSV reads rows of surface,reading,romaji,type[,short]
// after a header row. The type column takes a category label or name.
func ParseVocabularyCSV(r io.Reader) (map[string]partid.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	entries := make(map[string]partid.Entry)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 columns, got %d", line, len(record))
		}
		surface := strings.TrimSpace(record[0])
		if surface == "" || strings.HasPrefix(surface, "#") {
			continue
		}
		cat, err := partid.ParseCategory(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		e := partid.Entry{
			Surface:  surface,
			Reading:  strings.TrimSpace(record[1]),
			Romaji:   strings.TrimSpace(record[2]),
			Category: cat,
		}
		if len(record) > 4 {
			e.Short = strings.TrimSpace(record[4])
		}
		entries[surface] = e
	}
	return entries, nil
}
