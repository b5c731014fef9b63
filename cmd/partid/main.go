// Command partid suggests announcement part IDs and readings for Japanese
// text, manages the user vocabulary and proposes renames for audio files.
//
//	partid suggest まもなく 名古屋行き
//	partid dict add -surface 新幹線 -reading しんかんせん -romaji shinkansen -type 列車種別
//	partid rename ./sounds | sh
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"

	"github.com/tassa-yoniso-manasi-karoto/go-partid"
)

const usage = `usage: partid [-config file] [-debug] <command> [args]

commands:
  suggest [-existing a,b] <text>...   reading, romaji hint and ID
  reading <text>...                   kana reading only
  segment <text>                      dump the token stream
  dict list [-q query] [-type label]
  dict add -surface s -reading r -romaji x -type label [-short id]
  dict remove <surface>
  dict import <file.json>
  dict export [file.json]
  dict reset
  dict stats
  rename <dir>                        print mv commands for audio files
`

var audioExts = map[string]bool{
	".wav": true, ".mp3": true, ".ogg": true, ".m4a": true, ".aac": true, ".flac": true,
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("partid: %v", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("partid", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (default: XDG config partid/config.yaml)")
	debug := fs.Bool("debug", false, "log analyzer lifecycle to stderr")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	level := zerolog.WarnLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	partid.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	engine, err := cfg.newEngine()
	if err != nil {
		return err
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "suggest":
		return suggestCmd(ctx, engine, rest, out)
	case "reading":
		if len(rest) == 0 {
			return errors.New("reading: missing text")
		}
		for _, text := range rest {
			fmt.Fprintln(out, engine.Reading(ctx, text))
		}
		return nil
	case "segment":
		if len(rest) != 1 {
			return errors.New("segment: expected exactly one text")
		}
		tokens := engine.Tokenize(ctx, rest[0])
		fmt.Fprintln(out, tokens.Tokenized())
		pp.BufferFoldThreshold = 100000
		_, err := pp.Fprintln(out, tokens)
		return err
	case "dict":
		return dictCmd(engine.Dictionary(), rest, out)
	case "rename":
		if len(rest) != 1 {
			return errors.New("rename: expected a directory")
		}
		lines, err := renameCommands(ctx, engine, rest[0])
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		return nil
	}
	fs.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func suggestCmd(ctx context.Context, e *partid.Engine, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	existingFlag := fs.String("existing", "", "comma separated IDs already in use")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("suggest: missing text")
	}
	existing := partid.ExistingIDs(splitList(*existingFlag)...)
	for _, text := range fs.Args() {
		s := e.Suggest(ctx, text, existing)
		existing[s.ID] = true
		fmt.Fprintf(out, "%s\t%s\n", color.Green.Sprint(s.ID), s.Hint(text))
		fmt.Fprintln(out, color.Cyan.Sprintf("  %s  [%s]", s.RomajiHint, s.Engine))
		fmt.Fprintf(out, "  %s\n", s.Breakdown)
	}
	return nil
}

func dictCmd(d *partid.Dictionary, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("dict: missing subcommand")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		fs := flag.NewFlagSet("dict list", flag.ContinueOnError)
		query := fs.String("q", "", "filter on surface, reading or romaji")
		typ := fs.String("type", "", "category label or name")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var cat *partid.Category
		if *typ != "" {
			c, err := partid.ParseCategory(*typ)
			if err != nil {
				return err
			}
			cat = &c
		}
		for _, e := range d.Entries(*query, cat) {
			mark := " "
			if e.IsCustom {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s\t%s\t%s\t%s\t%s\n", mark, e.Surface, e.Reading, e.Romaji, e.Category.Label(), e.Short)
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("dict add", flag.ContinueOnError)
		var e partid.Entry
		var typ string
		fs.StringVar(&e.Surface, "surface", "", "surface form")
		fs.StringVar(&e.Reading, "reading", "", "kana reading")
		fs.StringVar(&e.Romaji, "romaji", "", "romanization")
		fs.StringVar(&typ, "type", partid.CategoryNoun.Label(), "category label or name")
		fs.StringVar(&e.Short, "short", "", "short form used in IDs")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c, err := partid.ParseCategory(typ)
		if err != nil {
			return err
		}
		e.Category = c
		if err := d.Add(e); err != nil {
			return err
		}
		fmt.Fprintln(out, color.Green.Sprintf("added %s", e.Surface))
		return nil
	case "remove":
		if len(rest) != 1 {
			return errors.New("dict remove: expected a surface")
		}
		if err := d.Remove(rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(out, color.Green.Sprintf("removed %s", rest[0]))
		return nil
	case "import":
		if len(rest) != 1 {
			return errors.New("dict import: expected a file")
		}
		data, err := os.ReadFile(rest[0])
		if err != nil {
			return err
		}
		report, err := d.ImportJSON(data)
		if err != nil {
			return err
		}
		msg := color.Green.Sprintf("imported %d entries", report.Added+report.Overwritten)
		if report.Overwritten > 0 {
			msg += color.Yellow.Sprintf(" (%d overwritten)", report.Overwritten)
		}
		fmt.Fprintln(out, msg)
		return nil
	case "export":
		data, err := d.Export()
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			_, err = out.Write(data)
			return err
		}
		return os.WriteFile(rest[0], data, 0o644)
	case "reset":
		if err := d.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(out, color.Yellow.Sprint("user dictionary cleared"))
		return nil
	case "stats":
		s := d.Stats()
		fmt.Fprintf(out, "builtin: %d\ncustom:  %d\ntotal:   %d\n", s.Builtin, s.Custom, s.Total)
		return nil
	}
	return fmt.Errorf("dict: unknown subcommand %q", sub)
}

// renameCommands proposes an ID-based name for every audio file in dir.
// Files that already carry their ID are left alone but reserve it.
func renameCommands(ctx context.Context, e *partid.Engine, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.Type().IsRegular() && audioExts[ext] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	existing := map[string]bool{}
	var lines []string
	for _, name := range names {
		ext := filepath.Ext(name)
		id := e.IDFromFileName(ctx, name, existing)
		existing[id] = true
		target := id + strings.ToLower(ext)
		if target == name {
			continue
		}
		lines = append(lines, "mv "+shellescape.Quote(filepath.Join(dir, name))+" "+shellescape.Quote(filepath.Join(dir, target)))
	}
	return lines, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
