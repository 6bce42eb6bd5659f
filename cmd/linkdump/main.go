// Copyright (c) 2024 The morloc project contributors

// linkdump is a developer debug aid, not a supported CLI (the linking
// pass has no user-facing command-line surface — see SPEC_FULL.md's
// Non-goals). It loads a YAML tree fixture, runs the linking pass
// over it, and either dumps the resulting manifold table as JSON or
// evaluates a single gjson query against it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/echa/log"

	"github.com/morloc-lang/manifold-link/diag"
	"github.com/morloc-lang/manifold-link/internal/fixture"
	"github.com/morloc-lang/manifold-link/link"
	"github.com/morloc-lang/manifold-link/manifold"
)

var errExit = errors.New("exit")

var (
	srcFlag       string
	queryFlag     string
	normalizeFlag bool
)

func init() {
	flag.StringVar(&srcFlag, "src", "", "path to a YAML tree fixture")
	flag.StringVar(&queryFlag, "query", "", "optional gjson path to evaluate against the linked table")
	flag.BoolVar(&normalizeFlag, "normalize-names", false, "normalize default function names to snake_case")
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errExit) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	if srcFlag == "" {
		flag.Usage()
		return errExit
	}

	data, err := os.ReadFile(srcFlag)
	if err != nil {
		return err
	}
	top, err := fixture.Load(data)
	if err != nil {
		return err
	}

	sink := diag.NewLogSink(log.Log)
	link.Run(top, sink, link.Options{NormalizeNames: normalizeFlag})

	table := manifold.New(top)
	if queryFlag != "" {
		val, ok, err := table.Query(queryFlag)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("query %q matched nothing", queryFlag)
		}
		fmt.Println(val)
		return nil
	}

	buf, err := table.Snapshot()
	if err != nil {
		return err
	}
	os.Stdout.Write(buf)
	fmt.Println()
	return nil
}
