// Package main is a terminal viewer demonstrating virtualized block
// rendering: a Session lays out a block document at one layout unit
// per terminal row, and only the visible slice is ever drawn.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/textgeom"
	"github.com/dshills/textgeom/blocklayout"
	"github.com/dshills/textgeom/core"
	"github.com/dshills/textgeom/style"
	"github.com/dshills/textgeom/viewport"
)

type options struct {
	DocPath    string
	StylePath  string
	LineHeight float64
	Overscan   int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	blocks, err := loadBlocks(opts.DocPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg := blocklayout.Config{LineHeight: opts.LineHeight, Styles: style.Default()}
	if opts.StylePath != "" {
		sheet, err := style.LoadSheet(opts.StylePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = blocklayout.ConfigFromSheet(sheet, opts.LineHeight)
	}

	session := textgeom.NewSession(cfg, blocks, textgeom.WithOverscan(opts.Overscan))

	u, err := newUI(session, blocks, opts.LineHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer u.shutdown()

	if opts.StylePath != "" {
		stop, err := watchStyles(opts.StylePath, u)
		if err != nil {
			u.shutdown()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer stop()
	}

	// Quit cleanly on SIGINT/SIGTERM so the terminal is restored.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		u.quit()
	}()

	if err := u.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadBlocks(path string) ([]core.Block, error) {
	if path == "" {
		return sampleDocument(), nil
	}
	return LoadDocument(path)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.DocPath, "doc", "", "Path to a JSON block document")
	flag.StringVar(&opts.DocPath, "d", "", "Path to a JSON block document (shorthand)")
	flag.StringVar(&opts.StylePath, "styles", "", "Path to a TOML style sheet (watched for changes)")
	flag.StringVar(&opts.StylePath, "s", "", "Path to a TOML style sheet (shorthand)")
	flag.Float64Var(&opts.LineHeight, "line-height", 1, "Rows per line of a plain paragraph")
	flag.IntVar(&opts.Overscan, "overscan", viewport.DefaultOverscan, "Blocks rendered beyond the visible range on each side")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textgeom-demo - virtualized block layout viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textgeom-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textgeom-demo                          View the built-in sample\n")
		fmt.Fprintf(os.Stderr, "  textgeom-demo -doc notes.json          View a document\n")
		fmt.Fprintf(os.Stderr, "  textgeom-demo -s styles.toml           Live-reload styles on save\n")
		fmt.Fprintf(os.Stderr, "\nKeys: arrows/jk scroll, PgUp/PgDn page, Home/End jump, q quits\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("textgeom-demo %s\n", textgeom.VersionTag())
		os.Exit(0)
	}

	if opts.LineHeight <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -line-height must be positive, got %v\n", opts.LineHeight)
		os.Exit(1)
	}
	if opts.Overscan < 0 {
		opts.Overscan = 0
	}

	return opts
}
