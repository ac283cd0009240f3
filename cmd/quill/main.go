// Package main is the command-line entry point for the Quill editing
// engine. It exposes the engine's file and formatting surface without
// any terminal UI: formatting files in place, printing buffer
// contents, and reporting line counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quilledit/quill/internal/config"
	"github.com/quilledit/quill/internal/engine/editor"
	"github.com/quilledit/quill/internal/format"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
		timeout     time.Duration
	)
	flag.StringVar(&configPath, "config", defaultConfigPath(), "path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "formatter timeout")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println("quill", version)
		return 0
	}

	args := flag.Args()
	if len(args) < 2 {
		usage()
		return 2
	}
	command, files := args[0], args[1:]

	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, file := range files {
		if err := runCommand(command, file, settings, timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", file, err)
			return 1
		}
	}
	return 0
}

func runCommand(command, file string, settings config.Settings, timeout time.Duration) error {
	registry, err := format.NewRegistryFromCommands(settings.Formatters)
	if err != nil {
		return err
	}

	ed := editor.New(
		editor.WithFormatters(registry),
		editor.WithTabWidth(settings.TabWidth),
		editor.WithTrimOnSave(settings.TrimTrailingWhitespace),
	)
	if err := ed.Open(file); err != nil {
		return err
	}

	switch command {
	case "fmt":
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := ed.Format(ctx); err != nil {
			return err
		}
		return ed.Save()

	case "cat":
		fmt.Print(ed.Text())
		return nil

	case "lines":
		fmt.Printf("%s: %d\n", file, ed.LineCount())
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "config.toml")
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: quill [flags] <command> <file>...

Commands:
  fmt     format files with the configured formatter and save
  cat     print file contents as loaded by the engine
  lines   print line counts

Flags:
`)
	flag.PrintDefaults()
}
