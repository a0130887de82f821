// Package main is the entry point for the tasklist CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	dataDir, err := app.ResolveDataDir(dataDirFromArgs(args))
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(dataDir)
	if err != nil {
		// Allow help, version and the config template without a usable store
		if canRunWithoutStore(args) {
			rootCmd := cli.NewRootCommand(nil, version)
			rootCmd.SetArgs(args)
			return rootCmd.Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// dataDirFromArgs returns the --data-dir value, which is needed before
// cobra parses the command line.
func dataDirFromArgs(args []string) string {
	flag := "--" + cli.DataDirFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}

func canRunWithoutStore(args []string) bool {
	positional := positionalArgs(args)
	if len(positional) > 0 && positional[0] == "help" {
		return true
	}
	if len(positional) >= 2 && positional[0] == "config" && positional[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// positionalArgs drops --data-dir and its value so subcommands can be
// matched wherever the flag appears.
func positionalArgs(args []string) []string {
	flag := "--" + cli.DataDirFlag
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == flag:
			i++
		case strings.HasPrefix(args[i], flag+"="):
		default:
			out = append(out, args[i])
		}
	}
	return out
}
