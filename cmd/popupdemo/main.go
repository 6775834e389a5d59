// Package main provides the entry point for popupdemo.
//
// popupdemo is a bubbletea program showing triggerable popups: a hover
// menu on a toolbar, a delegated tooltip over a list, click menus and a
// focus popup with suggestions.
//
// Usage:
//
//	popupdemo [--config path] [--log-file path] [--verbose] [--disabled]
//	popupdemo config [--format yaml|toml|json]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riordanpawley/popup/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
