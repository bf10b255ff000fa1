package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"librarian/internal/config"
	"librarian/internal/shell"
	"librarian/pkg/logger"
)

func replCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Starts the interactive catalog shell",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			mgr, err := buildCatalog(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build catalog", zap.Error(err))
			}

			// The banner is only useful to a human at a terminal; piped
			// scripts get straight to the menu output.
			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Println("Welcome to the librarian catalog!")
				fmt.Println()
			}

			sh := shell.New(mgr, os.Stdin, os.Stdout, shell.Options{Trials: cfg.Shell.Trials})
			if err := sh.Run(ctx); err != nil {
				logger.Fatal(ctx, "shell failed", zap.Error(err))
			}
		},
	}
}
