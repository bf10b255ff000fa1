package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarian/internal/config"
	"librarian/pkg/logger"
)

func listCommand(cfg *config.Config) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Prints the catalog and exits",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			mgr, err := buildCatalog(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build catalog", zap.Error(err))
			}

			books := mgr.BooksWithPrefix(prefix)
			if len(books) == 0 {
				fmt.Println("No books in library.")
				return
			}

			fmt.Printf("%-20s %-10s %-15s %-10s\n", "Name", "ID", "Quantity", "Borrowed")
			fmt.Println(strings.Repeat("-", 60))
			for _, b := range books {
				fmt.Println(b.Describe())
			}
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list books whose name starts with this prefix")

	return cmd
}
