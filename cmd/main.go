// Package main is the CLI entrypoint for the librarian catalog. It wires
// the subcommands, loads configuration and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarian/internal/config"
	"librarian/internal/seed"
	"librarian/library"
	"librarian/pkg/logger"
)

// buildCatalog constructs the manager and applies the configured seed data.
func buildCatalog(ctx context.Context, cfg *config.Config) (*library.Manager, error) {
	mgr := library.NewManager()

	if cfg.Seed.Builtin {
		if err := seed.Builtin().Apply(mgr); err != nil {
			return nil, err
		}
	}
	if cfg.Seed.Path != "" {
		f, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return nil, err
		}
		if err := f.Apply(mgr); err != nil {
			return nil, err
		}
		logger.Info(ctx, "seed file applied", zap.String("path", cfg.Seed.Path))
	}

	return mgr, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "librarian",
		Short: "Book catalog and lending tracker",
	}

	// cobra only parses flags during Execute, which is too late for the
	// config the subcommand constructors need. The config path is therefore
	// read with the standard flag package first; the cobra flag below only
	// keeps Execute from rejecting it.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config file path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	rootCmd.AddCommand(
		replCommand(cfg),
		listCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1)
	}
}
