// Command catalogctl valida, normaliza y consulta catálogos sin levantar la API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fashion-catalog/internal/logger"
	"fashion-catalog/internal/search"
)

type rootOptions struct {
	brandTable string
	logLevel   string
	compact    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect supplier sheets and query the fashion catalog offline",
		Long: `catalogctl runs the sheet normalizer and the search engine locally:
validate or normalize a CSV/XLSX supplier file, then search or ask questions
against static brand documents and freshly normalized sheets.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.brandTable, "brands", "", "brand synonym table (YAML); embedded table when empty")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "print compact JSON")

	root.AddCommand(
		newValidateCmd(opts),
		newNormalizeCmd(opts),
		newSearchCmd(opts),
		newAskCmd(opts),
		newBrandsCmd(opts),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	return logger.New(logger.Options{Level: o.logLevel, Output: cmd.ErrOrStderr(), Service: "catalogctl"})
}

func (o *rootOptions) brands() (*search.BrandTable, error) {
	return search.LoadBrandTableFile(o.brandTable)
}

func (o *rootOptions) print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
