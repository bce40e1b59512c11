package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/config"
	"fashion-catalog/internal/loader"
	"fashion-catalog/internal/models"
	"fashion-catalog/internal/normalizer"
	"fashion-catalog/internal/search"
)

type sourceFlags struct {
	static     []string
	sheets     []string
	sheetBrand string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&s.static, "static", nil, "static brand JSON documents (default from STATIC_FILES/DATA_DIR)")
	cmd.Flags().StringSliceVar(&s.sheets, "sheet", nil, "supplier sheets to normalize and add to the catalog")
	cmd.Flags().StringVarP(&s.sheetBrand, "brand", "b", "", "brand of the --sheet files")
}

// buildCatalog carga los documentos estáticos y añade las hojas normalizadas como importadas
func (s *sourceFlags) buildCatalog(cmd *cobra.Command, opts *rootOptions) (*catalog.Catalog, error) {
	brands, err := opts.brands()
	if err != nil {
		return nil, err
	}
	log := opts.logger(cmd)

	paths := s.static
	if len(paths) == 0 {
		paths = config.LoadConfig().StaticPaths()
	}
	static, err := loader.New(brands, log).LoadFiles(context.Background(), paths)
	if err != nil {
		return nil, err
	}

	if len(s.sheets) > 0 && s.sheetBrand == "" {
		return nil, fmt.Errorf("--brand is required with --sheet")
	}
	norm := normalizer.New(log)
	var imported []models.Product
	for _, path := range s.sheets {
		data, err := readSheet(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		imported = append(imported, norm.Normalize(data, brands.Resolve(s.sheetBrand)).Products...)
	}

	cat := catalog.New(search.NewEngine(brands))
	cat.Replace(static, imported)
	return cat, nil
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		src   sourceFlags
		smart bool
	)
	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Rank catalog products against a free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := src.buildCatalog(cmd, opts)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			if smart {
				return opts.print(cmd.OutOrStdout(), cat.SmartSearch(query))
			}
			return opts.print(cmd.OutOrStdout(), cat.Search(query))
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&smart, "smart", false, "parse category, brand, size and price from the query")
	return cmd
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Answer a French natural-language question about the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := src.buildCatalog(cmd, opts)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), cat.Ask(strings.Join(args, " ")))
		},
	}
	src.register(cmd)
	return cmd
}

func newBrandsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "Print the brand synonym table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brands, err := opts.brands()
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), map[string]any{
				"version": brands.Version(),
				"brands":  brands.Entries(),
			})
		},
	}
}
