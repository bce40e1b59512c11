package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fashion-catalog/internal/normalizer"
	"fashion-catalog/internal/sheet"
)

func readSheet(path string) ([][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheet.Read(path, f)
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a supplier sheet has an identifier and a price column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSheet(args[0])
			if err != nil {
				return err
			}
			format := normalizer.DetectFormat(data)
			result := normalizer.ValidationResult{Valid: true}
			if format != normalizer.FormatGrouped {
				result = normalizer.Validate(data)
			}
			if err := opts.print(cmd.OutOrStdout(), map[string]any{"format": format, "validation": result}); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("invalid sheet: %s", result.Message)
			}
			return nil
		},
	}
}

func newNormalizeCmd(opts *rootOptions) *cobra.Command {
	var brand string
	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Convert a supplier sheet into canonical products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brands, err := opts.brands()
			if err != nil {
				return err
			}
			data, err := readSheet(args[0])
			if err != nil {
				return err
			}
			res := normalizer.New(opts.logger(cmd)).Normalize(data, brands.Resolve(brand))
			return opts.print(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&brand, "brand", "b", "", "brand of the sheet (required)")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}
