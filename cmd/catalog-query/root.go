package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository/backend"
	"wardrobe-catalog/pkg/catalogquery"
	"wardrobe-catalog/pkg/log"
)

type queryFlags struct {
	source    string
	category  string
	brand     string
	color     string
	condition string
	lifecycle string
	search    string
	minPrice  int64
	maxPrice  int64
	sort      string
	limit     int
	offset    int
	facets    bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	var f queryFlags

	cmd := &cobra.Command{
		Use:   "catalog-query [file|-]",
		Short: "Filter and sort a wardrobe or marketplace JSON export",
		Long: `Reads a backend JSON export (a bare array or an object with items, listings,
results or data), normalizes it and prints the filtered, sorted records as JSON.
With --facets it prints the filter options and wardrobe stats instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runQuery(cmd, f, path)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.source, "source", string(catalog.SourceWardrobe), "payload kind: wardrobe or marketplace")
	fs.StringVar(&f.category, "category", "", "exact category")
	fs.StringVar(&f.brand, "brand", "", "brand substring, case-insensitive")
	fs.StringVar(&f.color, "color", "", "color substring, case-insensitive")
	fs.StringVar(&f.condition, "condition", "", "exact condition (New, LikeNew, Good, Fair, Worn)")
	fs.StringVar(&f.lifecycle, "lifecycle", "", "exact lifecycle (Active, Listed, Sold, Donated, Discarded)")
	fs.StringVar(&f.search, "search", "", "substring of title or description")
	fs.Int64Var(&f.minPrice, "min-price", 0, "minimum price in cents, inclusive")
	fs.Int64Var(&f.maxPrice, "max-price", 0, "maximum price in cents, inclusive")
	fs.StringVar(&f.sort, "sort", "", "field-direction, e.g. price-desc or listed_on-asc")
	fs.IntVar(&f.limit, "limit", 0, "max records to print (0 = all)")
	fs.IntVar(&f.offset, "offset", 0, "records to skip")
	fs.BoolVar(&f.facets, "facets", false, "print filter options and stats instead of records")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level written to stderr")

	return cmd
}

type queryOutput struct {
	Total   int                   `json:"total"`
	Matched int                   `json:"matched"`
	Items   []catalogquery.Record `json:"items"`
}

type facetsOutput struct {
	Facets  catalogquery.Facets  `json:"facets"`
	Summary catalogquery.Summary `json:"summary"`
}

func runQuery(cmd *cobra.Command, f queryFlags, path string) error {
	ctx := cmd.Context()
	l := log.Init(log.ZapConfig{Level: f.logLevel, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, Stderr: true})

	src := catalog.Source(f.source)
	if src != catalog.SourceWardrobe && src != catalog.SourceMarketplace {
		return fmt.Errorf("unknown --source %q", f.source)
	}

	body, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	records, err := backend.DecodeRecords(src, body)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	l.Debugf(ctx, "catalog-query: decoded %d %s records from %s", len(records), src, path)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if f.facets {
		return enc.Encode(facetsOutput{
			Facets:  catalogquery.BuildFacets(records),
			Summary: catalogquery.Summarize(records),
		})
	}

	filters, err := f.filters(cmd)
	if err != nil {
		return err
	}
	sort, err := catalogquery.ParseSortSpec(f.sort)
	if err != nil {
		return fmt.Errorf("--sort: %w", err)
	}

	matched := catalogquery.Query(records, filters, sort)
	l.Debugf(ctx, "catalog-query: %d of %d matched, sort=%q", len(matched), len(records), sort.String())

	return enc.Encode(queryOutput{
		Total:   len(records),
		Matched: len(matched),
		Items:   catalogquery.Page(matched, f.limit, f.offset),
	})
}

// filters only sets a price bound when its flag was given, so 0 stays distinct from unset.
func (f queryFlags) filters(cmd *cobra.Command) (catalogquery.Filters, error) {
	out := catalogquery.Filters{
		Category:   f.category,
		Brand:      f.brand,
		Color:      f.color,
		Condition:  catalogquery.Condition(f.condition),
		Lifecycle:  catalogquery.Lifecycle(f.lifecycle),
		SearchText: f.search,
	}

	var pr catalogquery.PriceRange
	if cmd.Flags().Changed("min-price") {
		pr.Min = catalogquery.Int64(f.minPrice)
	}
	if cmd.Flags().Changed("max-price") {
		pr.Max = catalogquery.Int64(f.maxPrice)
	}
	if pr.Min != nil || pr.Max != nil {
		if lo, hi := pr.Bounds(); lo < 0 || lo > hi {
			return out, fmt.Errorf("invalid price range [%d, %d]", lo, hi)
		}
		out.PriceRange = &pr
	}
	return out, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
