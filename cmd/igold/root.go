package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the scraper CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "igold",
		Short: "Scrape the igold.bg merchant catalog",
		Long: `igold crawls the igold.bg precious-metal catalog: categories,
subcategories, products, vendors and images. The result is written as an
Excel workbook; a separate pass downloads the referenced images.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewImagesCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
