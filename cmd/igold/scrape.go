package main

import (
	"fmt"

	"igold/scraper/internal/config"
	"igold/scraper/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Crawl the catalog and export it as an Excel workbook",
		Long: `Scrape crawls categories, subcategories and product detail pages
sequentially and writes the normalized result to an Excel workbook with
Categories, Subcategories, Products, Images and Vendors sheets.

Examples:
  # Full crawl
  igold scrape

  # Restrict to one category by name or id; writes the test workbook
  igold scrape --category Сребро
  igold scrape --category 2 --output silver.xlsx`,
		RunE: runScrape,
	}

	cmd.Flags().String("category", "", "restrict the crawl to a single category (name or id)")
	cmd.Flags().String("output", "", "output workbook path (overrides config)")

	return cmd
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	category, _ := cmd.Flags().GetString("category")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output.File
		if category != "" {
			output = cfg.Output.TestFile
		}
	}

	log.Infof("Starting igold scraper (base URL: %s)", cfg.Site.BaseURL)

	app := container.New(cfg)
	if err := app.RunCrawl(cmd.Context(), category, output); err != nil {
		return err
	}

	log.Info("Scraping completed successfully")
	return nil
}
