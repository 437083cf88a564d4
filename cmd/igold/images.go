package main

import (
	"fmt"

	"igold/scraper/internal/config"
	"igold/scraper/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewImagesCmd creates the images command.
func NewImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Download every image referenced by an exported workbook",
		Long: `Images reads the Images sheet of a workbook produced by scrape and
downloads each referenced binary into a local directory. Filenames come from
the URL's final path segment, with a hash-derived fallback.`,
		RunE: runImages,
	}

	cmd.Flags().String("input", "", "workbook to read image URLs from (overrides config)")

	return cmd
}

func runImages(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = cfg.Output.File
	}

	app := container.New(cfg)
	if err := app.RunImages(cmd.Context(), input); err != nil {
		return err
	}

	log.Info("Image download completed successfully")
	return nil
}
