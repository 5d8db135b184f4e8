package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-portal/internal/db"
	"github.com/jonathan/cv-portal/internal/export"
	"github.com/jonathan/cv-portal/internal/i18n"
	"github.com/jonathan/cv-portal/internal/preview"
)

var (
	exportLocale string
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export <cv-id>",
	Short: "Export a CV to PDF",
	Long:  `Render a CV to PDF using the same derived view-model the on-screen preview uses, and write it to a file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportLocale, "locale", "en", "Locale for date and label formatting")
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "Directory to write the PDF into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	cvID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid CV id %q: %w", args[0], err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	cv, err := database.GetCV(ctx, cvID)
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}
	if cv == nil {
		return fmt.Errorf("CV %s not found", cvID)
	}

	categories, err := database.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	bundle := i18n.NewBundle(exportLocale)
	translationsDir := os.Getenv("TRANSLATIONS_DIR")
	if translationsDir == "" {
		translationsDir = "translations"
	}
	if err := bundle.LoadDir(translationsDir); err != nil {
		log.Printf("[I18N] No translations loaded: %v", err)
	}

	derived := preview.Derive(*cv, categories, exportLocale, bundle.Translator(exportLocale))

	pdf, fileName, err := export.NewExporter().Export(ctx, cvID, derived)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	outPath := filepath.Join(exportOutDir, fileName)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Exported %s (%d bytes)\n", outPath, len(pdf))
	return nil
}
