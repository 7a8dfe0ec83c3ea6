// Package main provides the extractor command-line tool that converts the
// support workbook into the semicolon-delimited export file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"soclinks/internal/config"
	"soclinks/internal/extractor"
	"soclinks/internal/logger"
	"soclinks/internal/models"
	"soclinks/internal/preview"
)

const defaultConfigPath = "configs/soclinks.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Path to input workbook (overrides config)")
	output := flag.String("output", "", "Path to output export file (overrides config)")
	sheet := flag.Int("sheet", -1, "Workbook sheet index (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *input != "" {
		cfg.Pipeline.InputWorkbook = *input
	}

	if *output != "" {
		cfg.Pipeline.ExportFile = *output
	}

	if *sheet >= 0 {
		cfg.Pipeline.SheetIndex = *sheet
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	workDir, _ := os.Getwd()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("socialweb URL Extractor")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Working directory: %s\n", workDir)
	fmt.Printf("Input file: %s\n", cfg.Pipeline.InputWorkbook)
	fmt.Printf("Output file: %s\n", cfg.Pipeline.ExportFile)
	fmt.Println(strings.Repeat("=", 60))

	if _, statErr := os.Stat(cfg.Pipeline.InputWorkbook); statErr != nil {
		fmt.Printf("\n❌ Error: file %q not found!\n", cfg.Pipeline.InputWorkbook)
		fmt.Printf("Please ensure the workbook is in the current directory:\n  %s\n", workDir)
		os.Exit(1)
	}

	ext := extractor.New(cfg, log)

	entries, err := ext.Run(cfg.Pipeline.InputWorkbook, cfg.Pipeline.ExportFile, cfg.Pipeline.SheetIndex)
	if err != nil {
		log.Error("extraction failed", "error", err)
		fmt.Println("\n❌ Processing failed. Check logs above.")
		os.Exit(1)
	}

	fmt.Printf("\n📊 Unique entries: %d\n", len(entries))
	printPreview(entries)

	fmt.Println("\n✅ Success! Export file ready for the renderer.")
}

// printPreview shows the first few exported entries as an aligned table.
func printPreview(entries []models.Entry) {
	if len(entries) == 0 {
		return
	}

	limit := 5
	if len(entries) < limit {
		limit = len(entries)
	}

	rows := make([][]string, 0, limit)
	for _, entry := range entries[:limit] {
		rows = append(rows, []string{entry.Name, entry.Annotation, entry.URL, entry.Owner})
	}

	fmt.Printf("\nFirst %d entries:\n", limit)
	fmt.Print(preview.Table([]string{"Anzeigename", "Ergänzung", "Webadresse", "Zuständigkeit"}, rows))
}

// loadConfig loads the given config file, probes the default location when
// none is given, and falls back to the compiled-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.DefaultConfig(), nil
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	return config.LoadConfig(path)
}

func printUsage() {
	fmt.Println("Usage: ./bin/extractor [OPTIONS]")
	fmt.Println()
	fmt.Println("Reads the support workbook and writes the semicolon-delimited")
	fmt.Println("export file consumed by the renderer.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/extractor")
	fmt.Println("  ./bin/extractor -input liste.xlsx -sheet 1")
	fmt.Println("  ./bin/extractor -config configs/soclinks.yaml")
}
