// Package main provides the renderer command-line tool that turns the
// export file into the static support-link directory page.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"soclinks/internal/config"
	"soclinks/internal/logger"
	"soclinks/internal/renderer"
)

const defaultConfigPath = "configs/soclinks.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Path to input export file (overrides config)")
	output := flag.String("output", "", "Path to output HTML file (overrides config)")
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
		cfg.Pipeline.ExportFile = *input
	}

	if *output != "" {
		cfg.Pipeline.HTMLFile = *output
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	workDir, _ := os.Getwd()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("socialweb HTML Generator")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Working directory: %s\n", workDir)
	fmt.Printf("Input file: %s\n", cfg.Pipeline.ExportFile)
	fmt.Printf("Output file: %s\n", cfg.Pipeline.HTMLFile)
	fmt.Println(strings.Repeat("=", 60))

	entries := renderer.ParseExportFile(cfg.Pipeline.ExportFile, log)
	if len(entries) == 0 {
		log.Error("no entries to process", "path", cfg.Pipeline.ExportFile)
		fmt.Println("\n❌ Generation failed. Check logs above.")
		os.Exit(1)
	}

	gen := renderer.NewGenerator(entries, log)
	if err := gen.Generate(cfg.Pipeline.HTMLFile, time.Now()); err != nil {
		log.Error("generation failed", "error", err)
		fmt.Println("\n❌ Generation failed. Check logs above.")
		os.Exit(1)
	}

	fmt.Printf("\n📊 Entries rendered: %d\n", len(entries))
	fmt.Println("\n✅ HTML file successfully created!")
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
	fmt.Println("Usage: ./bin/renderer [OPTIONS]")
	fmt.Println()
	fmt.Println("Reads the semicolon-delimited export file and writes a single")
	fmt.Println("self-contained HTML directory page.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/renderer")
	fmt.Println("  ./bin/renderer -input socialweb_export.txt -output liste.html")
}
