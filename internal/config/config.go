// Package config provides configuration management for the support-link pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputWorkbook   = errors.New("pipeline.input_workbook is required")
	ErrInvalidSheetIndex      = errors.New("pipeline.sheet_index must be non-negative")
	ErrMissingExportFile      = errors.New("pipeline.export_file is required")
	ErrMissingHTMLFile        = errors.New("pipeline.html_file is required")
	ErrMissingDomain          = errors.New("filter.domain is required")
	ErrInvalidSupportPath     = errors.New("filter.support_path must start and end with '/'")
	ErrMissingOwnerFallback   = errors.New("filter.owner_fallback is required")
	ErrMissingExportHeader    = errors.New("export.header is required")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrEntryMissingNameAndURL = errors.New("curated entry needs a name or a url")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Filter   FilterConfig   `yaml:"filter"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
	Entries  []CuratedEntry `yaml:"entries"`
}

// PipelineConfig names the files the two stages operate on, resolved
// relative to the working directory.
type PipelineConfig struct {
	InputWorkbook string `yaml:"input_workbook"`
	SheetIndex    int    `yaml:"sheet_index"`
	ExportFile    string `yaml:"export_file"`
	HTMLFile      string `yaml:"html_file"`
}

// FilterConfig defines how workbook rows are selected and normalized.
type FilterConfig struct {
	Domain        string `yaml:"domain"`
	SupportPath   string `yaml:"support_path"`
	OwnerFallback string `yaml:"owner_fallback"`
}

// ExportConfig defines the export file format.
type ExportConfig struct {
	Header string `yaml:"header"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CuratedEntry is a manually maintained entry merged into every export.
type CuratedEntry struct {
	Name       string `yaml:"name"`
	Annotation string `yaml:"annotation"`
	URL        string `yaml:"url"`
	Owner      string `yaml:"owner"`
}

// DefaultConfig returns the built-in configuration used when no YAML file
// is present.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputWorkbook: "input.xlsx",
			SheetIndex:    0,
			ExportFile:    "socialweb_export.txt",
			HTMLFile:      "soc-support-tenant-liste.html",
		},
		Filter: FilterConfig{
			Domain:        "socialweb.ch",
			SupportPath:   "/login/support/",
			OwnerFallback: "Unbekannt",
		},
		Export: ExportConfig{
			Header: "Anzeigename;Ergänzung Anzeigename;Webadresse Geschäftlich;Projektleitung / Zuständigkeit",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Entries: []CuratedEntry{
			{Name: "Oberli Pascal", Annotation: "POB", URL: "pob.socialweb.ch/", Owner: "Oberli Pascal"},
			{Name: "Fonseka Pius", Annotation: "PIF", URL: "pif.socialweb.ch/", Owner: "Fonseka Pius"},
			{Name: "Flückiger Simon", Annotation: "SIM", URL: "sim.socialweb.ch/", Owner: "Flückiger Simon"},
			{Name: "Lehmann Sandra", Annotation: "SAL", URL: "sal.socialweb.ch/", Owner: "Lehmann Sandra"},
			{Name: "Ambrosetti Chiara", Annotation: "CHA", URL: "cha.socialweb.ch/", Owner: "Ambrosetti Chiara"},
			{Name: "Moix Xenia", Annotation: "XEM", URL: "xem.socialweb.ch/", Owner: "Moix Xenia"},
			{Name: "Toma Marijana", Annotation: "MAT", URL: "mat.socialweb.ch/", Owner: "Toma Marijana"},
			{Name: "Daniel Schmocker", Annotation: "DAS", URL: "das.socialweb.ch/", Owner: "Daniel Schmocker"},
			{Name: "Team", Annotation: "Team", URL: "team.socialweb.ch/", Owner: "Team"},
			{Name: "Standard", Annotation: "Standard", URL: "standard.socialweb.ch/", Owner: "Standard"},
			{Name: "Handbuch", Annotation: "Handbuch", URL: "handbuch.socialweb.ch/", Owner: "Handbuch"},
		},
	}
}

// LoadConfig loads configuration from a YAML file layered over the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.InputWorkbook == "" {
		return ErrMissingInputWorkbook
	}

	if c.Pipeline.SheetIndex < 0 {
		return ErrInvalidSheetIndex
	}

	if c.Pipeline.ExportFile == "" {
		return ErrMissingExportFile
	}

	if c.Pipeline.HTMLFile == "" {
		return ErrMissingHTMLFile
	}

	if c.Filter.Domain == "" {
		return ErrMissingDomain
	}

	if !strings.HasPrefix(c.Filter.SupportPath, "/") || !strings.HasSuffix(c.Filter.SupportPath, "/") {
		return ErrInvalidSupportPath
	}

	if c.Filter.OwnerFallback == "" {
		return ErrMissingOwnerFallback
	}

	if c.Export.Header == "" {
		return ErrMissingExportHeader
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	for i, entry := range c.Entries {
		if entry.Name == "" && entry.URL == "" {
			return fmt.Errorf("%w: entries[%d]", ErrEntryMissingNameAndURL, i)
		}
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Workbook: %s, Export: %s, HTML: %s, Entries: %d}",
		c.Pipeline.InputWorkbook,
		c.Pipeline.ExportFile,
		c.Pipeline.HTMLFile,
		len(c.Entries),
	)
}
