// Package renderer turns the exported support-link file into a browsable
// static HTML directory page.
package renderer

import (
	"os"
	"strings"

	"soclinks/internal/logger"
	"soclinks/internal/models"
)

// ParseExportFile reads the semicolon-delimited export file and returns its
// entries. The first line is the column header and is skipped; lines with
// fewer than three fields are dropped silently. A missing or unreadable
// file is logged and yields an empty slice — the caller decides whether
// that is fatal. The format has no quoting, so a field containing ';'
// splits into extra columns.
func ParseExportFile(path string, log *logger.Logger) []models.Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read export file", "path", path, "error", err)
		return nil
	}

	var entries []models.Entry

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) < 3 {
			continue
		}

		owner := ""
		if len(parts) > 3 {
			owner = parts[3]
		}

		entry := models.NewEntry(parts[0], parts[1], parts[2], owner)
		if !entry.HasContent() {
			continue
		}

		entries = append(entries, entry)
	}

	log.Info("export file parsed", "path", path, "entries", len(entries))

	return entries
}
