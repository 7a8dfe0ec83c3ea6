// Package extractor reads support addresses from a workbook and exports
// them as a semicolon-delimited text file.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"soclinks/internal/config"
	"soclinks/internal/logger"
	"soclinks/internal/models"
	"soclinks/internal/urlnorm"
)

// Extraction errors.
var (
	ErrSheetOutOfRange = errors.New("sheet index out of range")
	ErrEmptyWorkbook   = errors.New("workbook contains no rows")
)

// Extractor runs the workbook-to-export stage.
type Extractor struct {
	cfg  *config.Config
	log  *logger.Logger
	norm *urlnorm.Normalizer
}

// New creates an extractor for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Extractor {
	return &Extractor{
		cfg:  cfg,
		log:  log,
		norm: urlnorm.New(cfg.Filter.SupportPath),
	}
}

// Run reads the workbook sheet, extracts matching rows, merges the curated
// entries and writes the export file. It returns the exported entries in
// file order. The file is written only after the full set is built, so a
// failed run leaves no partial output.
func (e *Extractor) Run(inputPath, outputPath string, sheetIndex int) ([]models.Entry, error) {
	rows, err := e.loadRows(inputPath, sheetIndex)
	if err != nil {
		return nil, err
	}

	columns, err := ResolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	e.log.Info("columns resolved",
		"anzeigename", rows[0][columns.Name],
		"webadresse", rows[0][columns.URL])

	set := e.extractEntries(rows[1:], columns)

	for _, curated := range e.cfg.Entries {
		entry := models.Entry{
			Name:       curated.Name,
			Annotation: curated.Annotation,
			URL:        e.norm.AddSupportPath(curated.URL),
			Owner:      curated.Owner,
		}
		set.Add(entry)
		e.log.Debug("curated entry added", "name", entry.Name, "url", entry.URL)
	}

	entries := set.Sorted()

	if err := e.writeExport(outputPath, entries); err != nil {
		return nil, err
	}

	e.log.Info("export file written", "path", outputPath, "entries", len(entries))

	return entries, nil
}

// loadRows opens the workbook and returns all rows of the selected sheet.
func (e *Extractor) loadRows(path string, sheetIndex int) ([][]string, error) {
	e.log.Info("loading workbook", "path", path, "sheet_index", sheetIndex)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetIndex < 0 || sheetIndex >= len(sheets) {
		return nil, fmt.Errorf("%w: %d (workbook has %d sheets)", ErrSheetOutOfRange, sheetIndex, len(sheets))
	}

	rows, err := f.GetRows(sheets[sheetIndex])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[sheetIndex], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrEmptyWorkbook, sheets[sheetIndex])
	}

	e.log.Info("workbook loaded", "sheet", sheets[sheetIndex], "rows", len(rows))

	return rows, nil
}

// extractEntries filters the data rows by domain, splits multi-address
// cells and normalizes each address into an entry. Rows without the domain
// are skipped, not errors.
func (e *Extractor) extractEntries(rows [][]string, columns *ColumnMap) *models.EntrySet {
	set := models.NewEntrySet()
	domain := strings.ToLower(e.cfg.Filter.Domain)
	matched := 0

	for _, row := range rows {
		address := cellValue(row, columns.URL)
		if !strings.Contains(strings.ToLower(address), domain) {
			continue
		}

		matched++

		name := strings.TrimSpace(cellValue(row, columns.Name))
		annotation := strings.TrimSpace(cellValue(row, columns.Annotation))

		owner := strings.TrimSpace(cellValue(row, columns.Owner))
		if owner == "" {
			owner = e.cfg.Filter.OwnerFallback
		}

		// One cell may list several comma-separated addresses.
		for _, piece := range strings.Split(address, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" || !strings.Contains(strings.ToLower(piece), domain) {
				continue
			}

			entry := models.Entry{
				Name:       name,
				Annotation: annotation,
				URL:        e.norm.AddSupportPath(piece),
				Owner:      owner,
			}
			set.Add(entry)
			e.log.Debug("entry extracted", "name", entry.Name, "url", entry.URL)
		}
	}

	e.log.Info("rows processed", "matching", matched, "unique", set.Len())

	return set
}

// writeExport writes the header line followed by one semicolon-joined line
// per entry. The format has no quoting: a field containing ';' or a newline
// will not round-trip.
func (e *Extractor) writeExport(path string, entries []models.Entry) error {
	var b strings.Builder

	b.WriteString(e.cfg.Export.Header)
	b.WriteString("\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "%s;%s;%s;%s\n", entry.Name, entry.Annotation, entry.URL, entry.Owner)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// cellValue returns the cell at index i, or "" when the row is short.
// excelize trims trailing empty cells, so short rows are common.
func cellValue(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return row[i]
}
