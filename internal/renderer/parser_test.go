package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"soclinks/internal/logger"
)

func writeExportFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing export file: %v", err)
	}

	return path
}

func TestParseExportFile(t *testing.T) {
	path := writeExportFile(t, "Anzeigename;Ergänzung;Webadresse;Zuständigkeit\n"+
		"Max Muster;;foo.socialweb.ch/login/support/;Unbekannt\n"+
		"\n"+
		"Handbuch;Handbuch;handbuch.socialweb.ch/login/support/;Handbuch\n")

	entries := ParseExportFile(path, logger.NewLogger("error"))

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	if entries[0].Name != "Max Muster" {
		t.Errorf("Name = %q, want Max Muster", entries[0].Name)
	}

	if entries[0].URL != "https://foo.socialweb.ch/login/support/" {
		t.Errorf("URL = %q, want https:// prefix added", entries[0].URL)
	}

	if entries[0].Owner != "Unbekannt" {
		t.Errorf("Owner = %q, want Unbekannt", entries[0].Owner)
	}
}

func TestParseExportFile_HeaderOnly(t *testing.T) {
	path := writeExportFile(t, "Anzeigename;Ergänzung;Webadresse;Zuständigkeit\n")

	if entries := ParseExportFile(path, logger.NewLogger("error")); len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestParseExportFile_ShortLines(t *testing.T) {
	path := writeExportFile(t, "header\n"+
		"nur;zwei\n"+
		"Drei Felder;X;drei.socialweb.ch\n")

	entries := ParseExportFile(path, logger.NewLogger("error"))

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 (two-field line dropped)", len(entries))
	}

	// A three-field line gets an implicit empty owner.
	if entries[0].Owner != "" {
		t.Errorf("Owner = %q, want empty", entries[0].Owner)
	}
}

func TestParseExportFile_NameAndURLEmpty(t *testing.T) {
	path := writeExportFile(t, "header\n"+
		";nur ergänzung;;Besitzer\n")

	if entries := ParseExportFile(path, logger.NewLogger("error")); len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0 (no name, no url)", len(entries))
	}
}

func TestParseExportFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	if entries := ParseExportFile(path, logger.NewLogger("error")); entries != nil {
		t.Errorf("entries = %v, want nil for missing file", entries)
	}
}
