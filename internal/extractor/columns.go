package extractor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound is returned when a required field has no matching column.
var ErrColumnNotFound = errors.New("no column matches required field")

// ColumnMap resolves the four record fields to workbook column indexes.
type ColumnMap struct {
	Name       int
	Annotation int
	URL        int
	Owner      int
}

// ResolveColumns maps the header row to the required fields using
// case-insensitive substring matching. The name field must not claim a
// column whose header also mentions the annotation keyword ("Ergänzung
// Anzeigename" is the annotation column, not the name column).
func ResolveColumns(header []string) (*ColumnMap, error) {
	cm := &ColumnMap{Name: -1, Annotation: -1, URL: -1, Owner: -1}

	fields := []struct {
		name     string
		keywords []string
		index    *int
	}{
		{"anzeigename", []string{"anzeigename"}, &cm.Name},
		{"ergaenzung", []string{"ergänzung"}, &cm.Annotation},
		{"webadresse", []string{"webadresse"}, &cm.URL},
		{"projektleitung", []string{"projekt", "zuständigkeit"}, &cm.Owner},
	}

	for _, field := range fields {
		for i, column := range header {
			lower := strings.ToLower(column)

			if !matchesAny(lower, field.keywords) {
				continue
			}

			if field.name == "anzeigename" && strings.Contains(lower, "ergänzung") {
				continue
			}

			*field.index = i

			break
		}

		if *field.index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, field.name)
		}
	}

	return cm, nil
}

func matchesAny(column string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(column, keyword) {
			return true
		}
	}

	return false
}
