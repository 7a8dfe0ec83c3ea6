// Package models defines data structures for the extractor and renderer.
package models

import (
	"sort"
	"strings"
	"unicode"
)

// FallbackBucket collects entries whose sort key does not start with a
// Latin letter.
const FallbackBucket = "#"

// Entry represents one support-link directory entry.
type Entry struct {
	Name       string
	Annotation string
	URL        string
	Owner      string
}

// NewEntry builds an entry from raw export-file fields. Every field is
// trimmed, and the address gets an https:// prefix when it carries no scheme.
func NewEntry(name, annotation, address, owner string) Entry {
	e := Entry{
		Name:       strings.TrimSpace(name),
		Annotation: strings.TrimSpace(annotation),
		URL:        strings.TrimSpace(address),
		Owner:      strings.TrimSpace(owner),
	}

	if e.URL != "" && !strings.HasPrefix(e.URL, "http://") && !strings.HasPrefix(e.URL, "https://") {
		e.URL = "https://" + e.URL
	}

	return e
}

// HasContent reports whether the entry carries a name or an address.
func (e Entry) HasContent() bool {
	return e.Name != "" || e.URL != ""
}

// SortKey returns the string used for ordering and grouping: the name when
// present, otherwise the scheme-stripped address.
func (e Entry) SortKey() string {
	if e.Name != "" {
		return e.Name
	}

	return stripScheme(e.URL)
}

// DisplayName returns the label shown for the entry.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}

	return stripScheme(e.URL)
}

// URLDisplay returns the address without its scheme, for the meta line.
func (e Entry) URLDisplay() string {
	if e.URL == "" {
		return ""
	}

	return stripScheme(e.URL)
}

// FirstLetter returns the bucket the entry belongs to: an uppercase Latin
// letter, or FallbackBucket for anything else (digits, symbols, empty).
func (e Entry) FirstLetter() string {
	key := e.SortKey()
	if key == "" {
		return FallbackBucket
	}

	first := unicode.ToUpper([]rune(key)[0])
	if first >= 'A' && first <= 'Z' {
		return string(first)
	}

	return FallbackBucket
}

// SearchText returns the space-joined text used for client-side filtering.
func (e Entry) SearchText() string {
	return e.Name + " " + e.Annotation + " " + stripScheme(e.URL)
}

// MetaParts returns the non-empty pieces of the meta line, in display order.
func (e Entry) MetaParts() []string {
	var parts []string

	if e.Annotation != "" {
		parts = append(parts, e.Annotation)
	}

	if display := e.URLDisplay(); display != "" {
		parts = append(parts, display)
	}

	return parts
}

func stripScheme(address string) string {
	address = strings.ReplaceAll(address, "https://", "")

	return strings.ReplaceAll(address, "http://", "")
}

// EntrySet is a set of entries keyed by the exact field tuple. Two entries
// differing only by case are distinct members.
type EntrySet struct {
	members map[Entry]struct{}
}

// NewEntrySet creates an empty entry set.
func NewEntrySet() *EntrySet {
	return &EntrySet{members: make(map[Entry]struct{})}
}

// Add inserts the entry; inserting an identical tuple twice is a no-op.
func (s *EntrySet) Add(e Entry) {
	s.members[e] = struct{}{}
}

// Len returns the number of distinct entries.
func (s *EntrySet) Len() int {
	return len(s.members)
}

// Sorted returns the members ordered case-insensitively by name. Ties are
// broken on the remaining fields so the export order is deterministic.
func (s *EntrySet) Sorted() []Entry {
	entries := make([]Entry, 0, len(s.members))
	for e := range s.members {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}

		if a.Name != b.Name {
			return a.Name < b.Name
		}

		if a.Annotation != b.Annotation {
			return a.Annotation < b.Annotation
		}

		if a.URL != b.URL {
			return a.URL < b.URL
		}

		return a.Owner < b.Owner
	})

	return entries
}
