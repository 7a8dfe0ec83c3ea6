package models

import "testing"

func TestNewEntry_SchemePrefix(t *testing.T) {
	e := NewEntry("Max Muster", "", "foo.socialweb.ch/login/support/", "Unbekannt")

	if e.URL != "https://foo.socialweb.ch/login/support/" {
		t.Errorf("URL = %q, want https:// prefix added", e.URL)
	}

	e = NewEntry("", "", "http://foo.socialweb.ch", "")
	if e.URL != "http://foo.socialweb.ch" {
		t.Errorf("URL = %q, existing scheme must be kept", e.URL)
	}

	e = NewEntry("Nur Name", "", "", "")
	if e.URL != "" {
		t.Errorf("URL = %q, empty address must stay empty", e.URL)
	}
}

func TestEntry_HasContent(t *testing.T) {
	if (Entry{}).HasContent() {
		t.Error("empty entry must not have content")
	}

	if !(Entry{Name: "A"}).HasContent() {
		t.Error("entry with name must have content")
	}

	if !(Entry{URL: "https://a.ch"}).HasContent() {
		t.Error("entry with url must have content")
	}
}

func TestEntry_SortKey(t *testing.T) {
	e := Entry{Name: "Max Muster", URL: "https://foo.socialweb.ch"}
	if e.SortKey() != "Max Muster" {
		t.Errorf("SortKey = %q, want name", e.SortKey())
	}

	e = Entry{URL: "https://example.ch"}
	if e.SortKey() != "example.ch" {
		t.Errorf("SortKey = %q, want scheme-stripped url", e.SortKey())
	}
}

func TestEntry_FirstLetter(t *testing.T) {
	cases := []struct {
		entry Entry
		want  string
	}{
		{Entry{Name: "Max Muster"}, "M"},
		{Entry{Name: "max muster"}, "M"},
		{Entry{URL: "https://example.ch"}, "E"},
		{Entry{Name: "123 Projekt"}, "#"},
		{Entry{Name: "-dash"}, "#"},
		{Entry{}, "#"},
	}

	for _, c := range cases {
		if got := c.entry.FirstLetter(); got != c.want {
			t.Errorf("FirstLetter(%+v) = %q, want %q", c.entry, got, c.want)
		}
	}
}

func TestEntry_SearchText(t *testing.T) {
	e := NewEntry("Max Muster", "MM", "foo.socialweb.ch/login/support/", "")

	want := "Max Muster MM foo.socialweb.ch/login/support/"
	if got := e.SearchText(); got != want {
		t.Errorf("SearchText = %q, want %q", got, want)
	}
}

func TestEntry_MetaParts(t *testing.T) {
	e := NewEntry("Max Muster", "MM", "foo.socialweb.ch", "")

	parts := e.MetaParts()
	if len(parts) != 2 || parts[0] != "MM" || parts[1] != "foo.socialweb.ch" {
		t.Errorf("MetaParts = %v, want [MM foo.socialweb.ch]", parts)
	}

	e = NewEntry("Nur Name", "", "", "")
	if parts := e.MetaParts(); len(parts) != 0 {
		t.Errorf("MetaParts = %v, want empty", parts)
	}
}

func TestEntrySet_Dedupe(t *testing.T) {
	set := NewEntrySet()

	entry := Entry{Name: "Max", Annotation: "MM", URL: "foo.socialweb.ch/login/support/", Owner: "X"}
	set.Add(entry)
	set.Add(entry)

	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1 after duplicate insert", set.Len())
	}

	// Case differences are distinct members.
	upper := entry
	upper.Name = "MAX"
	set.Add(upper)

	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2 for case-differing tuples", set.Len())
	}
}

func TestEntrySet_SortedCaseInsensitive(t *testing.T) {
	set := NewEntrySet()
	set.Add(Entry{Name: "zebra"})
	set.Add(Entry{Name: "Anton"})
	set.Add(Entry{Name: "berta"})

	sorted := set.Sorted()

	want := []string{"Anton", "berta", "zebra"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("Sorted[%d].Name = %q, want %q", i, sorted[i].Name, name)
		}
	}
}
