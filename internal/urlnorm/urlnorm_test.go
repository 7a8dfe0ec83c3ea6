package urlnorm

import "testing"

const supportPath = "/login/support/"

func TestClean(t *testing.T) {
	n := New(supportPath)

	cases := []struct {
		input string
		want  string
	}{
		{"https://foo.socialweb.ch", "foo.socialweb.ch"},
		{"http://foo.socialweb.ch", "foo.socialweb.ch"},
		{"www.foo.socialweb.ch", "foo.socialweb.ch"},
		{"https://www.foo.socialweb.ch", "foo.socialweb.ch"},
		{"  foo.socialweb.ch  ", "foo.socialweb.ch"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := n.Clean(c.input); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestAddSupportPath_Appends(t *testing.T) {
	n := New(supportPath)

	got := n.AddSupportPath("foo.socialweb.ch")
	want := "foo.socialweb.ch/login/support/"

	if got != want {
		t.Errorf("AddSupportPath = %q, want %q", got, want)
	}
}

func TestAddSupportPath_TrailingSlash(t *testing.T) {
	n := New(supportPath)

	got := n.AddSupportPath("pob.socialweb.ch/")
	want := "pob.socialweb.ch/login/support/"

	if got != want {
		t.Errorf("AddSupportPath = %q, want %q", got, want)
	}
}

func TestAddSupportPath_Idempotent(t *testing.T) {
	n := New(supportPath)

	inputs := []string{
		"foo.socialweb.ch",
		"foo.socialweb.ch/portal",
		"https://www.foo.socialweb.ch/portal?tab=1#top",
		"foo.socialweb.ch/login/support/",
	}

	for _, input := range inputs {
		once := n.AddSupportPath(input)

		if twice := n.AddSupportPath(once); twice != once {
			t.Errorf("AddSupportPath(%q) not idempotent: %q then %q", input, once, twice)
		}
	}
}

func TestAddSupportPath_AlreadyPresent(t *testing.T) {
	n := New(supportPath)

	cases := []struct {
		input string
		want  string
	}{
		// Sub-path anywhere in the path counts, not just as a suffix.
		{"foo.socialweb.ch/login/support/extra", "foo.socialweb.ch/login/support/extra"},
		{"foo.socialweb.ch/login/support/", "foo.socialweb.ch/login/support/"},
		{"foo.socialweb.ch/login/support", "foo.socialweb.ch/login/support"},
		{"https://foo.socialweb.ch/login/support/", "foo.socialweb.ch/login/support/"},
	}

	for _, c := range cases {
		if got := n.AddSupportPath(c.input); got != c.want {
			t.Errorf("AddSupportPath(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestAddSupportPath_ExistingPath(t *testing.T) {
	n := New(supportPath)

	got := n.AddSupportPath("foo.socialweb.ch/portal")
	want := "foo.socialweb.ch/portal/login/support/"

	if got != want {
		t.Errorf("AddSupportPath = %q, want %q", got, want)
	}
}

func TestAddSupportPath_QueryAndFragment(t *testing.T) {
	n := New(supportPath)

	got := n.AddSupportPath("foo.socialweb.ch/portal?tab=1#top")
	want := "foo.socialweb.ch/portal/login/support/?tab=1#top"

	if got != want {
		t.Errorf("AddSupportPath = %q, want %q", got, want)
	}
}

func TestAddSupportPath_StripsWWWHost(t *testing.T) {
	n := New(supportPath)

	got := n.AddSupportPath("https://www.foo.socialweb.ch")
	want := "foo.socialweb.ch/login/support/"

	if got != want {
		t.Errorf("AddSupportPath = %q, want %q", got, want)
	}
}

func TestAddSupportPath_Empty(t *testing.T) {
	n := New(supportPath)

	if got := n.AddSupportPath(""); got != "" {
		t.Errorf("AddSupportPath(\"\") = %q, want \"\"", got)
	}

	if got := n.AddSupportPath("   "); got != "" {
		t.Errorf("AddSupportPath(whitespace) = %q, want \"\"", got)
	}
}
