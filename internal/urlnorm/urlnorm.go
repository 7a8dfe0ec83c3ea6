// Package urlnorm canonicalizes support addresses before export.
package urlnorm

import (
	"net/url"
	"strings"
)

// Prefixes stripped from addresses before comparison and storage, checked
// in this order so "https://www.foo" loses both.
var schemePrefixes = []string{"https://", "http://", "www."}

// Normalizer rewrites addresses to carry a canonical support sub-path.
type Normalizer struct {
	supportPath string
	barePath    string
}

// New creates a normalizer for the given sub-path, e.g. "/login/support/".
func New(supportPath string) *Normalizer {
	return &Normalizer{
		supportPath: supportPath,
		barePath:    strings.Trim(supportPath, "/"),
	}
}

// Clean strips scheme and www prefixes from an address.
func (n *Normalizer) Clean(raw string) string {
	address := strings.TrimSpace(raw)
	if address == "" {
		return ""
	}

	for _, prefix := range schemePrefixes {
		if strings.HasPrefix(address, prefix) {
			address = address[len(prefix):]
		}
	}

	return address
}

// AddSupportPath returns the cleaned address carrying the support sub-path
// exactly once. An address that already contains the sub-path anywhere in
// its path is returned cleaned but otherwise untouched, so the operation
// is idempotent.
func (n *Normalizer) AddSupportPath(raw string) string {
	address := strings.TrimSpace(raw)
	if address == "" {
		return ""
	}

	clean := n.Clean(address)

	// Permissive presence check: a sub-path in the middle of the path counts.
	if strings.Contains(clean, n.supportPath) || strings.HasSuffix(clean, "/"+n.barePath) {
		return clean
	}

	parsed, err := url.Parse("https://" + clean)
	if err != nil || parsed.Host == "" {
		return strings.TrimRight(clean, "/") + n.supportPath
	}

	currentPath := strings.Trim(parsed.Path, "/")

	var newPath string

	switch {
	case strings.Contains(currentPath, n.barePath):
		if currentPath != "" {
			newPath = "/" + currentPath
		}
	case currentPath != "":
		newPath = "/" + currentPath + n.supportPath
	default:
		newPath = n.supportPath
	}

	result := strings.TrimPrefix(parsed.Host, "www.") + newPath

	if parsed.RawQuery != "" {
		result += "?" + parsed.RawQuery
	}

	if parsed.Fragment != "" {
		result += "#" + parsed.Fragment
	}

	return result
}
