package renderer

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"soclinks/internal/logger"
	"soclinks/internal/models"
)

// letters is the fixed navigation alphabet, in emit order.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// timestampFormat matches the footer format dd.mm.yyyy hh:mm:ss.
const timestampFormat = "02.01.2006 15:04:05"

// Generator renders grouped entries into a single self-contained HTML page.
//
// The markup fragments are assembled as literal strings and field values are
// written verbatim: markup characters in a name or annotation end up in the
// document unescaped.
type Generator struct {
	entries []models.Entry
	grouped map[string][]models.Entry
	log     *logger.Logger
}

// NewGenerator groups the entries into letter buckets and prepares a generator.
func NewGenerator(entries []models.Entry, log *logger.Logger) *Generator {
	return &Generator{
		entries: entries,
		grouped: groupEntries(entries),
		log:     log,
	}
}

// groupEntries sorts the entries case-insensitively by sort key and buckets
// them by first letter.
func groupEntries(entries []models.Entry) map[string][]models.Entry {
	ordered := make([]models.Entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i].SortKey()) < strings.ToLower(ordered[j].SortKey())
	})

	grouped := make(map[string][]models.Entry)
	for _, entry := range ordered {
		letter := entry.FirstLetter()
		grouped[letter] = append(grouped[letter], entry)
	}

	return grouped
}

// Generate assembles the document and writes it to outputPath in one pass.
func (g *Generator) Generate(outputPath string, now time.Time) error {
	var b strings.Builder

	g.writeHead(&b)
	g.writeNavigation(&b)
	g.writeContent(&b)
	g.writeFooter(&b, now)
	b.WriteString("</body>\n</html>")

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	g.log.Info("HTML file created", "path", outputPath, "entries", len(g.entries))

	return nil
}

func (g *Generator) writeHead(b *strings.Builder) {
	fmt.Fprintf(b, `<!DOCTYPE html>
<html lang="de">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>socialweb Support-Links</title>
  <style>%s
  </style>
  <script>%s
  </script>
</head>
<body>

  <header class="header">
    <div class="header-content">
      <div class="search-container">
        <input type="text" class="search-box" placeholder="Name, Ergänzung oder URL...">
        <span class="search-hint">Ctrl+K</span>
      </div>

      <div class="nav-letters">
`, pageStyles, pageScript)
}

// writeNavigation emits one link or inert placeholder per letter, the
// trailing fallback bucket, and the logout button.
func (g *Generator) writeNavigation(b *strings.Builder) {
	for _, r := range letters {
		letter := string(r)
		if _, ok := g.grouped[letter]; ok {
			fmt.Fprintf(b, "        <a href=\"#%s\">%s</a>\n", letter, letter)
		} else {
			fmt.Fprintf(b, "        <span>%s</span>\n", letter)
		}
	}

	if _, ok := g.grouped[models.FallbackBucket]; ok {
		b.WriteString("        <a href=\"#num\">#</a>\n")
	} else {
		b.WriteString("        <span>#</span>\n")
	}

	b.WriteString("      </div>\n\n")

	fmt.Fprintf(b, `      <a class="logout-button" href="%s" target="_blank" rel="noopener noreferrer">
        SAML Logout
      </a>
    </div>
  </header>

  <main class="content-area">
`, samlLogoutURL)
}

// writeContent emits one section per non-empty bucket in bucket order; the
// "#" bucket sorts before the letters.
func (g *Generator) writeContent(b *strings.Builder) {
	buckets := make([]string, 0, len(g.grouped))
	for letter := range g.grouped {
		buckets = append(buckets, letter)
	}
	sort.Strings(buckets)

	for _, letter := range buckets {
		sectionID := letter
		if letter == models.FallbackBucket {
			sectionID = "num"
		}

		fmt.Fprintf(b, "    <section>\n      <h2 id=\"%s\">%s</h2>\n      <ul>\n", sectionID, letter)

		for _, entry := range g.grouped[letter] {
			g.writeEntry(b, entry)
		}

		b.WriteString("      </ul>\n    </section>\n")
	}
}

func (g *Generator) writeEntry(b *strings.Builder, entry models.Entry) {
	fmt.Fprintf(b, "        <li data-search-text=\"%s\">\n", entry.SearchText())

	if entry.URL != "" {
		fmt.Fprintf(b, "          <a href=\"%s\" target=\"_blank\" class=\"entry-link\">%s</a>\n",
			entry.URL, entry.DisplayName())
	} else {
		fmt.Fprintf(b, "          <span class=\"entry-link\">%s</span>\n", entry.DisplayName())
	}

	if parts := entry.MetaParts(); len(parts) > 0 {
		fmt.Fprintf(b, "          <div class=\"entry-meta\">%s</div>\n", strings.Join(parts, ", "))
	}

	b.WriteString("        </li>\n")
}

func (g *Generator) writeFooter(b *strings.Builder, now time.Time) {
	fmt.Fprintf(b, `  </main>

  <div class="footer-bar">
    Datei erstellt am: %s | Anzahl Einträge: %d
  </div>
`, now.Format(timestampFormat), len(g.entries))
}
