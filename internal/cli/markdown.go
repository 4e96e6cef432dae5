package cli

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const markdownWidth = 80

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. A fixed style avoids the terminal queries WithAutoStyle makes.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown falls back to the raw text when glamour fails.
func renderMarkdown(md string, width int, noColor bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle(noColor)
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle(noColor bool) string {
	if noColor {
		return "notty"
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKBOARD_MD_STYLE"))) {
	case "light":
		return "light"
	case "notty", "ascii":
		return "notty"
	default:
		return "dark"
	}
}
