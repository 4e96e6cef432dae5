// Package publish renders tasks as markdown pages and writes them to a directory tree.
package publish

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
)

const dateLayout = "2006-01-02"

type RenderOptions struct {
	IncludeArchived bool
	// Now decides the OVERDUE / TODAY badges. Zero means no badges.
	Now time.Time
}

func RenderTaskMarkdown(t model.Task, opt RenderOptions) (string, error) {
	if strings.TrimSpace(t.ID) == "" {
		return "", fmt.Errorf("missing task id")
	}
	if t.IsArchive && !opt.IncludeArchived {
		return "", fmt.Errorf("task archived (use --include-archived): %s", t.ID)
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + title(t))
	writeLn("")

	writeLn("## Meta")
	writeLn("")
	writeLn("- ID: " + t.ID)
	due := "none"
	if t.DueDate != nil {
		due = t.DueDate.Format(dateLayout)
	}
	writeLn("- Due: " + due)
	repeats := "never"
	if days := t.Repeating.Days(); len(days) > 0 {
		repeats = strings.Join(days, ", ")
	}
	writeLn("- Repeats: " + repeats)
	writeLn("- Color: " + string(t.Color))
	writeLn("- Favorite: " + yesNo(t.IsFavorite))
	writeLn("- Archived: " + yesNo(t.IsArchive))
	if b := badges(t, opt.Now); len(b) > 0 {
		writeLn("- Status: " + strings.Join(b, ", "))
	}

	return buf.String(), nil
}

// RenderIndexMarkdown lists ts in the given order, linking every page written next to it.
func RenderIndexMarkdown(ts []model.Task, f model.FilterType, st model.SortType) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Tasks (%s, %s)\n\n", f, st)
	if len(ts) == 0 {
		buf.WriteString("_No tasks._\n")
		return buf.String()
	}
	for _, t := range ts {
		line := fmt.Sprintf("- [%s](tasks/%s.md)", title(t), t.ID)
		if t.DueDate != nil {
			line += " · " + t.DueDate.Format(dateLayout)
		}
		if t.IsFavorite {
			line += " ★"
		}
		buf.WriteString(line + "\n")
	}
	return buf.String()
}

func badges(t model.Task, now time.Time) []string {
	if now.IsZero() {
		return nil
	}
	var out []string
	for _, f := range []model.FilterType{model.FilterOverdue, model.FilterToday, model.FilterRepeating} {
		if filters.Match(f, t, now) {
			out = append(out, string(f))
		}
	}
	return out
}

func title(t model.Task) string {
	s := strings.TrimSpace(t.Description)
	if s == "" {
		return "(no description)"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
