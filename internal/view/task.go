package view

import (
	"strings"

	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"

	"github.com/charmbracelet/lipgloss"
)

// TaskView is the read-only card.
type TaskView struct {
	render.Abstract
	focus
	task   model.Task
	layout *Layout

	onEdit     func() error
	onFavorite func() error
	onArchive  func() error
}

func NewTaskView(t model.Task, l *Layout) *TaskView {
	return &TaskView{task: t.Clone(), layout: l}
}

func (v *TaskView) Element() *render.Element { return v.ElementOf(v) }

func (v *TaskView) Task() model.Task { return v.task.Clone() }

func (v *TaskView) Template() string {
	t := v.task
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderLeft(true).
		BorderForeground(cardColor(t.Color)).
		Foreground(colorSurfaceFg)
	if v.focused {
		card = card.BorderStyle(lipgloss.ThickBorder())
	}
	innerW := v.layout.width() - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}

	var controls []string
	controls = append(controls, "edit")
	if t.IsArchive {
		controls = append(controls, styleActive.Render("archive"))
	} else {
		controls = append(controls, "archive")
	}
	if t.IsFavorite {
		controls = append(controls, styleActive.Render("favorites"))
	} else {
		controls = append(controls, "favorites")
	}

	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		desc = "(no description)"
	}

	lines := []string{
		styleMeta.Render(strings.Join(controls, "  ")),
		styleTitle.Render(truncateToWidth(desc, innerW)),
	}

	var meta []string
	if t.DueDate != nil {
		due := model.HumanizeDueDate(t.DueDate)
		if model.IsExpired(t.DueDate, v.layout.now()) {
			due = styleDeadline.Render(due)
		}
		meta = append(meta, due)
	}
	if model.IsRepeating(t.Repeating) {
		meta = append(meta, "repeats "+strings.Join(t.Repeating.Days(), ","))
	}
	lines = append(lines, styleMeta.Render(strings.Join(meta, "  ·  ")))

	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	return card.Width(innerW + card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (v *TaskView) SetEditClickHandler(fn func() error)     { v.onEdit = fn }
func (v *TaskView) SetFavoriteClickHandler(fn func() error) { v.onFavorite = fn }
func (v *TaskView) SetArchiveClickHandler(fn func() error)  { v.onArchive = fn }

func (v *TaskView) ClickEdit() error     { return call(v.onEdit) }
func (v *TaskView) ClickFavorite() error { return call(v.onFavorite) }
func (v *TaskView) ClickArchive() error  { return call(v.onArchive) }

func call(fn func() error) error {
	if fn == nil {
		return nil
	}
	return fn()
}
