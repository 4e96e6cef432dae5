package view

import (
	"fmt"
	"strings"
	"time"

	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"

	"github.com/charmbracelet/lipgloss"
)

// Field identifies one input of the edit form.
type Field int

const (
	FieldDescription Field = iota
	FieldDueDate
	FieldRepeating
	FieldColor
)

var Fields = []Field{FieldDescription, FieldDueDate, FieldRepeating, FieldColor}

func (f Field) Label() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldDueDate:
		return "date"
	case FieldRepeating:
		return "repeat"
	case FieldColor:
		return "color"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

const dueDateLayout = "2006-01-02"

// TaskEditView is the inline edit form. Inputs are raw strings, parsed on submit.
type TaskEditView struct {
	render.Abstract
	focus
	layout *Layout
	task   model.Task
	isNew  bool
	values map[Field]string
	active Field
	errMsg string

	onSubmit func(model.Task) error
	onDelete func(model.Task) error
	onCancel func() error
}

func NewTaskEditView(t model.Task, l *Layout) *TaskEditView {
	v := &TaskEditView{layout: l}
	v.Reset(t)
	return v
}

// NewBlankTaskEditView is the "add new task" form.
func NewBlankTaskEditView(l *Layout) *TaskEditView {
	v := NewTaskEditView(model.Task{Color: model.ColorBlack, Repeating: model.NoRepeating()}, l)
	v.isNew = true
	return v
}

func (v *TaskEditView) Element() *render.Element { return v.ElementOf(v) }

func (v *TaskEditView) IsNew() bool { return v.isNew }

// Task is the task the form was filled from, without the draft applied.
func (v *TaskEditView) Task() model.Task { return v.task.Clone() }

// Reset discards the draft and refills every input from t.
func (v *TaskEditView) Reset(t model.Task) {
	v.task = t.Clone()
	v.values = map[Field]string{
		FieldDescription: t.Description,
		FieldDueDate:     "",
		FieldRepeating:   strings.Join(t.Repeating.Days(), ","),
		FieldColor:       string(t.Color),
	}
	if t.DueDate != nil {
		v.values[FieldDueDate] = t.DueDate.Format(dueDateLayout)
	}
	v.errMsg = ""
}

func (v *TaskEditView) Value(f Field) string { return v.values[f] }

// Values copies every input, for carrying a draft across a re-render.
func (v *TaskEditView) Values() map[Field]string {
	out := make(map[Field]string, len(v.values))
	for k, val := range v.values {
		out[k] = val
	}
	return out
}

func (v *TaskEditView) SetValue(f Field, s string) {
	v.values[f] = s
	v.errMsg = ""
}

func (v *TaskEditView) ActiveField() Field { return v.active }

func (v *TaskEditView) SetActiveField(f Field) { v.active = f }

func (v *TaskEditView) Err() string { return v.errMsg }

// Draft parses the inputs into a task carrying the form task's ID and flags.
func (v *TaskEditView) Draft() (model.Task, error) {
	out := v.task.Clone()
	out.Description = strings.TrimSpace(v.values[FieldDescription])

	out.DueDate = nil
	if s := strings.TrimSpace(v.values[FieldDueDate]); s != "" {
		d, err := time.ParseInLocation(dueDateLayout, s, time.Local)
		if err != nil {
			return model.Task{}, fmt.Errorf("date: expected YYYY-MM-DD, got %q", s)
		}
		d = d.Add(23*time.Hour + 59*time.Minute)
		out.DueDate = &d
	}

	r, err := model.ParseRepeating(v.values[FieldRepeating])
	if err != nil {
		return model.Task{}, fmt.Errorf("repeat: %w", err)
	}
	out.Repeating = r

	c := model.ColorBlack
	if s := strings.TrimSpace(v.values[FieldColor]); s != "" {
		if c, err = model.ParseColor(s); err != nil {
			return model.Task{}, fmt.Errorf("color: %w", err)
		}
	}
	out.Color = c
	return out, nil
}

func (v *TaskEditView) Template() string {
	border := cardColor(model.Color(strings.TrimSpace(v.values[FieldColor])))
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Foreground(colorSurfaceFg)
	innerW := v.layout.width() - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}

	title := "edit task"
	if v.isNew {
		title = "new task"
	}
	lines := []string{styleTitle.Render(title)}
	for _, f := range Fields {
		label := fmt.Sprintf("%-12s", f.Label())
		val := v.values[f]
		if f == v.active {
			lines = append(lines, styleActive.Render(label)+truncateToWidth(val, innerW-13)+"▏")
		} else {
			lines = append(lines, styleMeta.Render(label)+truncateToWidth(val, innerW-12))
		}
	}
	if v.errMsg != "" {
		lines = append(lines, styleDeadline.Render(truncateToWidth(v.errMsg, innerW)))
	}
	del := "delete"
	if v.isNew {
		del = "cancel"
	}
	lines = append(lines, styleMuted.Render("enter save · esc cancel · ctrl+x "+del))

	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	return card.Width(innerW + card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (v *TaskEditView) SetFormSubmitHandler(fn func(model.Task) error)  { v.onSubmit = fn }
func (v *TaskEditView) SetDeleteClickHandler(fn func(model.Task) error) { v.onDelete = fn }
func (v *TaskEditView) SetCancelHandler(fn func() error)               { v.onCancel = fn }

// Submit parses the draft and hands it to the submit handler. Invalid input keeps the
// form open and is shown inline.
func (v *TaskEditView) Submit() error {
	t, err := v.Draft()
	if err != nil {
		v.errMsg = err.Error()
		return err
	}
	if v.onSubmit == nil {
		return nil
	}
	return v.onSubmit(t)
}

func (v *TaskEditView) ClickDelete() error {
	if v.onDelete == nil {
		return nil
	}
	return v.onDelete(v.task.Clone())
}

func (v *TaskEditView) Cancel() error { return call(v.onCancel) }
