package tui

import (
	"fmt"
	"strings"
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/presenter"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/tasks"
	"taskboard-cli/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const statusTTL = 4 * time.Second

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	styleInput  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "243"})
)

// inputBinding ties the text input to one field of one form instance.
type inputBinding struct {
	form  *view.TaskEditView
	field view.Field
}

type statusClearMsg struct{ seq int }

type appModel struct {
	page    *render.Page
	tasks   *tasks.Model
	filters *filters.Model
	board   *presenter.Board
	filter  *presenter.Filter
	log     logrus.FieldLogger

	keys  keyMap
	help  help.Model
	input textinput.Model
	bound inputBinding

	width   int
	height  int
	yOffset int

	focus    focusTarget
	focusIdx int

	status    string
	statusSeq int
}

func newAppModel(opts Options) (appModel, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	page := render.NewPage()
	fm := filters.New()
	fp := presenter.NewFilter(page, opts.Tasks, fm, render.Tree{})
	fp.SetClock(now)
	b := presenter.NewBoard(page, opts.Tasks, presenter.BoardOptions{
		Filters:  fm,
		PageSize: opts.PageSize,
		Strict:   opts.Strict,
		Logger:   opts.Logger,
		Now:      now,
	})
	if err := fp.Init(); err != nil {
		return appModel{}, fmt.Errorf("init filter: %w", err)
	}
	if err := b.Init(); err != nil {
		return appModel{}, fmt.Errorf("init board: %w", err)
	}

	m := appModel{
		page:    page,
		tasks:   opts.Tasks,
		filters: fm,
		board:   b,
		filter:  fp,
		log:     opts.Logger.WithField("component", "tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   textinput.New(),
	}
	m.input.Prompt = ""
	m.input.CharLimit = 200
	m.input.Width = 40
	m.syncFocus()
	return m, nil
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.SetWidth(min(msg.Width, 80))
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-16, 10)
		m.scroll()
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if form := m.focusedForm(); form != nil {
			cmd = m.updateForm(form, msg)
		} else {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			cmd = m.updateBoard(msg)
		}
		m.scroll()
		return m, cmd
	}
	return m, nil
}

func (m *appModel) updateBoard(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Open):
		switch c := m.focused().(type) {
		case *view.TaskView:
			return m.do(c.ClickEdit)
		case *view.LoadMoreButtonView:
			return m.do(c.Click)
		}
	case key.Matches(msg, m.keys.Archive):
		if c, ok := m.focused().(*view.TaskView); ok {
			return m.do(c.ClickArchive)
		}
	case key.Matches(msg, m.keys.Favorite):
		if c, ok := m.focused().(*view.TaskView); ok {
			return m.do(c.ClickFavorite)
		}
	case key.Matches(msg, m.keys.New):
		cmd := m.do(m.board.CreateTask)
		m.focus = focusTarget{kind: focusNewTask}
		m.syncFocus()
		return cmd
	case key.Matches(msg, m.keys.LoadMore):
		if lm := m.board.LoadMore(); lm != nil && m.board.LoadMoreVisible() {
			return m.do(lm.Click)
		}
	case key.Matches(msg, m.keys.Sort):
		if s := m.board.Sorting(); s != nil && m.board.SortingVisible() {
			st := model.SortTypes[int(msg.Runes[0]-'1')]
			return m.do(func() error { return s.Select(st) })
		}
	case key.Matches(msg, m.keys.NextFilt):
		return m.cycleFilter(1)
	case key.Matches(msg, m.keys.PrevFilt):
		return m.cycleFilter(-1)
	}
	return nil
}

func (m *appModel) updateForm(form *view.TaskEditView, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.do(form.Cancel)
	case key.Matches(msg, m.keys.Submit):
		return m.do(form.Submit)
	case key.Matches(msg, m.keys.Delete):
		return m.do(form.ClickDelete)
	case key.Matches(msg, m.keys.NextField):
		m.cycleField(form, 1)
		return nil
	case key.Matches(msg, m.keys.PrevField):
		m.cycleField(form, -1)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	form.SetValue(m.bound.field, m.input.Value())
	return cmd
}

func (m *appModel) cycleField(form *view.TaskEditView, step int) {
	n := len(view.Fields)
	next := ((int(form.ActiveField())+step)%n + n) % n
	form.SetActiveField(view.Fields[next])
	m.bindInput(form)
}

// cycleFilter moves to the next filter that has tasks, wrapping around. ALL is always
// selectable.
func (m *appModel) cycleFilter(step int) tea.Cmd {
	fv := m.filter.View()
	if fv == nil {
		return nil
	}
	counts := fv.Counts()
	n := len(counts)
	cur := 0
	for i, c := range counts {
		if c.Type == fv.Current() {
			cur = i
		}
	}
	for i := 1; i < n; i++ {
		c := counts[((cur+step*i)%n+n)%n]
		if c.Count > 0 || c.Type == model.FilterAll {
			return m.do(func() error { return fv.Select(c.Type) })
		}
	}
	return nil
}

// bindInput points the text input at the active field of form, reloading it only when
// the form or field changed so typing is not reset by re-renders.
func (m *appModel) bindInput(form *view.TaskEditView) {
	if form == nil {
		m.input.Blur()
		m.bound = inputBinding{}
		return
	}
	b := inputBinding{form: form, field: form.ActiveField()}
	if b != m.bound {
		m.input.SetValue(form.Value(b.field))
		m.input.CursorEnd()
		m.input.Placeholder = b.field.Label()
		m.bound = b
	}
	m.input.Focus()
}

// do runs a component action, then re-resolves focus. Failures go to the status line.
func (m *appModel) do(fn func() error) tea.Cmd {
	err := fn()
	m.syncFocus()
	if err == nil {
		return nil
	}
	m.log.WithError(err).Warn("action failed")
	m.status = err.Error()
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

func (m appModel) bodyHeight() int {
	return max(m.height-3, 1)
}

// scroll keeps the focused component inside the viewport.
func (m *appModel) scroll() {
	if m.height <= 0 {
		return
	}
	content := m.page.Element().String()
	c := m.focused()
	if c == nil {
		m.yOffset = 0
		return
	}
	s := c.Element().String()
	idx := strings.Index(content, s)
	if idx < 0 {
		return
	}
	top := strings.Count(content[:idx], "\n")
	bottom := top + lipgloss.Height(s)
	h := m.bodyHeight()
	if top < m.yOffset {
		m.yOffset = top
	}
	if bottom > m.yOffset+h {
		m.yOffset = bottom - h
	}
	m.yOffset = max(m.yOffset, 0)
}

func (m appModel) View() string {
	content := m.page.Element().String()
	body := content
	if m.height > 0 {
		vp := viewport.New(m.width, m.bodyHeight())
		vp.SetContent(content)
		vp.SetYOffset(m.yOffset)
		body = vp.View()
	}

	var footer string
	switch {
	case m.status != "":
		footer = styleStatus.Render(m.status)
	case m.bound.form != nil:
		footer = styleInput.Render(fmt.Sprintf("%-12s", m.bound.field.Label())) + m.input.View()
	}

	k := m.keys
	k.editing = m.bound.form != nil
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHeader.Render("TASKBOARD"),
		body,
		footer,
		m.help.View(k),
	)
}
