package presenter

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"taskboard-cli/internal/filters"
	"taskboard-cli/internal/model"
	"taskboard-cli/internal/render"
	"taskboard-cli/internal/render/rendertest"
	"taskboard-cli/internal/tasks"
	"taskboard-cli/internal/view"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// makeTasks builds n tasks whose due dates run backwards, so a date-up sort reverses
// the model order. Every fifth task is a favorite.
func makeTasks(n int) []model.Task {
	out := make([]model.Task, 0, n)
	for i := 0; i < n; i++ {
		due := testNow.AddDate(0, 0, 2+n-i)
		out = append(out, model.Task{
			ID:          fmt.Sprintf("t%02d", i),
			Description: fmt.Sprintf("task %d", i),
			DueDate:     &due,
			Repeating:   model.NoRepeating(),
			Color:       model.ColorBlack,
			IsFavorite:  i%5 == 0,
		})
	}
	return out
}

type fixture struct {
	page    *render.Page
	rec     *rendertest.Recorder
	tasks   *tasks.Model
	filters *filters.Model
	board   *Board
	filter  *Filter
	hook    *test.Hook
}

func newFixture(t *testing.T, ts []model.Task, strict bool) *fixture {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &fixture{
		page:    render.NewPage(),
		rec:     rendertest.New(),
		tasks:   tasks.New(ts),
		filters: filters.New(),
		hook:    hook,
	}
	ids := 0
	f.filter = NewFilter(f.page, f.tasks, f.filters, f.rec)
	f.filter.SetClock(func() time.Time { return testNow })
	f.board = NewBoard(f.page, f.tasks, BoardOptions{
		Renderer: f.rec,
		Filters:  f.filters,
		PageSize: 8,
		Strict:   strict,
		Logger:   logger,
		Now:      func() time.Time { return testNow },
		NewID: func() string {
			ids++
			return fmt.Sprintf("new-%d", ids)
		},
	})
	if err := f.filter.Init(); err != nil {
		t.Fatalf("filter init: %v", err)
	}
	if err := f.board.Init(); err != nil {
		t.Fatalf("board init: %v", err)
	}
	return f
}

func (f *fixture) cards() []*view.TaskView {
	return render.Find[*view.TaskView](f.page.Element())
}

// cardReplaces counts replace ops that swapped a task card, ignoring the filter bar.
func (f *fixture) cardReplaces() int {
	n := 0
	for _, op := range f.rec.Ops {
		if _, ok := op.Child.(*view.TaskView); ok && op.Kind == rendertest.OpReplace {
			n++
		}
	}
	return n
}

func (f *fixture) presenter(t *testing.T, id string) *Task {
	t.Helper()
	p, ok := f.board.Presenter(id)
	if !ok {
		t.Fatalf("expected presenter for %s", id)
	}
	return p
}

func TestBoard_PaginatesWithLoadMore(t *testing.T) {
	f := newFixture(t, makeTasks(22), false)

	if got := f.board.RenderedCount(); got != 8 {
		t.Fatalf("initial render: got %d want 8", got)
	}
	if !f.board.LoadMoreVisible() {
		t.Fatalf("expected load more after first page")
	}

	if err := f.board.LoadMore().Click(); err != nil {
		t.Fatalf("load more: %v", err)
	}
	if got := f.board.RenderedCount(); got != 16 {
		t.Fatalf("after one click: got %d want 16", got)
	}
	if !f.board.LoadMoreVisible() {
		t.Fatalf("expected load more after second page")
	}

	if err := f.board.LoadMore().Click(); err != nil {
		t.Fatalf("load more: %v", err)
	}
	if got := f.board.RenderedCount(); got != 22 {
		t.Fatalf("after two clicks: got %d want 22", got)
	}
	if f.board.LoadMoreVisible() {
		t.Fatalf("expected load more removed once everything is shown")
	}

	cards := f.cards()
	want := f.board.Tasks()
	if len(cards) != len(want) {
		t.Fatalf("mounted cards: got %d want %d", len(cards), len(want))
	}
	for i := range cards {
		if cards[i].Task().ID != want[i].ID {
			t.Fatalf("card %d: got %s want %s", i, cards[i].Task().ID, want[i].ID)
		}
	}
}

func TestBoard_EmptyWhenEveryTaskArchived(t *testing.T) {
	ts := makeTasks(3)
	for i := range ts {
		ts[i].IsArchive = true
	}
	f := newFixture(t, ts, false)

	if !f.board.EmptyStateVisible() {
		t.Fatalf("expected empty state")
	}
	if f.board.SortingVisible() || f.board.ListVisible() || f.board.LoadMoreVisible() {
		t.Fatalf("expected only the empty state to be mounted")
	}
	if got := f.board.RenderedCount(); got != 0 {
		t.Fatalf("rendered: got %d want 0", got)
	}

	if err := f.filter.View().Select(model.FilterArchive); err != nil {
		t.Fatalf("select archive: %v", err)
	}
	if f.board.EmptyStateVisible() {
		t.Fatalf("expected archive filter to show the archived tasks")
	}
	if got := f.board.RenderedCount(); got != 3 {
		t.Fatalf("rendered under archive: got %d want 3", got)
	}
}

func TestBoard_EmptyModel(t *testing.T) {
	f := newFixture(t, nil, false)

	if !f.board.EmptyStateVisible() {
		t.Fatalf("expected empty state")
	}
	nt := render.Find[*view.NoTasksView](f.page.Element())
	if len(nt) != 1 {
		t.Fatalf("expected one empty state view, got %d", len(nt))
	}
}

func TestBoard_InitTwiceRebuildsOnce(t *testing.T) {
	f := newFixture(t, makeTasks(10), false)
	if err := f.board.Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}

	if got := len(render.Find[*view.SortingView](f.page.Element())); got != 1 {
		t.Fatalf("sorting views: got %d want 1", got)
	}
	if got := len(f.cards()); got != 8 {
		t.Fatalf("cards: got %d want 8", got)
	}
	if got := len(render.Find[*view.LoadMoreButtonView](f.page.Element())); got != 1 {
		t.Fatalf("load more buttons: got %d want 1", got)
	}

	// A second subscription would replace the card twice.
	f.rec.Reset()
	upd := f.tasks.Tasks()[0]
	upd.Description = "patched"
	if err := f.tasks.UpdateTask(model.UpdatePatch, upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := f.cardReplaces(); got != 1 {
		t.Fatalf("card replaces: got %d want 1", got)
	}
}

func TestBoard_PatchReplacesOnlyThatCard(t *testing.T) {
	f := newFixture(t, makeTasks(5), false)

	before := map[string]*Task{}
	for _, t0 := range f.tasks.Tasks() {
		before[t0.ID] = f.presenter(t, t0.ID)
	}
	otherCard := f.presenter(t, "t01").Card()

	f.rec.Reset()
	upd, _ := f.tasks.Find("t02")
	upd.Description = "renamed"
	if err := f.tasks.UpdateTask(model.UpdatePatch, upd); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := f.cardReplaces(); got != 1 {
		t.Fatalf("card replaces: got %d want 1", got)
	}
	if got := f.rec.Count(rendertest.OpRender); got != 0 {
		t.Fatalf("render ops: got %d want 0", got)
	}
	for id, p := range before {
		if f.presenter(t, id) != p {
			t.Fatalf("presenter for %s was rebuilt", id)
		}
	}
	if f.presenter(t, "t01").Card() != otherCard {
		t.Fatalf("unrelated card was replaced")
	}
	if got := f.presenter(t, "t02").Card().Task().Description; got != "renamed" {
		t.Fatalf("patched card: got %q", got)
	}
	if !f.presenter(t, "t02").Card().Mounted() {
		t.Fatalf("expected patched card mounted")
	}
}

func TestBoard_SingleEditor(t *testing.T) {
	f := newFixture(t, makeTasks(4), false)

	p1 := f.presenter(t, "t01")
	p2 := f.presenter(t, "t02")

	if err := p1.Card().ClickEdit(); err != nil {
		t.Fatalf("edit t01: %v", err)
	}
	if err := p2.Card().ClickEdit(); err != nil {
		t.Fatalf("edit t02: %v", err)
	}
	if p1.Mode() != ModeView || p2.Mode() != ModeEdit {
		t.Fatalf("modes: t01=%v t02=%v", p1.Mode(), p2.Mode())
	}
	if got := f.board.EditingCount(); got != 1 {
		t.Fatalf("editors: got %d want 1", got)
	}

	if err := f.board.CreateTask(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p2.Mode() != ModeView {
		t.Fatalf("expected opening the new task form to close t02")
	}
	if !f.board.NewTaskForm().Open() {
		t.Fatalf("expected new task form open")
	}
	if got := f.board.EditingCount(); got != 1 {
		t.Fatalf("editors: got %d want 1", got)
	}

	if err := p1.Card().ClickEdit(); err != nil {
		t.Fatalf("edit t01: %v", err)
	}
	if f.board.NewTaskForm().Open() {
		t.Fatalf("expected editing a card to close the new task form")
	}
	if got := f.board.EditingCount(); got != 1 {
		t.Fatalf("editors: got %d want 1", got)
	}
}

func TestBoard_MinorKeepsOpenEditor(t *testing.T) {
	f := newFixture(t, makeTasks(4), false)

	editing := f.presenter(t, "t03")
	if err := editing.Card().ClickEdit(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	editing.Edit().SetValue(view.FieldDescription, "draft")
	editing.Edit().SetActiveField(view.FieldColor)

	if err := f.presenter(t, "t01").Card().ClickArchive(); err != nil {
		t.Fatalf("archive: %v", err)
	}

	archived, _ := f.tasks.Find("t01")
	if !archived.IsArchive {
		t.Fatalf("expected t01 archived")
	}
	p := f.presenter(t, "t03")
	if p.Mode() != ModeEdit {
		t.Fatalf("expected t03 still editing, got %v", p.Mode())
	}
	if got := p.Edit().Value(view.FieldDescription); got != "draft" {
		t.Fatalf("draft: got %q want %q", got, "draft")
	}
	if p.Edit().ActiveField() != view.FieldColor {
		t.Fatalf("active field lost")
	}
	if !p.Edit().Mounted() || p.Card().Mounted() {
		t.Fatalf("expected the form mounted in place of the card")
	}
	if got, want := len(f.board.Tasks()), f.tasks.Len(); got != want {
		t.Fatalf("derived length: got %d want %d", got, want)
	}
	if got := f.board.EditingCount(); got != 1 {
		t.Fatalf("editors: got %d want 1", got)
	}
}

func TestBoard_MinorKeepsCursor(t *testing.T) {
	f := newFixture(t, makeTasks(22), false)
	if err := f.board.LoadMore().Click(); err != nil {
		t.Fatalf("load more: %v", err)
	}

	if err := f.presenter(t, "t00").Card().ClickFavorite(); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if got := f.board.RenderedCount(); got != 16 {
		t.Fatalf("rendered after minor: got %d want 16", got)
	}

	last, _ := f.tasks.Find("t21")
	if err := f.tasks.DeleteTask(model.UpdateMinor, last); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := f.board.RenderedCount(); got != 16 {
		t.Fatalf("rendered after delete: got %d want 16", got)
	}
}

func TestBoard_SortChangeResetsCursor(t *testing.T) {
	f := newFixture(t, makeTasks(22), false)
	if err := f.board.LoadMore().Click(); err != nil {
		t.Fatalf("load more: %v", err)
	}

	if err := f.board.Sorting().Select(model.SortDateUp); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if f.board.SortType() != model.SortDateUp {
		t.Fatalf("sort type: got %v", f.board.SortType())
	}
	if got := f.board.RenderedCount(); got != 8 {
		t.Fatalf("rendered: got %d want 8", got)
	}
	if !f.board.LoadMoreVisible() {
		t.Fatalf("expected load more after sorting")
	}
	cards := f.cards()
	if cards[0].Task().ID != "t21" {
		t.Fatalf("first card after date-up sort: got %s want t21", cards[0].Task().ID)
	}

	// Selecting the current sort does nothing.
	f.rec.Reset()
	if err := f.board.Sorting().Select(model.SortDateUp); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if len(f.rec.Ops) != 0 {
		t.Fatalf("expected no render ops, got %d", len(f.rec.Ops))
	}
}

func TestBoard_FilterChangeResetsBoard(t *testing.T) {
	f := newFixture(t, makeTasks(22), false)
	if err := f.board.LoadMore().Click(); err != nil {
		t.Fatalf("load more: %v", err)
	}
	if err := f.board.Sorting().Select(model.SortDateDown); err != nil {
		t.Fatalf("sort: %v", err)
	}

	if err := f.filter.View().Select(model.FilterFavorites); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if f.filters.Filter() != model.FilterFavorites {
		t.Fatalf("filter: got %v", f.filters.Filter())
	}
	if f.board.SortType() != model.SortDefault {
		t.Fatalf("expected sort reset, got %v", f.board.SortType())
	}
	if got := f.board.Cursor(); got != 8 {
		t.Fatalf("cursor: got %d want 8", got)
	}
	for _, c := range f.cards() {
		if !c.Task().IsFavorite {
			t.Fatalf("non-favorite %s shown under favorites", c.Task().ID)
		}
	}
	if got := f.board.RenderedCount(); got != 5 {
		t.Fatalf("favorites rendered: got %d want 5", got)
	}
	if f.board.LoadMoreVisible() {
		t.Fatalf("expected no load more for a short list")
	}
	if f.filter.View().Current() != model.FilterFavorites {
		t.Fatalf("filter bar not re-rendered")
	}
}

func TestBoard_CreateTask(t *testing.T) {
	f := newFixture(t, makeTasks(3), false)
	if err := f.filter.View().Select(model.FilterFavorites); err != nil {
		t.Fatalf("filter: %v", err)
	}

	if err := f.board.CreateTask(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.filters.Filter() != model.FilterAll {
		t.Fatalf("expected filter reset to all, got %v", f.filters.Filter())
	}
	form := f.board.NewTaskForm().Edit()
	if form == nil || !form.Mounted() {
		t.Fatalf("expected mounted new task form")
	}

	form.SetValue(view.FieldDescription, "write tests")
	form.SetValue(view.FieldDueDate, "2026-10-25")
	if err := form.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if f.board.NewTaskForm().Open() {
		t.Fatalf("expected form closed after submit")
	}
	if got := f.tasks.Len(); got != 4 {
		t.Fatalf("tasks: got %d want 4", got)
	}
	added, ok := f.tasks.Find("new-1")
	if !ok {
		t.Fatalf("expected task new-1")
	}
	if added.Description != "write tests" || added.DueDate == nil {
		t.Fatalf("unexpected task: %+v", added)
	}
	if f.presenter(t, "new-1").Mode() != ModeView {
		t.Fatalf("expected new card in view mode")
	}
	if f.cards()[0].Task().ID != "new-1" {
		t.Fatalf("expected new task first")
	}
}

func TestBoard_CreateTaskOnEmptyBoardThenCancel(t *testing.T) {
	f := newFixture(t, nil, false)

	if err := f.board.CreateTask(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.board.EmptyStateVisible() {
		t.Fatalf("expected empty state hidden while the form is open")
	}
	if !f.board.ListVisible() {
		t.Fatalf("expected list mounted for the form")
	}

	if err := f.board.NewTaskForm().Edit().Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !f.board.EmptyStateVisible() {
		t.Fatalf("expected empty state back after cancel")
	}
	if f.board.ListVisible() {
		t.Fatalf("expected list unmounted")
	}
}

func TestBoard_CreateTaskResetsSort(t *testing.T) {
	f := newFixture(t, makeTasks(3), false)
	if err := f.board.Sorting().Select(model.SortDateUp); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if err := f.board.CreateTask(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.board.SortType() != model.SortDefault {
		t.Fatalf("expected default sort, got %v", f.board.SortType())
	}
	if f.board.Sorting().Current() != model.SortDefault {
		t.Fatalf("expected sort bar re-rendered")
	}
}

func TestBoard_SubmitChoosesUpdateType(t *testing.T) {
	f := newFixture(t, makeTasks(3), false)

	p := f.presenter(t, "t01")
	if err := p.Card().ClickEdit(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	p.Edit().SetValue(view.FieldDescription, "only text")
	if err := p.Edit().Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.presenter(t, "t01") != p {
		t.Fatalf("expected a text edit to patch the existing presenter")
	}
	if p.Mode() != ModeView {
		t.Fatalf("expected view mode after submit")
	}
	if got := p.Card().Task().Description; got != "only text" {
		t.Fatalf("card: got %q", got)
	}

	if err := p.Card().ClickEdit(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	p.Edit().SetValue(view.FieldRepeating, "mo,fr")
	if err := p.Edit().Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.presenter(t, "t01") == p {
		t.Fatalf("expected a repeat change to rebuild the list")
	}
	got, _ := f.tasks.Find("t01")
	if !model.IsRepeating(got.Repeating) {
		t.Fatalf("expected repeating saved")
	}
}

func TestBoard_InvalidDraftKeepsFormOpen(t *testing.T) {
	f := newFixture(t, makeTasks(2), false)

	p := f.presenter(t, "t00")
	if err := p.Card().ClickEdit(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	p.Edit().SetValue(view.FieldDueDate, "tomorrow")
	if err := p.Edit().Submit(); err == nil {
		t.Fatalf("expected parse error")
	}
	if p.Mode() != ModeEdit || p.Edit().Err() == "" {
		t.Fatalf("expected form open with an inline error")
	}
}

func TestBoard_DeleteFromForm(t *testing.T) {
	f := newFixture(t, makeTasks(3), false)

	p := f.presenter(t, "t01")
	if err := p.Card().ClickEdit(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := p.Edit().ClickDelete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := f.tasks.Find("t01"); ok {
		t.Fatalf("expected t01 deleted")
	}
	if _, ok := f.board.Presenter("t01"); ok {
		t.Fatalf("expected presenter for t01 gone")
	}
	if got := f.board.RenderedCount(); got != 2 {
		t.Fatalf("rendered: got %d want 2", got)
	}
	if got := f.board.EditingCount(); got != 0 {
		t.Fatalf("editors: got %d want 0", got)
	}
}

func TestBoard_StalePatch(t *testing.T) {
	t.Run("warns", func(t *testing.T) {
		f := newFixture(t, makeTasks(12), false)

		upd, _ := f.tasks.Find("t11")
		upd.Description = "off screen"
		if err := f.tasks.UpdateTask(model.UpdatePatch, upd); err != nil {
			t.Fatalf("update: %v", err)
		}
		entry := f.hook.LastEntry()
		if entry == nil || entry.Level != logrus.WarnLevel {
			t.Fatalf("expected a warning, got %+v", entry)
		}
		if entry.Data["task"] != "t11" {
			t.Fatalf("expected task field, got %v", entry.Data)
		}
	})

	t.Run("strict", func(t *testing.T) {
		f := newFixture(t, makeTasks(12), true)

		upd, _ := f.tasks.Find("t11")
		upd.Description = "off screen"
		err := f.tasks.UpdateTask(model.UpdatePatch, upd)
		var stale StaleReferenceError
		if !errors.As(err, &stale) {
			t.Fatalf("expected StaleReferenceError, got %v", err)
		}
		if stale.ID != "t11" {
			t.Fatalf("stale id: got %s", stale.ID)
		}
	})
}

func TestBoard_UnrecognizedInputs(t *testing.T) {
	f := newFixture(t, makeTasks(1), false)

	err := f.board.handleViewAction(model.UserAction(42), model.UpdateMinor, model.Task{ID: "x"})
	var actionErr UnrecognizedActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("expected UnrecognizedActionError, got %v", err)
	}

	err = f.board.handleModelEvent(model.UpdateType(42), nil)
	var updateErr UnrecognizedUpdateError
	if !errors.As(err, &updateErr) {
		t.Fatalf("expected UnrecognizedUpdateError, got %v", err)
	}
}

func TestFilter_CountsFollowModel(t *testing.T) {
	f := newFixture(t, makeTasks(10), false)

	count := func(ft model.FilterType) int {
		for _, c := range f.filter.View().Counts() {
			if c.Type == ft {
				return c.Count
			}
		}
		return -1
	}
	if got := count(model.FilterFavorites); got != 2 {
		t.Fatalf("favorites: got %d want 2", got)
	}
	if err := f.presenter(t, "t01").Card().ClickFavorite(); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if got := count(model.FilterFavorites); got != 3 {
		t.Fatalf("favorites after click: got %d want 3", got)
	}
	if got := len(render.Find[*view.FilterView](f.page.Element())); got != 1 {
		t.Fatalf("filter bars: got %d want 1", got)
	}
}

func TestBoard_CloseStopsListening(t *testing.T) {
	f := newFixture(t, makeTasks(3), false)
	f.board.Close()

	ts := f.tasks.Tasks()
	if err := f.tasks.DeleteTask(model.UpdateMinor, ts[0]); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if got := len(f.cards()); got != 3 {
		t.Fatalf("closed board re-rendered: got %d cards want 3", got)
	}
	f.board.Close()
}

func TestBoard_ClearingListReleasesOpenEditor(t *testing.T) {
	f := newFixture(t, makeTasks(5), false)

	p := f.presenter(t, "t02")
	if err := p.Card().ClickEdit(); err != nil {
		t.Fatalf("edit t02: %v", err)
	}
	if got := len(render.Find[*view.TaskEditView](f.page.Element())); got != 1 {
		t.Fatalf("mounted forms before sort: got %d want 1", got)
	}
	form, card := p.Edit(), p.Card()

	if err := f.board.Sorting().Select(model.SortDateUp); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if got := len(render.Find[*view.TaskEditView](f.page.Element())); got != 0 {
		t.Fatalf("mounted forms after sort: got %d want 0", got)
	}
	if form.Mounted() || card.Mounted() {
		t.Fatalf("destroyed presenter left form=%v card=%v mounted", form.Mounted(), card.Mounted())
	}
	if got := len(f.cards()); got != 5 {
		t.Fatalf("cards: got %d want 5", got)
	}
	if got := f.board.EditingCount(); got != 0 {
		t.Fatalf("editors: got %d want 0", got)
	}
}

func TestTask_InitSamePayloadOnlyRerenders(t *testing.T) {
	f := newFixture(t, makeTasks(5), false)

	q := f.presenter(t, "t02")
	tk, ok := f.tasks.Find("t02")
	if !ok {
		t.Fatalf("t02 missing from model")
	}

	f.rec.Reset()
	for i := 0; i < 2; i++ {
		if err := q.Init(tk); err != nil {
			t.Fatalf("Init #%d: %v", i+1, err)
		}
	}
	if q.Mode() != ModeView {
		t.Fatalf("mode: got %v want view", q.Mode())
	}
	if got := len(f.cards()); got != 5 {
		t.Fatalf("cards: got %d want 5", got)
	}
	if got := f.board.RenderedCount(); got != 5 {
		t.Fatalf("presenters: got %d want 5", got)
	}
	if got := f.rec.Count(rendertest.OpRender); got != 0 {
		t.Fatalf("render ops: got %d want 0", got)
	}
	if got := f.rec.Count(rendertest.OpReplace); got != 2 {
		t.Fatalf("replace ops: got %d want 2", got)
	}

	// Same in EDIT: the form is swapped in place and stays the only one.
	if err := q.Card().ClickEdit(); err != nil {
		t.Fatalf("edit t02: %v", err)
	}
	f.rec.Reset()
	for i := 0; i < 2; i++ {
		if err := q.Init(tk); err != nil {
			t.Fatalf("Init in edit #%d: %v", i+1, err)
		}
	}
	if q.Mode() != ModeEdit {
		t.Fatalf("mode: got %v want edit", q.Mode())
	}
	if got := len(render.Find[*view.TaskEditView](f.page.Element())); got != 1 {
		t.Fatalf("mounted forms: got %d want 1", got)
	}
	if got := len(f.cards()); got != 4 {
		t.Fatalf("cards: got %d want 4", got)
	}
	if got := f.rec.Count(rendertest.OpRender); got != 0 {
		t.Fatalf("render ops in edit: got %d want 0", got)
	}
}
