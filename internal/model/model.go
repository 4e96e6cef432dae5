package model

import (
	"fmt"
	"strings"
	"time"
)

type Color string

const (
	ColorBlack  Color = "black"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
)

// Colors lists every card color in picker order.
var Colors = []Color{ColorBlack, ColorYellow, ColorBlue, ColorGreen, ColorPink}

func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color: %q", s)
}

// Weekdays are keyed the way the repeat editor labels them.
var Weekdays = []string{"mo", "tu", "we", "th", "fr", "sa", "su"}

// Repeating maps a weekday key (see Weekdays) to whether the task repeats on it.
type Repeating map[string]bool

func NoRepeating() Repeating {
	r := Repeating{}
	for _, d := range Weekdays {
		r[d] = false
	}
	return r
}

func (r Repeating) Clone() Repeating {
	out := make(Repeating, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Days returns the repeat days in weekday order.
func (r Repeating) Days() []string {
	var out []string
	for _, d := range Weekdays {
		if r[d] {
			out = append(out, d)
		}
	}
	return out
}

func (r Repeating) Equal(o Repeating) bool {
	for _, d := range Weekdays {
		if r[d] != o[d] {
			return false
		}
	}
	return true
}

// ParseRepeating accepts a comma or space separated list of weekday keys ("mo,we fr").
func ParseRepeating(s string) (Repeating, error) {
	r := NoRepeating()
	fields := strings.FieldsFunc(strings.ToLower(s), func(c rune) bool { return c == ',' || c == ' ' })
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			return nil, fmt.Errorf("unknown weekday: %q", f)
		}
		r[f] = true
	}
	return r, nil
}

// Task is a value: updates build a new Task carrying the same ID.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Repeating   Repeating  `json:"repeating"`
	Color       Color      `json:"color"`
	IsArchive   bool       `json:"isArchive"`
	IsFavorite  bool       `json:"isFavorite"`
}

func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	out.Repeating = t.Repeating.Clone()
	return out
}

func (t Task) WithArchive(v bool) Task {
	out := t.Clone()
	out.IsArchive = v
	return out
}

func (t Task) WithFavorite(v bool) Task {
	out := t.Clone()
	out.IsFavorite = v
	return out
}

type SortType int

const (
	SortDefault SortType = iota
	SortDateUp
	SortDateDown
)

// SortTypes lists the sort controls in display order.
var SortTypes = []SortType{SortDefault, SortDateUp, SortDateDown}

func (s SortType) String() string {
	switch s {
	case SortDefault:
		return "default"
	case SortDateUp:
		return "date-up"
	case SortDateDown:
		return "date-down"
	default:
		return fmt.Sprintf("SortType(%d)", int(s))
	}
}

func ParseSortType(s string) (SortType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return SortDefault, nil
	case "date-up", "up":
		return SortDateUp, nil
	case "date-down", "down":
		return SortDateDown, nil
	default:
		return SortDefault, fmt.Errorf("unknown sort type: %q", s)
	}
}

// UpdateType tells observers how much of the rendered board a change invalidates.
type UpdateType int

const (
	// UpdatePatch: one task changed without affecting membership or order.
	UpdatePatch UpdateType = iota
	// UpdateMinor: membership or a task's filter bucket changed.
	UpdateMinor
	// UpdateMajor: global context (filter) changed.
	UpdateMajor
)

func (u UpdateType) String() string {
	switch u {
	case UpdatePatch:
		return "PATCH"
	case UpdateMinor:
		return "MINOR"
	case UpdateMajor:
		return "MAJOR"
	default:
		return fmt.Sprintf("UpdateType(%d)", int(u))
	}
}

type UserAction int

const (
	ActionUpdateTask UserAction = iota
	ActionAddTask
	ActionDeleteTask
)

func (a UserAction) String() string {
	switch a {
	case ActionUpdateTask:
		return "UPDATE_TASK"
	case ActionAddTask:
		return "ADD_TASK"
	case ActionDeleteTask:
		return "DELETE_TASK"
	default:
		return fmt.Sprintf("UserAction(%d)", int(a))
	}
}

type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterOverdue   FilterType = "overdue"
	FilterToday     FilterType = "today"
	FilterFavorites FilterType = "favorites"
	FilterRepeating FilterType = "repeating"
	FilterArchive   FilterType = "archive"
)

// FilterTypes lists the filter bar entries in display order.
var FilterTypes = []FilterType{FilterAll, FilterOverdue, FilterToday, FilterFavorites, FilterRepeating, FilterArchive}

func ParseFilterType(s string) (FilterType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range FilterTypes {
		if string(f) == s {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter: %q", s)
}
