package tasks

import (
	"sort"

	"taskboard-cli/internal/model"
)

// compareDue orders by due date ascending with undated tasks last.
func compareDue(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	case a.DueDate.Before(*b.DueDate):
		return -1
	case b.DueDate.Before(*a.DueDate):
		return 1
	default:
		return 0
	}
}

// SortUp returns tasks ordered by due date ascending; ties keep canonical order.
func SortUp(tasks []model.Task) []model.Task {
	out := append([]model.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return compareDue(out[i], out[j]) < 0 })
	return out
}

// SortDown is the exact reverse of SortUp.
func SortDown(tasks []model.Task) []model.Task {
	out := SortUp(tasks)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sorted derives the ordering for st without touching tasks. Unknown sort types fall back
// to canonical order.
func Sorted(tasks []model.Task, st model.SortType) []model.Task {
	switch st {
	case model.SortDateUp:
		return SortUp(tasks)
	case model.SortDateDown:
		return SortDown(tasks)
	default:
		return append([]model.Task(nil), tasks...)
	}
}
