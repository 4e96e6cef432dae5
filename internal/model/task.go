package model

import "time"

func endOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Millisecond*999), now.Location())
}

// IsExpired reports whether due lies before the end of the current day.
func IsExpired(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return endOfDay(now).After(*due)
}

// IsExpiringToday reports whether due falls on the same calendar day as now.
func IsExpiringToday(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return IsSameDay(*due, now.In(due.Location()))
}

func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsRepeating(r Repeating) bool {
	for _, v := range r {
		if v {
			return true
		}
	}
	return false
}

// IsDateEqual treats two missing dates as equal and compares present dates by day.
func IsDateEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return IsSameDay(*a, *b)
}

// HumanizeDueDate renders a due date the way cards show it ("2 March").
func HumanizeDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("2 January")
}
