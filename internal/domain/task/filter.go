package task

import (
	"sort"
	"strings"
	"time"
)

// Filter is a read-only query against the active set. Predicate families
// combine with AND; the text query matches title OR description. An unset
// field is vacuously true.
type Filter struct {
	Query   string
	Status  Status
	DueFrom *time.Time
	DueTo   *time.Time
}

// StatusAll disables status filtering, same as leaving Status empty.
const StatusAll Status = "all"

// Matches reports whether t passes every supplied predicate.
func (f Filter) Matches(t Task) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		title := strings.Contains(strings.ToLower(t.Title), q)
		desc := strings.Contains(strings.ToLower(t.Description), q)
		if !title && !desc {
			return false
		}
	}

	if f.Status != "" && f.Status != StatusAll && t.Status != f.Status {
		return false
	}

	// Due-date bounds are inclusive.
	if f.DueFrom != nil && t.DueDate.Before(*f.DueFrom) {
		return false
	}
	if f.DueTo != nil && t.DueDate.After(*f.DueTo) {
		return false
	}

	return true
}

// Apply returns the tasks matching f, preserving input order.
func (f Filter) Apply(tasks []Task) []Task {
	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// SortByDueDate orders tasks by due date ascending, in place.
func SortByDueDate(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
}

// SortByCreatedDesc orders tasks newest-created first, in place.
func SortByCreatedDesc(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedOn.After(tasks[j].CreatedOn)
	})
}
