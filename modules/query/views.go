// Package query derives filtered lists, trend buckets and aggregate stats
// from a task snapshot. Everything here is a pure function of its input;
// nothing mutates the snapshot and nothing is incrementally maintained.
package query

import (
	"strings"
	"time"

	"github.com/example/task-tracker/domain/task"
)

// FilterAll is the sentinel that disables an enum filter.
const FilterAll = "all"

// TaskFilters is the ephemeral filter state a caller applies to a snapshot.
// Empty Search and Assignee and "all" enum values match everything.
type TaskFilters struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Assignee string `json:"assignee"`
}

// enumActive reports whether an enum filter narrows the result.
func enumActive(v string) bool {
	return v != "" && v != FilterAll
}

// FilterTasks applies the filters conjunctively and returns a new slice.
// Search is a case-insensitive substring match over title, description and
// assignee name; the enum filters are exact matches.
func FilterTasks(tasks []task.Task, filters TaskFilters) []task.Task {
	filtered := make([]task.Task, 0, len(tasks))

	search := strings.ToLower(filters.Search)
	for _, t := range tasks {
		if search != "" {
			if !strings.Contains(strings.ToLower(t.Title), search) &&
				!strings.Contains(strings.ToLower(t.Description), search) &&
				!strings.Contains(strings.ToLower(t.AssigneeName), search) {
				continue
			}
		}
		if enumActive(filters.Status) && string(t.Status) != filters.Status {
			continue
		}
		if enumActive(filters.Priority) && string(t.Priority) != filters.Priority {
			continue
		}
		if enumActive(filters.Type) && string(t.Type) != filters.Type {
			continue
		}
		if filters.Assignee != "" && t.AssigneeID != filters.Assignee {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// TrendBucket is one calendar day of logged activity.
type TrendBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyTrend buckets time-entry events per calendar day over the last
// windowDays days, today inclusive, oldest first. The count is the number of
// entries logged that day, not hours and not distinct tasks. Days with no
// activity stay at zero; entries dated outside the window are ignored.
func DailyTrend(tasks []task.Task, windowDays int) []TrendBucket {
	return dailyTrendAt(tasks, windowDays, time.Now())
}

func dailyTrendAt(tasks []task.Task, windowDays int, now time.Time) []TrendBucket {
	if windowDays <= 0 {
		windowDays = 7
	}

	buckets := make([]TrendBucket, 0, windowDays)
	index := make(map[string]int, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(task.DateLayout)
		index[date] = len(buckets)
		buckets = append(buckets, TrendBucket{Date: date})
	}

	for _, t := range tasks {
		for _, entry := range t.TimeEntries {
			if i, ok := index[entry.Date]; ok {
				buckets[i].Count++
			}
		}
	}
	return buckets
}

// Assignee is a distinct assignee seen in a snapshot.
type Assignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UniqueAssignees returns one entry per distinct assignee id; the last-seen
// name wins when the same id appears with different names. Ordering is not
// guaranteed.
func UniqueAssignees(tasks []task.Task) []Assignee {
	names := make(map[string]string)
	for _, t := range tasks {
		names[t.AssigneeID] = t.AssigneeName
	}

	out := make([]Assignee, 0, len(names))
	for id, name := range names {
		out = append(out, Assignee{ID: id, Name: name})
	}
	return out
}

// Stats aggregates a snapshot for the dashboard cards.
type Stats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	Closed          int     `json:"closed"`
	PendingApproval int     `json:"pending_approval"`
	Critical        int     `json:"critical"`
	TotalHours      float64 `json:"total_hours"`
	Assignees       int     `json:"assignees"`
}

// ComputeStats derives the dashboard aggregates: active counts open and
// in-progress tasks, critical counts critical-priority tasks that are not
// yet closed.
func ComputeStats(tasks []task.Task) Stats {
	stats := Stats{Total: len(tasks)}
	assignees := make(map[string]struct{})

	for _, t := range tasks {
		switch t.Status {
		case task.StatusOpen, task.StatusInProgress:
			stats.Active++
		case task.StatusClosed:
			stats.Closed++
		case task.StatusPendingApproval:
			stats.PendingApproval++
		}
		if t.Priority == task.PriorityCritical && t.Status != task.StatusClosed {
			stats.Critical++
		}
		stats.TotalHours += t.TotalTimeSpent
		assignees[t.AssigneeID] = struct{}{}
	}

	stats.Assignees = len(assignees)
	return stats
}
