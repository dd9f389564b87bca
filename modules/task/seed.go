package task

import (
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

// SeedDemoTasks loads the demo fixture tasks. Dates are relative to now so
// the 7-day activity trend has something to show on a fresh start.
func SeedDemoTasks(repo TaskRepository) error {
	now := time.Now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(domain.DateLayout)
	}
	at := func(offset int, hour int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
	}
	ptr := func(t time.Time) *time.Time { return &t }

	demoTasks := []*domain.Task{
		{
			ID:           "task-1",
			Title:        "Email format check fails on login form",
			Description:  "The login form's email field is not correctly validating input format, leading to misleading error prompts.",
			Type:         domain.TypeBug,
			Priority:     domain.PriorityHigh,
			Status:       domain.StatusInProgress,
			AssigneeID:   "user-1",
			AssigneeName: "Alice Johnson",
			ReporterID:   "user-3",
			ReporterName: "Charlie Brown",
			CreatedAt:    at(-3, 10),
			UpdatedAt:    at(-1, 14),
			DueDate:      ptr(at(2, 17)),
			TimeEntries: []domain.TimeEntry{
				{ID: "entry-1", TaskID: "task-1", UserID: "user-1", Description: "Reviewed and debugged validation logic", Hours: 2.5, Date: day(-1), CreatedAt: at(-1, 14)},
			},
		},
		{
			ID:           "task-2",
			Title:        "Dark mode switch with persistent settings",
			Description:  "Introduce a dark mode toggle that saves user preferences even after page reloads or logouts.",
			Type:         domain.TypeFeature,
			Priority:     domain.PriorityMedium,
			Status:       domain.StatusPendingApproval,
			AssigneeID:   "user-1",
			AssigneeName: "Alice Johnson",
			ReporterID:   "user-1",
			ReporterName: "Alice Johnson",
			CreatedAt:    at(-2, 9),
			UpdatedAt:    at(0, 11),
			DueDate:      ptr(at(3, 17)),
			TimeEntries: []domain.TimeEntry{
				{ID: "entry-2", TaskID: "task-2", UserID: "user-1", Description: "Created theme provider and context setup", Hours: 4, Date: day(-2), CreatedAt: at(-2, 13)},
				{ID: "entry-3", TaskID: "task-2", UserID: "user-1", Description: "Added toggle component and local storage logic", Hours: 1.5, Date: day(0), CreatedAt: at(0, 11)},
			},
		},
		{
			ID:           "task-3",
			Title:        "DB connection timeout during peak hours",
			Description:  "Frequent timeouts on API endpoints due to unstable database connectivity under high load conditions.",
			Type:         domain.TypeBug,
			Priority:     domain.PriorityCritical,
			Status:       domain.StatusOpen,
			AssigneeID:   "user-2",
			AssigneeName: "Bob Smith",
			ReporterID:   "user-3",
			ReporterName: "Charlie Brown",
			CreatedAt:    at(-3, 8),
			UpdatedAt:    at(-3, 8),
			DueDate:      ptr(at(1, 12)),
			TimeEntries:  []domain.TimeEntry{},
		},
		{
			ID:           "task-4",
			Title:        "Boost dashboard performance with lazy loading",
			Description:  "Dashboard load times are slow with large datasets. Introduce pagination and lazy loading techniques.",
			Type:         domain.TypeImprovement,
			Priority:     domain.PriorityMedium,
			Status:       domain.StatusOpen,
			AssigneeID:   "user-2",
			AssigneeName: "Bob Smith",
			ReporterID:   "user-3",
			ReporterName: "Charlie Brown",
			CreatedAt:    at(-2, 15),
			UpdatedAt:    at(-2, 15),
			DueDate:      ptr(at(4, 17)),
			TimeEntries:  []domain.TimeEntry{},
		},
		{
			ID:           "task-5",
			Title:        "Enable task report exports (PDF & Excel)",
			Description:  "Users should be able to export reports in both PDF and Excel formats for offline use and sharing.",
			Type:         domain.TypeFeature,
			Priority:     domain.PriorityLow,
			Status:       domain.StatusClosed,
			AssigneeID:   "user-1",
			AssigneeName: "Alice Johnson",
			ReporterID:   "user-3",
			ReporterName: "Charlie Brown",
			CreatedAt:    at(-5, 10),
			UpdatedAt:    at(-1, 17),
			ClosedAt:     ptr(at(-1, 17)),
			ApprovedBy:   "user-3",
			TimeEntries: []domain.TimeEntry{
				{ID: "entry-4", TaskID: "task-5", UserID: "user-1", Description: "Explored export package options", Hours: 1, Date: day(-4), CreatedAt: at(-4, 14)},
				{ID: "entry-5", TaskID: "task-5", UserID: "user-1", Description: "Built PDF export functionality", Hours: 3, Date: day(-3), CreatedAt: at(-3, 16)},
				{ID: "entry-6", TaskID: "task-5", UserID: "user-1", Description: "Added Excel export support", Hours: 2.5, Date: day(-2), CreatedAt: at(-2, 15)},
			},
		},
	}

	for _, t := range demoTasks {
		t.RecalcTotalTime()
		if err := repo.Save(t); err != nil {
			return err
		}
	}
	return nil
}
