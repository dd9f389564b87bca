package task

import (
	"errors"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"gorm.io/gorm"
)

// taskRecord is the GORM persistence model for a task. Time entries are
// owned exclusively by their task, so they ride along as a JSON column
// instead of a separate table. Seq preserves insertion order across
// restarts.
type taskRecord struct {
	Seq            int64              `gorm:"primaryKey;autoIncrement"`
	ID             string             `gorm:"uniqueIndex;size:36"`
	Title          string             `gorm:"size:255"`
	Description    string             `gorm:"type:text"`
	Type           string             `gorm:"size:16"`
	Priority       string             `gorm:"size:16"`
	Status         string             `gorm:"size:24;index"`
	AssigneeID     string             `gorm:"size:36;index"`
	AssigneeName   string             `gorm:"size:255"`
	ReporterID     string             `gorm:"size:36"`
	ReporterName   string             `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DueDate        *time.Time
	ClosedAt       *time.Time
	ApprovedBy     string             `gorm:"size:36"`
	TimeEntries    []domain.TimeEntry `gorm:"serializer:json"`
	TotalTimeSpent float64
}

func (taskRecord) TableName() string { return "tasks" }

func toRecord(t *domain.Task) *taskRecord {
	return &taskRecord{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Type:           string(t.Type),
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		AssigneeID:     t.AssigneeID,
		AssigneeName:   t.AssigneeName,
		ReporterID:     t.ReporterID,
		ReporterName:   t.ReporterName,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		DueDate:        t.DueDate,
		ClosedAt:       t.ClosedAt,
		ApprovedBy:     t.ApprovedBy,
		TimeEntries:    t.TimeEntries,
		TotalTimeSpent: t.TotalTimeSpent,
	}
}

func fromRecord(rec *taskRecord) *domain.Task {
	entries := rec.TimeEntries
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	return &domain.Task{
		ID:             rec.ID,
		Title:          rec.Title,
		Description:    rec.Description,
		Type:           domain.Type(rec.Type),
		Priority:       domain.Priority(rec.Priority),
		Status:         domain.Status(rec.Status),
		AssigneeID:     rec.AssigneeID,
		AssigneeName:   rec.AssigneeName,
		ReporterID:     rec.ReporterID,
		ReporterName:   rec.ReporterName,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		DueDate:        rec.DueDate,
		ClosedAt:       rec.ClosedAt,
		ApprovedBy:     rec.ApprovedBy,
		TimeEntries:    entries,
		TotalTimeSpent: rec.TotalTimeSpent,
	}
}

// GormTaskRepository persists tasks with GORM. It is an optional backend
// enabled by TASK_DB_PATH; the in-memory repository stays the default.
type GormTaskRepository struct {
	db *gorm.DB
}

var _ TaskRepository = (*GormTaskRepository)(nil)

// NewGormTaskRepository creates a repository on an open GORM connection and
// migrates the tasks table.
func NewGormTaskRepository(db *gorm.DB) (*GormTaskRepository, error) {
	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, err
	}
	return &GormTaskRepository{db: db}, nil
}

// Save inserts or replaces a task, keeping its original Seq (and therefore
// insertion order) on replacement.
func (r *GormTaskRepository) Save(t *domain.Task) error {
	rec := toRecord(t)

	var existing taskRecord
	result := r.db.Where("id = ?", t.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.db.Create(rec).Error
		}
		return result.Error
	}

	rec.Seq = existing.Seq
	return r.db.Save(rec).Error
}

// FindByID finds a task by ID.
func (r *GormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var rec taskRecord
	result := r.db.Where("id = ?", id).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return fromRecord(&rec), nil
}

// Delete deletes a task by ID.
func (r *GormTaskRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&taskRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// FindAll returns all tasks in insertion order.
func (r *GormTaskRepository) FindAll() ([]*domain.Task, error) {
	var recs []taskRecord
	if err := r.db.Order("seq asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		result = append(result, fromRecord(&recs[i]))
	}
	return result, nil
}

// FindByAssignee returns all tasks assigned to one user, insertion order.
func (r *GormTaskRepository) FindByAssignee(assigneeID string) ([]*domain.Task, error) {
	var recs []taskRecord
	if err := r.db.Where("assignee_id = ?", assigneeID).Order("seq asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		result = append(result, fromRecord(&recs[i]))
	}
	return result, nil
}

// Count returns the number of stored tasks.
func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&taskRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
