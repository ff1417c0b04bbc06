package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "task-management-api.com/task-management-api/internal/errors"
	"task-management-api.com/task-management-api/pkg/constants"
)

type Task struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DateCreated   time.Time `gorm:"column:date_created;not null" json:"date_created"`
	EntityName    string    `gorm:"column:entity_name;size:100;not null" json:"entity_name"`
	TaskType      string    `gorm:"column:task_type;size:50;not null" json:"task_type"`
	TimeOfTask    string    `gorm:"column:time_of_task;size:20;not null" json:"time_of_task"`
	ContactPerson string    `gorm:"column:contact_person;size:100;not null" json:"contact_person"`
	Note          *string   `gorm:"column:note;size:255" json:"note"`
	Status        string    `gorm:"column:status;size:10;not null;default:'open'" json:"status"`
}

func (Task) TableName() string {
	return "tasks"
}

// Validate checks required fields and column limits and reports the first
// offending field.
func (t *Task) Validate() error {
	required := []struct {
		field string
		value string
		max   int
	}{
		{"entity_name", t.EntityName, constants.MaxEntityNameLength},
		{"task_type", t.TaskType, constants.MaxTaskTypeLength},
		{"time_of_task", t.TimeOfTask, constants.MaxTimeOfTaskLength},
		{"contact_person", t.ContactPerson, constants.MaxContactPersonLength},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.Required(r.field)
		}
		if utf8.RuneCountInString(r.value) > r.max {
			return apperrors.TooLong(r.field, r.max)
		}
	}

	if t.Note != nil && utf8.RuneCountInString(*t.Note) > constants.MaxNoteLength {
		return apperrors.TooLong("note", constants.MaxNoteLength)
	}
	if strings.TrimSpace(t.Status) == "" {
		return apperrors.Required("status")
	}
	if utf8.RuneCountInString(t.Status) > constants.MaxStatusLength {
		return apperrors.TooLong("status", constants.MaxStatusLength)
	}

	return nil
}
