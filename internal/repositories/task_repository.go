package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "task-management-api.com/task-management-api/internal/errors"
	"task-management-api.com/task-management-api/pkg/constants"
	model "task-management-api.com/task-management-api/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create default-fills status and date_created, validates the task and
// stores it. The returned task carries the id assigned by the database.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	record := *task
	record.ID = 0
	record.DateCreated = time.Now().UTC()
	if strings.TrimSpace(record.Status) == "" {
		record.Status = constants.DefaultTaskStatus
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &record, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	return findByID(r.db.WithContext(ctx), id)
}

// List returns every task ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	return r.Filter(ctx, TaskFilter{})
}

// Filter returns the tasks matching every constraint of f, ordered by id.
func (r *TaskRepository) Filter(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).
		Scopes(f.Scope()).
		Order("id asc").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update overwrites the fields present in patch and returns the stored task.
func (r *TaskRepository) Update(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	var updated *model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findByID(tx, id)
		if err != nil {
			return err
		}

		patch.Apply(task)
		if err := task.Validate(); err != nil {
			return err
		}

		if !patch.IsEmpty() {
			res := tx.Model(&model.Task{}).Where("id = ?", id).Updates(patch.Columns())
			if res.Error != nil {
				return fmt.Errorf("update task %d: %w", id, res.Error)
			}
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the task. Deleting an unknown id reports ErrTaskNotFound.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task %d: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

func findByID(db *gorm.DB, id uint) (*model.Task, error) {
	var task model.Task
	err := db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}
