package services

import (
	"context"
	"log/slog"

	dto "task-management-api.com/task-management-api/internal/data_models"
	repository "task-management-api.com/task-management-api/internal/repositories"
	model "task-management-api.com/task-management-api/pkg/models"
)

type TaskService struct {
	repo   *repository.TaskRepository
	logger *slog.Logger
}

func NewTaskService(repo *repository.TaskRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created", "task_id", task.ID, "status", task.Status)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) FilterTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	if filter.IsEmpty() {
		return s.repo.List(ctx)
	}
	return s.repo.Filter(ctx, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	patch := req.ToPatch()

	task, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task updated", "task_id", id, "fields", len(patch.Columns()))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}
