package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-management-api.com/task-management-api/internal/data_models"
	apperrors "task-management-api.com/task-management-api/internal/errors"
	"task-management-api.com/task-management-api/internal/http/validators"
	repository "task-management-api.com/task-management-api/internal/repositories"
	"task-management-api.com/task-management-api/internal/services"
)

const (
	welcomeMessage     = "Welcome to the Task Management API!"
	taskCreatedMessage = "Task created successfully!"
	taskUpdatedMessage = "Task updated successfully!"
	taskDeletedMessage = "Task deleted successfully!"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"messages": welcomeMessage})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}

	if _, err := h.taskService.CreateTask(c.Request().Context(), req); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": taskCreatedMessage})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.TaskID(c)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.TaskID(c)
	if err != nil {
		return httpError(err)
	}

	// unknown ids are reported before the body is read
	if _, err := h.taskService.GetTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}

	if _, err := h.taskService.UpdateTask(c.Request().Context(), id, req); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": taskUpdatedMessage})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.TaskID(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": taskDeletedMessage})
}

func (h *Handler) FilterTasks(c echo.Context) error {
	filter := repository.ParseTaskFilter(c.QueryParams())

	tasks, err := h.taskService.FilterTasks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// httpError hides storage failures behind a generic message and keeps the
// cause for the request logger.
func httpError(err error) error {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, "internal server error").SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}
