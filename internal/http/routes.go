package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	middleware "task-management-api.com/task-management-api/internal/http/middlewares"
	"task-management-api.com/task-management-api/internal/ratelimit"
)

type RouteOptions struct {
	Limiter      ratelimit.Limiter
	AllowOrigins []string
	Logger       *slog.Logger
}

func Register(e *echo.Echo, h *Handler, opts RouteOptions) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS(opts.AllowOrigins))
	if opts.Limiter != nil {
		e.Use(middleware.RateLimiter(opts.Limiter, opts.Logger))
	}

	e.GET("/", h.Index)

	api := e.Group("/api")
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/filter", h.FilterTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
}
