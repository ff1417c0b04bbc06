package validators

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-management-api.com/task-management-api/internal/errors"
)

// TaskID reads the :id path parameter. Anything that is not a positive
// integer cannot name a task, so it is reported as not found.
func TaskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrTaskNotFound
	}
	return uint(id), nil
}
