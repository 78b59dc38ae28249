package handlers

import (
	"law_console_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetTasks lists the task collection
func (a *API) GetTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Tasks.ListTasks())
}

// CreateTask creates a new pending task
func (a *API) CreateTask(c echo.Context) error {
	var input services.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Title is required",
		})
	}

	created := a.Tasks.CreateTask(input)
	return c.JSON(http.StatusCreated, created)
}

// CompleteTask marks a task done
func (a *API) CompleteTask(c echo.Context) error {
	if !a.Tasks.CompleteTask(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Task not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}
