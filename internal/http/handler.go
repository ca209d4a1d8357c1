package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
	model "task-manager.com/task-manager/internal/models"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks, or a filtered subset when one of the derived
// query params is present: status, dueBefore, or dueFrom+dueTo.
func (h *Handler) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		tasks []model.Task
		err   error
	)

	status := c.QueryParam("status")
	dueBefore := c.QueryParam("dueBefore")
	dueFrom := c.QueryParam("dueFrom")
	dueTo := c.QueryParam("dueTo")

	switch {
	case status != "":
		if !model.TaskStatus(status).Valid() {
			return apperrors.BadRequest("status filter must be one of TODO, IN_PROGRESS, DONE")
		}
		tasks, err = h.taskService.GetTasksByStatus(ctx, model.TaskStatus(status))
	case dueBefore != "":
		date, parseErr := time.Parse(dto.DateLayout, dueBefore)
		if parseErr != nil {
			return apperrors.BadRequest("dueBefore must be a date in YYYY-MM-DD format")
		}
		tasks, err = h.taskService.GetTasksDueBefore(ctx, date)
	case dueFrom != "" || dueTo != "":
		if dueFrom == "" || dueTo == "" {
			return apperrors.BadRequest("dueFrom and dueTo must be provided together")
		}
		start, startErr := time.Parse(dto.DateLayout, dueFrom)
		end, endErr := time.Parse(dto.DateLayout, dueTo)
		if startErr != nil || endErr != nil {
			return apperrors.BadRequest("dueFrom and dueTo must be dates in YYYY-MM-DD format")
		}
		tasks, err = h.taskService.GetTasksDueBetween(ctx, start, end)
	default:
		tasks, err = h.taskService.GetAllTasks(ctx)
	}

	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *Handler) CreateTask(c echo.Context) error {
	req, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := dto.ToTask(req)
	if err != nil {
		return apperrors.ErrInvalidJSON
	}

	created, err := h.taskService.CreateTask(c.Request().Context(), task)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToTaskResponse(created))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	req, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := dto.ToTask(req)
	if err != nil {
		return apperrors.ErrInvalidJSON
	}

	updated, err := h.taskService.UpdateTask(c.Request().Context(), id, task)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToTaskResponse(updated))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.taskService.Ping(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}

func bindTaskRequest(c echo.Context) (*dto.TaskRequest, error) {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperrors.ErrInvalidJSON
	}
	if exc := validators.ValidateTaskRequest(&req); exc != nil {
		return nil, exc
	}
	return &req, nil
}
