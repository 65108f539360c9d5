package handler

import (
	"net/http"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/middleware"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TaskHandler exposes work item CRUD.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles recording a new task against a client
func (h *TaskHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		ClientID uint `json:"clientId"`
		service.TaskFields
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid task request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	task, err := h.tasks.Create(c.Request().Context(), middleware.OwnerID(c), req.ClientID, req.TaskFields)
	if err != nil {
		return respondError(c, log, err, "task")
	}

	log.Info("Task created",
		zap.Uint("task_id", task.ID),
		zap.Uint("client_id", task.ClientID),
		zap.String("title", task.Title))
	return c.JSON(http.StatusOK, task)
}

// ListForClient handles retrieving all tasks against one client
func (h *TaskHandler) ListForClient(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")

	defer prometheus.TrackDBOperation("query")(time.Now())
	tasks, err := h.tasks.ListForClient(c.Request().Context(), clientID)
	if err != nil {
		return respondError(c, log, err, "tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

// Update handles a partial update of an existing task
func (h *TaskHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")

	var req service.TaskFields
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid task request data", zap.Uint("task_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	task, err := h.tasks.Update(c.Request().Context(), id, middleware.OwnerID(c), req)
	if err != nil {
		return respondError(c, log, err, "task")
	}

	log.Info("Task updated", zap.Uint("task_id", task.ID))
	return c.JSON(http.StatusOK, task)
}

// Delete handles removing a task
func (h *TaskHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.tasks.Delete(c.Request().Context(), id, middleware.OwnerID(c)); err != nil {
		return respondError(c, log, err, "task")
	}

	log.Info("Task deleted", zap.Uint("task_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}
