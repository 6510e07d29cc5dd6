package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/task-tracker-api/internal/apierrors"
	"github.com/yuzuhara/task-tracker-api/internal/dto"
	"github.com/yuzuhara/task-tracker-api/internal/middleware"
	"github.com/yuzuhara/task-tracker-api/internal/models"
	"github.com/yuzuhara/task-tracker-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task owned by the caller. Any owner field in the
// request body is ignored; the owner always comes from the session.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Description string            `json:"description" binding:"required"`
		Status      models.TaskStatus `json:"status"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Description: req.Description,
		Status:      req.Status,
		OwnerID:     current.ID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"task":    dto.ToTaskDTO(*task),
		"message": "Task created successfully",
	})
}

// ListTasks returns every task with its owner's email resolved.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":   dto.ToTaskDTOs(tasks),
		"count":   len(tasks),
		"message": "Tasks fetched successfully",
	})
}

// GetTask returns a task by ID with its owner resolved.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task": dto.ToTaskDTO(*task),
	})
}

// UpdateTask patches a task's allow-listed fields. Admin only.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateTaskRequest struct {
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, services.UpdateTaskInput{
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    dto.ToTaskDTO(*task),
		"message": "Task updated successfully",
	})
}

// DeleteTask deletes a task by ID. Admin only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    dto.ToTaskDTO(*task),
		"message": "Task deleted successfully",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		apierrors.Timeout(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
