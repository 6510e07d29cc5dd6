package dto

import (
	"time"

	"github.com/yuzuhara/task-tracker-api/internal/models"
)

// TaskOwnerDTO is the resolved owner attached to task responses.
type TaskOwnerDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	OwnerID     uint64            `json:"owner_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Owner       *TaskOwnerDTO     `json:"owner,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include owner if preloaded
	if task.Owner.ID != 0 {
		dto.Owner = &TaskOwnerDTO{
			ID:    task.Owner.ID,
			Email: task.Owner.Email,
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
