package request

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edvin/catalog/internal/model"
)

type CreateTask struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Subtasks    []model.Subtask `json:"subtasks"`
	Status      string          `json:"status"`
}

func (c CreateTask) Task() *model.Task {
	return &model.Task{
		Title:       c.Title,
		Description: c.Description,
		Subtasks:    c.Subtasks,
		Status:      c.Status,
	}
}

// UpdateTask is the body of PUT /tasks. Absent fields are left untouched.
type UpdateTask struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Subtasks    []model.Subtask `json:"subtasks"`
	Status      *string         `json:"status"`
}

// ProductTask is a task inside a PUT / body. A task sent with its _id keeps
// that id; one without gets a new id from the store.
type ProductTask struct {
	ID primitive.ObjectID `json:"_id" swaggertype:"string" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	CreateTask
}

func (t ProductTask) Task() *model.Task {
	task := t.CreateTask.Task()
	task.ID = t.ID
	return task
}
