package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Subtask struct {
	Title       string `json:"title" bson:"title" yaml:"title"`
	IsCompleted bool   `json:"isCompleted" bson:"isCompleted" yaml:"isCompleted"`
}

// Task is embedded in Product.Tasks and addressed by its own _id.
type Task struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id" yaml:"-" swaggertype:"string"`
	Title       string             `json:"title" bson:"title" yaml:"title" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty" yaml:"description"`
	Subtasks    []Subtask          `json:"subtasks" bson:"subtasks" yaml:"subtasks"`
	Status      string             `json:"status,omitempty" bson:"status,omitempty" yaml:"status"`
}
