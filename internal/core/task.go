package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edvin/catalog/internal/model"
)

// TaskService mutates the tasks array embedded in product documents.
type TaskService struct {
	coll Collection
}

func NewTaskService(coll Collection) *TaskService {
	return &TaskService{coll: coll}
}

// TaskUpdate carries the task fields to overwrite. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Subtasks    []model.Subtask
	Status      *string
}

// Push appends task to the product's task list and returns the updated product.
func (s *TaskService) Push(ctx context.Context, productID string, task *model.Task) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	normalizeTask(task)
	if err := validateSchema("Task", task); err != nil {
		return nil, err
	}
	task.ID = primitive.NewObjectID()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "tasks", Value: task}}}}

	var p model.Product
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("push task to product %s: %w", productID, err)
	}
	return &p, nil
}

// SetFields overwrites the supplied fields of one task in place. It reports
// whether a product holding that task was matched.
func (s *TaskService) SetFields(ctx context.Context, productID, taskID string, u TaskUpdate) (bool, error) {
	filter, ok := taskFilter(productID, taskID)
	if !ok {
		return false, nil
	}

	set := bson.D{}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return false, &ValidationError{Resource: "Task", Fields: []string{"title is required"}}
		}
		set = append(set, bson.E{Key: "tasks.$.title", Value: title})
	}
	if u.Description != nil {
		set = append(set, bson.E{Key: "tasks.$.description", Value: strings.TrimSpace(*u.Description)})
	}
	if u.Subtasks != nil {
		t := model.Task{Subtasks: u.Subtasks}
		normalizeTask(&t)
		set = append(set, bson.E{Key: "tasks.$.subtasks", Value: t.Subtasks})
	}
	if u.Status != nil {
		set = append(set, bson.E{Key: "tasks.$.status", Value: strings.TrimSpace(*u.Status)})
	}
	if len(set) == 0 {
		return false, &ValidationError{Resource: "Task", Fields: []string{"at least one of title, description, subtasks, status is required"}}
	}

	res, err := s.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, fmt.Errorf("update task %s on product %s: %w", taskID, productID, err)
	}
	return res.MatchedCount > 0, nil
}

// Remove pulls the task from the product's task list. It reports whether a
// product holding that task was matched.
func (s *TaskService) Remove(ctx context.Context, productID, taskID string) (bool, error) {
	filter, ok := taskFilter(productID, taskID)
	if !ok {
		return false, nil
	}

	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "tasks", Value: bson.M{"_id": filter["tasks._id"]}}}}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("remove task %s from product %s: %w", taskID, productID, err)
	}
	return res.MatchedCount > 0, nil
}

// taskFilter matches the product holding the task. ok is false when either id
// is malformed, which can never match a stored document.
func taskFilter(productID, taskID string) (bson.M, bool) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, false
	}
	tid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": pid, "tasks._id": tid}, true
}
