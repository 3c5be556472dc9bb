package handler

import (
	"fmt"
	"net/http"

	"github.com/edvin/catalog/internal/api/request"
	"github.com/edvin/catalog/internal/api/response"
	"github.com/edvin/catalog/internal/core"
)

type Task struct {
	svc *core.TaskService
}

func NewTask(svc *core.TaskService) *Task {
	return &Task{svc: svc}
}

// Create godoc
//
//	@Summary		Add a task to a product
//	@Description	Appends a task with a new id to the product's task list and returns the updated product.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id		query		string				true	"Product ID"
//	@Param			body	body		request.CreateTask	true	"Task"
//	@Success		201		{object}	response.BoardEnvelope{board=model.Product}
//	@Failure		400		{object}	response.Envelope{data=string}
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.Envelope{data=string}
//	@Failure		413		{object}	response.Envelope{data=string}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/tasks [post]
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireParam(r.URL.Query().Get("id"), "Product id")
	if err != nil {
		response.WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.CreateTask
	if err := request.Decode(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	product, err := h.svc.Push(r.Context(), id, req.Task())
	if err != nil {
		writeStoreError(w, r, err, http.StatusNotFound, fmt.Sprintf("Product with id %s not found", id))
		return
	}

	response.WriteBoard(w, http.StatusCreated, product)
}

// Update godoc
//
//	@Summary		Update a task
//	@Description	Overwrites the task fields present in the body. Subtasks, when sent, replace the stored list.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			boardId	query		string				true	"Product ID"
//	@Param			taskId	query		string				true	"Task ID"
//	@Param			body	body		request.UpdateTask	true	"Fields to change"
//	@Success		200		{object}	response.Message
//	@Failure		400		{object}	response.Envelope{data=string}
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.Envelope{data=string}
//	@Failure		413		{object}	response.Envelope{data=string}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/tasks [put]
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	productID, taskID, ok := taskParams(w, r)
	if !ok {
		return
	}

	var req request.UpdateTask
	if err := request.Decode(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	matched, err := h.svc.SetFields(r.Context(), productID, taskID, core.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Subtasks:    req.Subtasks,
		Status:      req.Status,
	})
	if err != nil {
		writeStoreError(w, r, err, http.StatusNotFound, "")
		return
	}
	if !matched {
		response.WriteFailure(w, http.StatusNotFound,
			fmt.Sprintf("Product with id %s or task with id %s not found", productID, taskID))
		return
	}

	response.WriteMessage(w, http.StatusOK, "Task successfully updated")
}

// Delete godoc
//
//	@Summary	Delete a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Param		boardId	query		string	true	"Product ID"
//	@Param		taskId	query		string	true	"Task ID"
//	@Success	200		{object}	response.Message
//	@Failure	400		{object}	response.Envelope{data=string}
//	@Failure	401		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.Envelope{data=string}
//	@Failure	500		{object}	response.ErrorResponse
//	@Router		/tasks [delete]
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	productID, taskID, ok := taskParams(w, r)
	if !ok {
		return
	}

	matched, err := h.svc.Remove(r.Context(), productID, taskID)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if !matched {
		response.WriteFailure(w, http.StatusNotFound, fmt.Sprintf("Task with id %s not found", taskID))
		return
	}

	response.WriteMessage(w, http.StatusOK, fmt.Sprintf("Task %s successfully deleted", taskID))
}

// taskParams reads boardId and taskId from the query. It writes the 400 and
// reports false when either is missing.
func taskParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	productID, errP := request.RequireParam(q.Get("boardId"), "boardId")
	taskID, errT := request.RequireParam(q.Get("taskId"), "taskId")
	if errP != nil || errT != nil {
		response.WriteFailure(w, http.StatusBadRequest, "board and task id are required")
		return "", "", false
	}
	return productID, taskID, true
}
