package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const taskDeletedMessage = "Task deleted successfully"

// createTask handles POST /api/tasks and responds 201 with the stored task.
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var request models.CreateTaskRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("task_id", task.ID).Msg("task created")
	utils.WriteJSON(w, task, http.StatusCreated)
}

// listTasks handles GET /api/tasks with an optional ?status= filter.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	request := models.ListTasksRequest{Status: r.URL.Query().Get("status")}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), id)
	if err != nil {
		writeTaskError(w, r, id, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// updateTask handles PATCH /api/tasks/{id}; only the supplied fields change.
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateTaskRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), id, request)
	if err != nil {
		writeTaskError(w, r, id, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// deleteTask handles DELETE /api/tasks/{id} and echoes the removed row.
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.DeleteTask(r.Context(), id)
	if err != nil {
		writeTaskError(w, r, id, err)
		return
	}

	logger.FromRequest(r).Info().Int64("task_id", id).Msg("task deleted")
	utils.WriteJSON(w, models.DeleteTaskResponse{Message: taskDeletedMessage, Task: task}, http.StatusOK)
}

// writeTaskError names the missing id in 404 responses and defers every
// other error to writeError.
func writeTaskError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	if errors.Is(err, service.ErrTaskNotFound) {
		logger.FromRequest(r).Warn().Err(err).Int64("task_id", id).Msg("task not found")
		utils.WriteError(w, http.StatusNotFound, fmt.Sprintf("A task with the id of %d was not found", id))
		return
	}

	writeError(w, r, err)
}
