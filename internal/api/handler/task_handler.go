package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/api/metrics"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes run
// behind the token guard; the owner is selected by the userId query
// parameter, matching the original API contract.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /todos?userId=.
//
// @Summary      List all tasks for a user, newest first
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  true  "Owner user id"
// @Success      200     {object}  response
// @Failure      400     {object}  response
// @Failure      404     {object}  response
// @Failure      500     {object}  response
// @Router       /todos [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return respondError(c, err, "Server error while retrieving todos")
	}
	return respond(c, http.StatusOK, "Todos retrieved successfully", tasks)
}

// Create handles POST /todos?userId=.
//
// @Summary      Create a new task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string             true  "Owner user id"
// @Param        body    body      createTaskRequest  true  "Task details"
// @Success      201     {object}  response
// @Failure      400     {object}  response
// @Failure      404     {object}  response
// @Failure      500     {object}  response
// @Router       /todos [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), c.QueryParam("userId"), req.Task)
	if err != nil {
		return respondError(c, err, "Server error while creating todo")
	}

	metrics.TasksCreatedTotal.Inc()

	return respond(c, http.StatusCreated, "Todo created successfully", task)
}

// Update handles PUT /todos/:id. Only the fields present in the body are
// applied; completed_time set to null clears the timestamp.
//
// @Summary      Update a task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Failure      500   {object}  response
// @Router       /todos/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid payload")
	}

	var req updateTaskRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return respondFail(c, http.StatusBadRequest, "Invalid payload")
		}
	}
	if err := c.Validate(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, err.Error())
	}

	// A pointer field cannot tell "completed_time": null apart from an
	// absent key, so key presence is checked against the raw body.
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(body, &fields)
	_, hasCompletedTime := fields["completed_time"]

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateTaskInput{
		Task:             req.Task,
		Completed:        req.Completed,
		CompletedTime:    req.CompletedTime,
		SetCompletedTime: hasCompletedTime,
	})
	if err != nil {
		return respondError(c, err, "Server error while updating todo")
	}

	return respond(c, http.StatusOK, "Todo updated successfully", task)
}

// Delete handles DELETE /todos/:id.
//
// @Summary      Delete a task
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  response{data=deleteTaskResponse}
// @Failure      400  {object}  response
// @Failure      404  {object}  response
// @Failure      500  {object}  response
// @Router       /todos/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	deletedID, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Server error while deleting todo")
	}

	metrics.TasksDeletedTotal.WithLabelValues("single").Inc()

	return respond(c, http.StatusOK, "Todo deleted successfully", deleteTaskResponse{DeletedID: deletedID})
}

// DeleteAll handles DELETE /todos/delete/all?userId=.
//
// @Summary      Delete all tasks for a user
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  true  "Owner user id"
// @Success      200     {object}  response{data=deleteAllTasksResponse}
// @Failure      400     {object}  response
// @Failure      404     {object}  response
// @Failure      500     {object}  response
// @Router       /todos/delete/all [delete]
func (h *TaskHandler) DeleteAll(c echo.Context) error {
	count, err := h.service.DeleteAll(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return respondError(c, err, "Server error while deleting todos")
	}

	metrics.TasksDeletedTotal.WithLabelValues("bulk").Add(float64(count))

	return respond(c, http.StatusOK, "All todos deleted successfully", deleteAllTasksResponse{DeletedCount: count})
}
