package controller

import (
	"net/http"
	"time"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type todoCreateRequest struct {
	Text string `json:"text" binding:"required"`
}

type todoUpdateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// ListTodos godoc
// @Summary List to-dos
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo
// @Router /api/todos [get]
func (c *Controller) ListTodos(ctx *gin.Context) {
	todos := c.collections.Todos.Load()
	if todos == nil {
		todos = []models.Todo{}
	}
	ctx.JSON(http.StatusOK, todos)
}

// CreateTodo godoc
// @Summary Create a to-do
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body todoCreateRequest true "Task text"
// @Success 201 {object} models.Todo
// @Failure 400 {object} APIError
// @Router /api/todos [post]
func (c *Controller) CreateTodo(ctx *gin.Context) {
	var req todoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	text := sanitize.Text(req.Text)
	if text == "" {
		badRequest(ctx, "task text cannot be empty")
		return
	}

	todo := models.Todo{
		ID:   uuid.NewString(),
		Text: text,
		Date: time.Now(),
	}
	if err := c.collections.Todos.Add(todo); err != nil {
		internalError(ctx, "failed to save task")
		return
	}
	ctx.JSON(http.StatusCreated, todo)
}

// UpdateTodo godoc
// @Summary Update a to-do
// @Description Toggles the completed flag and/or edits the text. Omitted fields keep their value.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body todoUpdateRequest true "Fields to change"
// @Success 200 {object} models.Todo
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Router /api/todos/{id} [put]
func (c *Controller) UpdateTodo(ctx *gin.Context) {
	var req todoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	if req.Text == nil && req.Completed == nil {
		badRequest(ctx, "nothing to update")
		return
	}

	var text string
	if req.Text != nil {
		text = sanitize.Text(*req.Text)
		if text == "" {
			badRequest(ctx, "task text cannot be empty")
			return
		}
	}

	id := ctx.Param("id")
	err := c.collections.Todos.Update(id, func(todo *models.Todo) {
		if req.Text != nil {
			todo.Text = text
		}
		if req.Completed != nil {
			todo.Completed = *req.Completed
		}
	})
	if errors.Is(err, store.ErrNotFound) {
		notFound(ctx, "task not found")
		return
	}
	if err != nil {
		internalError(ctx, "failed to update task")
		return
	}

	todo, _ := c.collections.Todos.Get(id)
	ctx.JSON(http.StatusOK, todo)
}

// DeleteTodo godoc
// @Summary Delete a to-do
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204
// @Router /api/todos/{id} [delete]
func (c *Controller) DeleteTodo(ctx *gin.Context) {
	if err := c.collections.Todos.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete task")
		return
	}
	ctx.Status(http.StatusNoContent)
}
