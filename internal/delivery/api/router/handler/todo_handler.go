package handler

import (
	"log/slog"

	"todoapp/internal/delivery/api/response"
	"todoapp/internal/domain/entity"
	"todoapp/internal/errors"
	"todoapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
	Logger *slog.Logger
}

// TodoHandler serves the owner-scoped todo endpoints.
type TodoHandler struct {
	todoUC usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler.
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC: params.TodoUC,
		logger: params.Logger,
	}
}

// CreateTodoRequest is the body of POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
}

// UpdateTodoRequest is the body of PATCH/PUT /api/todos/:id. Absent fields stay unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Completed   *bool   `json:"completed"`
}

// DeleteTodoResponse confirms a deletion.
type DeleteTodoResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoUC.CreateTodo(c.Request().Context(), p.AccountID, &usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, todo)
}

// ListTodos handles GET /api/todos.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	todos, err := h.todoUC.ListTodos(c.Request().Context(), p.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}
	if todos == nil {
		todos = []*entity.Todo{}
	}

	return response.OK(c, todos)
}

// GetTodo handles GET /api/todos/:id.
func (h *TodoHandler) GetTodo(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoUC.GetTodo(c.Request().Context(), p.AccountID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todo)
}

// UpdateTodo handles PATCH and PUT /api/todos/:id.
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.todoUC.UpdateTodo(c.Request().Context(), p.AccountID, id, &usecase.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, todo)
}

// DeleteTodo handles DELETE /api/todos/:id.
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.todoUC.DeleteTodo(c.Request().Context(), p.AccountID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, DeleteTodoResponse{ID: id.String(), Deleted: true})
}
