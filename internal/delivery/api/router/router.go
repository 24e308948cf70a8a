// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todoapp/internal/delivery/api/middleware"
	"todoapp/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	accountHandler *handler.AccountHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		accountHandler: params.AccountHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	// Every todo route sits behind the auth gate.
	todosGroup := e.Group("/api/todos")
	todosGroup.Use(r.authMiddleware.Authenticate)
	{
		todosGroup.POST("", r.todoHandler.CreateTodo)
		todosGroup.GET("", r.todoHandler.ListTodos)
		todosGroup.GET("/:id", r.todoHandler.GetTodo)
		todosGroup.PATCH("/:id", r.todoHandler.UpdateTodo)
		todosGroup.PUT("/:id", r.todoHandler.UpdateTodo)
		todosGroup.DELETE("/:id", r.todoHandler.DeleteTodo)
	}
}
