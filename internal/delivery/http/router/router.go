// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"novablog/internal/delivery/http/middleware"
	"novablog/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.SignUp)
		authGroup.POST("/signin", r.userHandler.SignIn)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public read surface
	e.GET("/blogs", r.blogHandler.List)
	e.GET("/blogs/:id", r.blogHandler.Get)
	e.POST("/blogs/:id/view", r.blogHandler.TrackView)
	e.GET("/blogs/:id/comments", r.commentHandler.ListByBlog)

	// Account routes behind the authentication gate
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.Profile)
	}

	// Authoring routes behind the authentication gate
	authed := e.Group("", r.authMiddleware.Authenticate)
	{
		authed.POST("/blogs", r.blogHandler.Create)
		authed.PUT("/blogs/:id", r.blogHandler.Update)
		authed.DELETE("/blogs/:id", r.blogHandler.Delete)
		authed.GET("/my/blogs", r.blogHandler.ListMine)
		authed.POST("/blogs/:id/like", r.blogHandler.ToggleLike)
		authed.POST("/blogs/:id/comments", r.commentHandler.Create)
		authed.DELETE("/comments/:id", r.commentHandler.Delete)
	}
}
