package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/task-tracker-api/internal/middleware"
)

// RegisterRoutes mounts all user and task routes on the engine. The
// session middleware must already be installed.
func RegisterRoutes(r *gin.Engine, userHandler *UserHandler, taskHandler *TaskHandler) {
	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/logout", middleware.RequireAuth(), userHandler.Logout)
		users.GET("", middleware.RequireAuth(), middleware.RequireAdmin(), userHandler.ListUsers)
		users.GET("/:id", middleware.RequireAuth(), userHandler.GetUser)
		users.PUT("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), userHandler.DeleteUser)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth())
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", middleware.RequireAdmin(), taskHandler.UpdateTask)
		tasks.DELETE("/:id", middleware.RequireAdmin(), taskHandler.DeleteTask)
	}
}
