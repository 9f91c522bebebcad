package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.POST("/group/:groupId", h.CreateInGroup)
		tasks.GET("/group/:groupId", h.ListByGroup)
		tasks.GET("/info/:id", h.Get)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id/status", h.UpdateStatus)
		tasks.DELETE("/:id", h.Delete)
	}
}
