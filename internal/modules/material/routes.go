package material

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	materials := rg.Group("/materials")
	{
		materials.POST("/link", h.AddLink)
		materials.POST("/upload", h.Upload)
		materials.GET("/group/:groupId", h.ListByGroup)
		materials.GET("/download/:id", h.Download)
		materials.DELETE("/:id", h.Delete)
	}
}
