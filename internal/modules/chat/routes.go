package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	chats := rg.Group("/chat")
	{
		chats.POST("/send", h.Send)
		chats.GET("/:groupId", h.History)
	}
}
