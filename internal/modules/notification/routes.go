package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the mailbox gateway. The :id segment is a user id
// on the list/count/read-all endpoints and a notification id elsewhere.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	notif := rg.Group("/notifications")
	{
		notif.POST("", h.Create)
		notif.GET("/:id", h.ListByUser)
		notif.GET("/:id/unread", h.ListUnread)
		notif.GET("/:id/count", h.UnreadCount)
		notif.PUT("/:id/read", h.MarkRead)
		notif.PUT("/:id/read-all", h.MarkAllRead)
		notif.DELETE("/:id", h.Delete)
	}
}
