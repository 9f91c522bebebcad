package group

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	groups := rg.Group("/groups")
	{
		groups.POST("", h.Create)
		groups.GET("", h.List)
		groups.PUT("/:id", h.Rename)
		groups.DELETE("/:id", h.Delete)

		groups.POST("/:id/add-member", h.AddMember)
		groups.GET("/:id/members", h.ListMembers)
		groups.DELETE("/:id/remove-member", h.RemoveMember)
	}
}
