package stats

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	st := rg.Group("/stats")
	{
		st.GET("/group/:groupId", h.GroupStats)
		st.GET("/group/:groupId/members", h.MemberStats)
		st.GET("/user/:userId", h.UserStats)
	}
}
