package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public account endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes mounts endpoints that need an access token.
func RegisterProtectedRoutes(rg *gin.RouterGroup, h *Handler) {
	users := rg.Group("/users")
	{
		users.GET("/all", h.List)
	}
}
