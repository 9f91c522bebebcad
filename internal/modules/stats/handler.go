package stats

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sudoLimin/OurCollege/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GroupStats(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	out, err := h.service.GroupStats(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute group stats")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) MemberStats(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	out, err := h.service.MemberStats(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute member stats")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UserStats(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	out, err := h.service.UserStats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute user stats")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
