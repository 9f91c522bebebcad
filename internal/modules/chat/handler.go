package chat

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sudoLimin/OurCollege/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type sendMessageRequest struct {
	GroupID   int64      `json:"groupId"`
	UserID    *int64     `json:"userId,omitempty"`
	UserName  string     `json:"userName"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func (h *Handler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	m, err := h.service.Send(c.Request.Context(), req.GroupID, req.UserID, req.UserName, req.Content, req.Timestamp)
	switch {
	case errors.Is(err, ErrGroupRequired):
		response.BadRequest(c, "GROUP_ID_REQUIRED", "Group id is required")
	case errors.Is(err, ErrContentRequired):
		response.BadRequest(c, "CONTENT_REQUIRED", "Message content must not be blank")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_MESSAGE", "Failed to save message")
	default:
		response.Success(c, http.StatusOK, m)
	}
}

func (h *Handler) History(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("groupId"), 10, 64)
	if err != nil || groupID <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid group id")
		return
	}

	msgs, err := h.service.History(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load messages")
		return
	}
	response.Success(c, http.StatusOK, msgs)
}
