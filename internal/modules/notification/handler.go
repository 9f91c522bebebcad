package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sudoLimin/OurCollege/internal/pkg/response"
	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

// Handler is the mailbox read-side API. List endpoints are scoped by the
// path-supplied user id; mark/delete target a notification id.
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	if req.UserID <= 0 {
		response.BadRequest(c, "USER_ID_REQUIRED", "Recipient user id is required")
		return
	}

	msg := sanitize.Clean(req.Message)
	if msg == "" {
		response.BadRequest(c, "MESSAGE_REQUIRED", "Message must not be blank")
		return
	}

	n := &Notification{
		UserID:  req.UserID,
		Message: msg,
		IsRead:  false,
	}
	if req.CreatedAt != nil {
		n.CreatedAt = *req.CreatedAt
	}

	if err := h.repo.Create(c.Request.Context(), n); err != nil {
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_NOTIFICATION", "Failed to save notification")
		return
	}
	response.Success(c, http.StatusOK, n)
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, ok := h.pathID(c)
	if !ok {
		return
	}

	list, err := h.repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListUnread(c *gin.Context) {
	userID, ok := h.pathID(c)
	if !ok {
		return
	}

	list, err := h.repo.ListUnreadByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID, ok := h.pathID(c)
	if !ok {
		return
	}

	count, err := h.repo.CountUnread(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get unread count")
		return
	}
	response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	err := h.repo.MarkRead(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

// MarkAllRead is a success no-op when the user has nothing unread.
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID, ok := h.pathID(c)
	if !ok {
		return
	}

	count, err := h.repo.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark all as read")
		return
	}
	response.Success(c, http.StatusOK, MarkAllReadResponse{MarkedAsRead: count})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
