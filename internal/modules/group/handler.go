package group

import (
	"errors"
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

type createGroupRequest struct {
	Name      string `json:"name"`
	CreatedBy *int64 `json:"createdBy,omitempty"`
}

type renameGroupRequest struct {
	Name string `json:"name"`
}

type addMemberRequest struct {
	Email string `json:"email"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	g, err := h.service.Create(c.Request.Context(), req.Name, req.CreatedBy)
	if errors.Is(err, ErrNameRequired) {
		response.BadRequest(c, "NAME_REQUIRED", "Group name is required")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_GROUP", "Failed to create group")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) List(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list groups")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

func (h *Handler) Rename(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req renameGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	g, err := h.service.Rename(c.Request.Context(), id, req.Name)
	switch {
	case errors.Is(err, ErrNameRequired):
		response.BadRequest(c, "NAME_REQUIRED", "Group name is required")
	case errors.Is(err, ErrGroupNotFound):
		response.NotFound(c, "GROUP_NOT_FOUND", "Group not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_GROUP", "Failed to rename group")
	default:
		response.Success(c, http.StatusOK, g)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrGroupNotFound):
		response.NotFound(c, "GROUP_NOT_FOUND", "Group not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_REMOVING_GROUP", "Failed to delete group")
	default:
		response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
	}
}

// AddMember accepts the member email either as a query parameter or in
// the JSON body; the desktop client has used both over time.
func (h *Handler) AddMember(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	email := c.Query("email")
	if email == "" {
		var req addMemberRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			email = req.Email
		}
	}

	err := h.service.AddMemberByEmail(c.Request.Context(), groupID, email)
	switch {
	case errors.Is(err, ErrEmailRequired):
		response.BadRequest(c, "EMAIL_REQUIRED", "Member email is required")
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(c, "USER_NOT_FOUND", "No user with that email")
	case errors.Is(err, ErrAlreadyMember):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "User is already in the group")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_MEMBER", "Failed to add member")
	default:
		response.Success(c, http.StatusOK, gin.H{"status": "added"})
	}
}

func (h *Handler) RemoveMember(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.BadRequest(c, "INVALID_USER_ID", "Invalid userId")
		return
	}

	err = h.service.RemoveMember(c.Request.Context(), groupID, userID)
	switch {
	case errors.Is(err, ErrMemberNotFound):
		response.NotFound(c, "MEMBER_NOT_FOUND", "Member not found in group")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_REMOVING_MEMBER", "Failed to remove member")
	default:
		response.Success(c, http.StatusOK, gin.H{"status": "removed"})
	}
}

func (h *Handler) ListMembers(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list members")
		return
	}
	response.Success(c, http.StatusOK, members)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
