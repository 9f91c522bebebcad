package task

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

type createTaskRequest struct {
	GroupID     *int64 `json:"groupId,omitempty"`
	CreatedBy   *int64 `json:"createdBy,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	// Some clients carry createdBy as a query parameter instead.
	if req.CreatedBy == nil {
		if v, err := strconv.ParseInt(c.Query("createdBy"), 10, 64); err == nil && v > 0 {
			req.CreatedBy = &v
		}
	}

	h.create(c, req)
}

// CreateInGroup handles POST /tasks/group/:groupId for clients that send
// the group in the URL instead of the body.
func (h *Handler) CreateInGroup(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}
	req.GroupID = &groupID

	if req.CreatedBy == nil {
		if v, err := strconv.ParseInt(c.Query("createdBy"), 10, 64); err == nil && v > 0 {
			req.CreatedBy = &v
		}
	}

	h.create(c, req)
}

func (h *Handler) create(c *gin.Context, req createTaskRequest) {
	t, err := h.service.Create(c.Request.Context(), req.GroupID, req.CreatedBy, req.Title, req.Description)
	switch {
	case errors.Is(err, ErrTitleRequired):
		response.BadRequest(c, "TITLE_REQUIRED", "Task title is required")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_TASK", "Failed to create task")
	default:
		response.Success(c, http.StatusOK, t)
	}
}

func (h *Handler) ListByGroup(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	tasks, err := h.service.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, tasks)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "TASK_NOT_FOUND", "Task not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get task")
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req.Title, req.Description, req.Status)
	h.respondMutation(c, t, err)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	t, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	h.respondMutation(c, t, err)
}

func (h *Handler) respondMutation(c *gin.Context, t *Task, err error) {
	switch {
	case errors.Is(err, ErrTitleRequired):
		response.BadRequest(c, "TITLE_REQUIRED", "Task title is required")
	case errors.Is(err, ErrInvalidStatus):
		response.BadRequest(c, "INVALID_STATUS", "Status must be OPEN, IN_PROGRESS or DONE")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "TASK_NOT_FOUND", "Task not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_TASK", "Failed to update task")
	default:
		response.Success(c, http.StatusOK, t)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "TASK_NOT_FOUND", "Task not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete task")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
