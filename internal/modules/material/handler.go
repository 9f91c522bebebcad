package material

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

func (h *Handler) AddLink(c *gin.Context) {
	var m StudyMaterial
	if err := c.ShouldBindJSON(&m); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}

	saved, err := h.service.AddLink(c.Request.Context(), &m)
	switch {
	case errors.Is(err, ErrGroupRequired):
		response.BadRequest(c, "GROUP_ID_REQUIRED", "Group id is required")
	case errors.Is(err, ErrURLRequired):
		response.BadRequest(c, "URL_REQUIRED", "Material url is required")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_MATERIAL", "Failed to save material")
	default:
		response.Success(c, http.StatusOK, saved)
	}
}

// Upload handles multipart form uploads. groupId, uploadedBy and title
// ride along as ordinary form fields.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		response.BadRequest(c, "FILE_REQUIRED", "File is required")
		return
	}

	groupID := formInt64(c, "groupId")
	uploadedBy := formInt64(c, "uploadedBy")
	title := c.PostForm("title")

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_FILE", "Failed to read uploaded file")
		return
	}
	defer src.Close()

	saved, err := h.service.SaveFile(c.Request.Context(), groupID, uploadedBy, title, fileHeader.Filename, src)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ERROR_SAVING_FILE", "Failed to save uploaded file")
		return
	}
	response.Success(c, http.StatusOK, saved)
}

func (h *Handler) ListByGroup(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("groupId"), 10, 64)
	if err != nil || groupID <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid group id")
		return
	}

	materials, err := h.service.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list materials")
		return
	}
	response.Success(c, http.StatusOK, materials)
}

func (h *Handler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid material id")
		return
	}

	path, filename, err := h.service.FileForDownload(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "MATERIAL_NOT_FOUND", "Material not found")
	case errors.Is(err, ErrNotAFile):
		response.BadRequest(c, "NOT_A_FILE", "Material is a link, not a file")
	case errors.Is(err, ErrFileMissing):
		response.NotFound(c, "FILE_NOT_FOUND", "Stored file is missing")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "ERROR_READING_FILE", "Failed to read file")
	default:
		c.FileAttachment(path, filename)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "INVALID_ID", "Invalid material id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "MATERIAL_NOT_FOUND", "Material not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete material")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func formInt64(c *gin.Context, name string) *int64 {
	v, err := strconv.ParseInt(c.PostForm(name), 10, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
