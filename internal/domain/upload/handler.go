package upload

import (
	"net/http"
	"strconv"

	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload godoc
// @Summary Upload a property photo or lease document
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param kind formData string true "photo or document"
// @Param property_id formData int false "Property to attach the file to"
// @Success 201 {object} response.Response
// @Failure 400,401,413,500 {object} response.Response
// @Router /uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file provided")
		return
	}

	var propertyID *int64
	if raw := c.PostForm("property_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid property id")
			return
		}
		propertyID = &id
	}

	record, err := h.service.Save(c.Request.Context(), c.GetInt64("user_id"), propertyID, c.PostForm("kind"), fileHeader)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidMimeType, ErrInvalidKind:
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// GetByID godoc
// @Summary Get upload metadata by ID
// @Tags Uploads
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Router /uploads/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	record, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
		return
	}
	response.Success(c, http.StatusOK, record)
}

// ListMy godoc
// @Summary List my uploads
// @Tags Uploads
// @Security BearerAuth
// @Router /uploads [get]
func (h *Handler) ListMy(c *gin.Context) {
	uploads, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list uploads")
		return
	}
	response.Success(c, http.StatusOK, uploads)
}

// ListByProperty godoc
// @Summary List files attached to a property
// @Tags Uploads
// @Param id path int true "Property ID"
// @Param kind query string false "photo or document"
// @Router /properties/{id}/files [get]
func (h *Handler) ListByProperty(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid property id")
		return
	}

	uploads, err := h.service.ListByProperty(c.Request.Context(), propertyID, c.Query("kind"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list files")
		return
	}
	response.Success(c, http.StatusOK, uploads)
}

// Approve godoc
// @Summary Approve a lease document
// @Description Manager of the attached property (or an admin) signs off a
// document. The uploader is notified.
// @Tags Uploads
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Success 200 {object} response.Response
// @Failure 400,403,404 {object} response.Response
// @Router /uploads/{id}/approve [put]
func (h *Handler) Approve(c *gin.Context) {
	record, err := h.service.ApproveDocument(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), c.Param("id"))
	if err != nil {
		switch err {
		case ErrUploadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
		case ErrNotDocument:
			response.Error(c, http.StatusBadRequest, "NOT_DOCUMENT", err.Error())
		case ErrNotManager:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "approve failed")
		}
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete an upload (file and record)
// @Tags Uploads
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Router /uploads/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetInt64("user_id")); err != nil {
		switch err {
		case ErrUploadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
		case ErrNotOwner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "delete failed")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}
