package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
)

// maxPhotoBytes caps an uploaded worker photo.
const maxPhotoBytes = 5 << 20

var rasterPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func registerWorkerRoutes(rg *gin.RouterGroup, ws portssvc.WorkerSvcFacade) {
	h := &workerHandler{workerService: ws}

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
	}
}

// createWorker godoc
// @Summary Create a worker
// @Description Accepts multipart form data so a photo can be attached. A manager's workers always go to their own factory; the owner must pass factory_id.
// @Tags workers
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Worker name"
// @Param designation formData string true "Designation"
// @Param factory_id formData string false "Factory (owner only)"
// @Param photo formData file false "Worker photo"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreateWorkerRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	photo, err := readPhoto(c)
	if err != nil {
		respondError(c, err, "Failed to read photo")
		return
	}
	worker, err := h.workerService.CreateWorker(c.Request.Context(), session.Scope(), req, photo)
	if err != nil {
		respondError(c, err, "Failed to create worker")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// readPhoto returns the optional "photo" part of a multipart request.
func readPhoto(c *gin.Context) (*domain.Photo, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	header, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewValidationFailedError("photo", "could not be read")
	}
	if header.Size > maxPhotoBytes {
		return nil, apperrors.NewValidationFailedError("photo", "must be 5MB or smaller")
	}
	f, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationFailedError("photo", "could not be read")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return nil, apperrors.NewValidationFailedError("photo", "could not be read")
	}
	if len(data) > maxPhotoBytes {
		return nil, apperrors.NewValidationFailedError("photo", "must be 5MB or smaller")
	}

	// The declared type is ignored; only sniffed raster formats are kept.
	contentType := http.DetectContentType(data)
	if _, ok := rasterPhotoTypes[contentType]; !ok {
		return nil, apperrors.NewValidationFailedError("photo", "must be a JPEG, PNG, GIF or WebP image")
	}
	return &domain.Photo{Data: data, ContentType: contentType, Filename: header.Filename}, nil
}

// listWorkers godoc
// @Summary List workers
// @Description The owner sees every worker; a manager sees their factory's workers.
// @Tags workers
// @Produce json
// @Success 200 {object} dto.ListWorkersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	workers, err := h.workerService.ListWorkers(c.Request.Context(), session.Scope())
	if err != nil {
		respondError(c, err, "Failed to list workers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}
