package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/api/metrics"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// MediaHandler serves media upload, delivery, and management endpoints.
type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload stores a single image from a multipart form.
//
// @Summary      Upload media file
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  domain.MediaFile
// @Failure      400   {object}  map[string]string
// @Router       /api/upload/image [post]
func (h *MediaHandler) Upload(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	in, src, err := uploadInput(fh)
	if err != nil {
		return err
	}
	defer src.Close()

	stored, err := h.mediaService.Upload(c.Request().Context(), in, account.Username)
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.MediaUploadsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, stored)
}

// UploadBulk stores up to ten images; each file succeeds or fails on
// its own and the response reports both outcomes per file.
//
// @Summary      Upload multiple media files
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files  formData  file  true  "Image files"
// @Success      200    {array}   ports.BulkUploadItem
// @Failure      400    {object}  map[string]string
// @Router       /api/upload/bulk [post]
func (h *MediaHandler) UploadBulk(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form is required")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "files are required")
	}

	inputs := make([]ports.UploadInput, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, fh := range headers {
		in, src, err := uploadInput(fh)
		if err != nil {
			return err
		}
		opened = append(opened, src)
		inputs = append(inputs, in)
	}

	items, err := h.mediaService.UploadBulk(c.Request().Context(), inputs, account.Username)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.Error == "" {
			metrics.MediaUploadsTotal.WithLabelValues("success").Inc()
		} else {
			metrics.MediaUploadsTotal.WithLabelValues("failure").Inc()
		}
	}
	return c.JSON(http.StatusOK, items)
}

// Serve streams a stored file. The content type comes from the stored
// metadata; files with no metadata are served as octet-stream.
//
// @Summary      Serve media file
// @Tags         public
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored filename"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/media/{filename} [get]
func (h *MediaHandler) Serve(c echo.Context) error {
	meta, path, err := h.mediaService.Resolve(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return err
	}

	contentType := "application/octet-stream"
	if meta != nil && meta.ContentType != "" {
		contentType = meta.ContentType
	}
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	return c.File(path)
}

// List returns upload metadata, newest first.
//
// @Summary      List media files
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum results"
// @Success      200    {array}   domain.MediaFile
// @Router       /api/media [get]
func (h *MediaHandler) List(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	files, err := h.mediaService.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

// Delete removes a stored file and its metadata.
//
// @Summary      Delete media file
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        filename  path      string  true  "Stored filename"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/media/{filename} [delete]
func (h *MediaHandler) Delete(c echo.Context) error {
	if err := h.mediaService.Delete(c.Request().Context(), c.Param("filename")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "File deleted successfully", Success: true})
}

func uploadInput(fh *multipart.FileHeader) (ports.UploadInput, multipart.File, error) {
	src, err := fh.Open()
	if err != nil {
		return ports.UploadInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	return ports.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     src,
	}, src, nil
}
