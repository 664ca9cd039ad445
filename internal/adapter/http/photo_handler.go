package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"claims-backend/internal/infrastructure/filestore"
	"claims-backend/internal/usecase/photo"
)

var allowedUploadMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type PhotoHandler struct {
	uc       *photo.Usecase
	store    *filestore.Local
	maxBytes int64
}

func NewPhotoHandler(uc *photo.Usecase, store *filestore.Local, maxBytes int64) *PhotoHandler {
	return &PhotoHandler{uc: uc, store: store, maxBytes: maxBytes}
}

// tooLargeMsg reports the configured cap, in MB when it divides evenly.
func tooLargeMsg(maxBytes int64) string {
	if maxBytes >= 1<<20 && maxBytes%(1<<20) == 0 {
		return fmt.Sprintf("file too large (max %dMB)", maxBytes>>20)
	}
	return fmt.Sprintf("file too large (max %d bytes)", maxBytes)
}

// UploadPhoto accepts a multipart "photo" field, bounded by maxBytes.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing photo file"})
	}
	if fh.Size > h.maxBytes {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: tooLargeMsg(h.maxBytes)})
	}
	mime := fh.Header.Get(echo.HeaderContentType)
	if !allowedUploadMimes[mime] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type (jpeg, png or webp)"})
	}

	src, err := fh.Open()
	if err != nil {
		return errorJSON(c, err)
	}
	defer src.Close()

	// fh.Size comes from the client; re-check while reading
	data, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		return errorJSON(c, err)
	}
	if int64(len(data)) > h.maxBytes {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: tooLargeMsg(h.maxBytes)})
	}

	dto, err := h.uc.Upload(c.Request().Context(), c.Param("claim_number"), photo.UploadInput{
		FileName: fh.Filename,
		MimeType: mime,
		Data:     data,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PhotoHandler) ListClaimPhotos(c echo.Context) error {
	dtos, err := h.uc.ListByClaim(c.Request().Context(), c.Param("claim_number"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"photos": dtos})
}

func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid photo id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid photo id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ServeUpload streams a stored photo by its stored name.
func (h *PhotoHandler) ServeUpload(c echo.Context) error {
	p, err := h.store.Path(c.Param("filename"))
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) || errors.Is(err, filestore.ErrInvalidName) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return errorJSON(c, err)
	}
	return c.File(p)
}
