package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"immo-media/internal/usecase"
	"immo-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// uploadInput opens the "file" part. The caller must close the returned body.
func (h *MediaHandler) uploadInput(c *gin.Context) (usecase.UploadInput, func(), bool) {
	fileHeader, err := c.FormFile("file")
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Detail: fmt.Sprintf("Fichier trop volumineux (max %d MB)", maxErr.Limit/(1024*1024)),
		})
		return usecase.UploadInput{}, nil, false
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "Field 'file' is required"})
		return usecase.UploadInput{}, nil, false
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return usecase.UploadInput{}, nil, false
	}

	bienID := c.Query("id_bien")
	if bienID == "" {
		bienID = c.PostForm("id_bien")
	}

	return usecase.UploadInput{
		BienID:      strings.TrimSpace(bienID),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	}, func() { src.Close() }, true
}

// UploadImage godoc
// @Summary      Upload one photo
// @Description  Compresses the photo (max 1200x1200, JPEG quality 75), stores it and records it for the bien.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image (jpeg, png or webp, max 10 MB)"
// @Param        id_bien query string false "Owning bien id (defaults to bien_test)"
// @Success      200  {object}  SuccessResponse{data=ImageData}
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /images/upload [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	in, closeBody, ok := h.uploadInput(c)
	if !ok {
		return
	}
	defer closeBody()

	// finish store and persist even if the client goes away
	ctx := context.WithoutCancel(c.Request.Context())
	res, err := h.mediaUseCase.UploadImage(ctx, in)
	if err != nil {
		h.logger.Error("Image upload failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Image uploadée avec succès",
		Data:    toImageData(res),
	})
}

// UploadVideo godoc
// @Summary      Upload one video
// @Description  Stores the video as is (no transcoding) and records it for the bien.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Video (mp4, mov or avi, max 50 MB)"
// @Param        id_bien query string false "Owning bien id (defaults to bien_test)"
// @Success      200  {object}  SuccessResponse{data=VideoData}
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /images/videos/upload [post]
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	in, closeBody, ok := h.uploadInput(c)
	if !ok {
		return
	}
	defer closeBody()

	ctx := context.WithoutCancel(c.Request.Context())
	res, err := h.mediaUseCase.UploadVideo(ctx, in)
	if err != nil {
		h.logger.Error("Video upload failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Vidéo uploadée avec succès",
		Data: VideoData{
			ImageData: toImageData(res),
			SizeMB:    sizeMB(res.OriginalBytes),
		},
	})
}

// ListByBien godoc
// @Summary      List the media of a bien
// @Tags         images
// @Produce      json
// @Param        id path string true "Bien id"
// @Success      200  {object}  SuccessResponse{data=[]MediaListItem}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /images/bien/{id} [get]
func (h *MediaHandler) ListByBien(c *gin.Context) {
	bienID := c.Param("id")

	media, err := h.mediaUseCase.ListByBien(c.Request.Context(), bienID)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to list media for %s: %v", bienID, err)
		}
		respondError(c, err)
		return
	}

	count := len(media)
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Count:   &count,
		Data:    toMediaList(media),
	})
}

// Delete godoc
// @Summary      Delete a stored object
// @Description  Removes the object from the media store. The media record is kept.
// @Tags         images
// @Produce      json
// @Param        public_id path string true "Object key, may contain slashes (biens/<uuid>.jpg)"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /images/delete/{public_id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("public_id"), "/")
	if publicID == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Image non trouvée"})
		return
	}

	if err := h.mediaUseCase.Delete(c.Request.Context(), publicID); err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound {
			respondError(c, err)
			return
		}
		h.logger.Error("Failed to delete %s: %v", publicID, err)
		c.JSON(status, ErrorResponse{Detail: "Erreur: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Image supprimée avec succès",
	})
}
