package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"immo-media/internal/entity"
	"immo-media/internal/repo/cache"
	"immo-media/internal/repo/persistent"
	"immo-media/pkg/imaging"
	"immo-media/pkg/logger"

	"github.com/google/uuid"
)

const mib = 1024 * 1024

var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var videoExtensions = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
}

type UploadInput struct {
	BienID      string
	Filename    string
	ContentType string
	// Size is the declared size of the part, 0 when unknown.
	Size int64
	Body io.Reader
}

type MediaOptions struct {
	Image             imaging.Options
	ImageMaxBytes     int64
	VideoMaxBytes     int64
	DefaultBienID     string
	CompensateOrphans bool
}

type MediaUseCase interface {
	UploadImage(ctx context.Context, in UploadInput) (*entity.UploadResult, error)
	UploadVideo(ctx context.Context, in UploadInput) (*entity.UploadResult, error)
	ListByBien(ctx context.Context, bienID string) ([]*entity.Media, error)
	Delete(ctx context.Context, externalID string) error
}

type mediaUseCase struct {
	mediaRepo persistent.MediaRepository
	store     MediaStore
	listCache cache.MediaListCache
	events    EventPublisher
	opts      MediaOptions
	logger    *logger.Logger
}

func NewMediaUseCase(
	mediaRepo persistent.MediaRepository,
	store MediaStore,
	listCache cache.MediaListCache,
	events EventPublisher,
	opts MediaOptions,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		mediaRepo: mediaRepo,
		store:     store,
		listCache: listCache,
		events:    events,
		opts:      opts,
		logger:    logger,
	}
}

func (uc *mediaUseCase) UploadImage(ctx context.Context, in UploadInput) (*entity.UploadResult, error) {
	if !imageContentTypes[normalizeContentType(in.ContentType)] {
		return nil, entity.NewDetailError(entity.ErrUnsupportedFormat, "Format non supporté")
	}

	uc.logger.Info("Receiving image %s for bien %s", in.Filename, uc.bienID(in.BienID))
	tooLarge := entity.NewDetailError(entity.ErrPayloadTooLarge, "Image trop grosse (max %d MB)", uc.opts.ImageMaxBytes/mib)
	if in.Size > uc.opts.ImageMaxBytes {
		return nil, tooLarge
	}
	data, exceeded, err := readLimited(in.Body, uc.opts.ImageMaxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if exceeded {
		return nil, tooLarge
	}

	compressed, err := imaging.Compress(data, uc.opts.Image)
	if errors.Is(err, imaging.ErrTooManyPixels) {
		uc.logger.Warn("Rejected image %s: %v", in.Filename, err)
		return nil, entity.NewDetailError(entity.ErrPayloadTooLarge, "Image trop grande (max %d pixels)", uc.opts.Image.MaxPixels)
	}
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Compression: %d → %d bytes", compressed.OriginalBytes, compressed.CompressedBytes)

	key := fmt.Sprintf("biens/%s.jpg", uuid.New().String())
	result, err := uc.storeAndPersist(ctx, in.BienID, entity.MediaKindImage, key, compressed.Data, "image/jpeg")
	if err != nil {
		return nil, err
	}
	result.OriginalBytes = int64(len(data))
	return result, nil
}

func (uc *mediaUseCase) UploadVideo(ctx context.Context, in UploadInput) (*entity.UploadResult, error) {
	contentType := normalizeContentType(in.ContentType)
	defaultExt, ok := videoExtensions[contentType]
	if !ok {
		return nil, entity.NewDetailError(entity.ErrUnsupportedFormat, "Format vidéo non supporté")
	}

	uc.logger.Info("Receiving video %s for bien %s", in.Filename, uc.bienID(in.BienID))
	if in.Size > uc.opts.VideoMaxBytes {
		return nil, entity.NewDetailError(entity.ErrPayloadTooLarge, "Vidéo trop grosse (%.1f MB)", float64(in.Size)/mib)
	}
	data, exceeded, err := readLimited(in.Body, uc.opts.VideoMaxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read video: %w", err)
	}
	if exceeded {
		size := int64(len(data))
		if in.Size > size {
			size = in.Size
		}
		return nil, entity.NewDetailError(entity.ErrPayloadTooLarge, "Vidéo trop grosse (%.1f MB)", float64(size)/mib)
	}
	uc.logger.Info("Video size: %.1f MB", float64(len(data))/mib)

	ext := strings.ToLower(filepath.Ext(in.Filename))
	if ext == "" {
		ext = defaultExt
	}
	key := fmt.Sprintf("videos/%s%s", uuid.New().String(), ext)

	result, err := uc.storeAndPersist(ctx, in.BienID, entity.MediaKindVideo, key, data, contentType)
	if err != nil {
		return nil, err
	}
	result.OriginalBytes = int64(len(data))
	return result, nil
}

// storeAndPersist uploads first and writes the row second, so a row always
// points at an object that exists.
func (uc *mediaUseCase) storeAndPersist(ctx context.Context, bienID string, kind entity.MediaKind, key string, data []byte, contentType string) (*entity.UploadResult, error) {
	uc.logger.Info("Uploading %s to media store as %s", kind, key)
	object, err := uc.store.Put(ctx, key, data, contentType)
	if err != nil {
		uc.logger.Error("Media store upload failed for %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrStore, err)
	}

	media := &entity.Media{
		BienID: uc.bienID(bienID),
		URL:    object.URL,
		Kind:   kind,
	}
	if err := uc.mediaRepo.Create(ctx, media); err != nil {
		uc.logger.Error("Failed to save %s %s: %v", kind, key, err)
		uc.compensate(ctx, object.ExternalID)
		return nil, fmt.Errorf("failed to save media: %w", err)
	}
	uc.logger.Info("Saved %s %s for bien %s", kind, media.ID, media.BienID)

	uc.invalidate(ctx, media.BienID)
	publishEvent(uc.events, uc.logger, eventMediaUploaded, map[string]interface{}{
		"id_image":  media.ID,
		"id_bien":   media.BienID,
		"type":      string(kind),
		"url":       media.URL,
		"public_id": object.ExternalID,
		"bytes":     object.Bytes,
	})

	return &entity.UploadResult{Media: media, Object: object}, nil
}

// compensate removes an object whose row could not be written. Disabled
// unless configured, in which case the object stays orphaned.
func (uc *mediaUseCase) compensate(ctx context.Context, externalID string) {
	if !uc.opts.CompensateOrphans {
		uc.logger.Warn("Orphaned object left in media store: %s", externalID)
		return
	}
	if err := uc.store.Delete(ctx, externalID); err != nil {
		uc.logger.Error("Failed to remove orphaned object %s: %v", externalID, err)
		return
	}
	uc.logger.Info("Removed orphaned object %s", externalID)
}

func (uc *mediaUseCase) ListByBien(ctx context.Context, bienID string) ([]*entity.Media, error) {
	// write back only when the read told us which generation was current
	var (
		lookup    cache.Lookup
		cacheable bool
	)
	if uc.listCache != nil {
		var err error
		lookup, err = uc.listCache.Get(ctx, bienID)
		if err != nil {
			uc.logger.Warn("Media cache read failed for %s: %v", bienID, err)
		} else if lookup.Hit && len(lookup.Media) > 0 {
			return lookup.Media, nil
		}
		cacheable = err == nil
	}

	media, err := uc.mediaRepo.GetByBienID(ctx, bienID)
	if err != nil {
		return nil, err
	}
	if len(media) == 0 {
		return nil, entity.NewDetailError(entity.ErrNotFound, "Aucune image trouvée pour ce bien")
	}

	if cacheable {
		if err := uc.listCache.Set(ctx, bienID, lookup.Generation, media); err != nil {
			uc.logger.Warn("Media cache write failed for %s: %v", bienID, err)
		}
	}
	return media, nil
}

// Delete removes the object from the media store only. The row is kept.
func (uc *mediaUseCase) Delete(ctx context.Context, externalID string) error {
	if err := uc.store.Delete(ctx, externalID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.NewDetailError(entity.ErrNotFound, "Image non trouvée")
		}
		return fmt.Errorf("failed to delete object %s: %w", externalID, err)
	}
	uc.logger.Info("Deleted object %s from media store", externalID)
	return nil
}

func (uc *mediaUseCase) invalidate(ctx context.Context, bienID string) {
	if uc.listCache == nil {
		return
	}
	if err := uc.listCache.Invalidate(ctx, bienID); err != nil {
		uc.logger.Warn("Media cache invalidation failed for %s: %v", bienID, err)
	}
}

func (uc *mediaUseCase) bienID(bienID string) string {
	if bienID == "" {
		return uc.opts.DefaultBienID
	}
	return bienID
}

func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// readLimited reads at most max bytes and reports whether the body was longer.
func readLimited(r io.Reader, max int64) ([]byte, bool, error) {
	if r == nil {
		return nil, false, errors.New("empty body")
	}
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, false, err
	}
	return data, int64(len(data)) > max, nil
}
