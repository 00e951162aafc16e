package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxUploadBytes bounds a single uploaded file.
const MaxUploadBytes = 10 << 20 // 10 MiB

// allowedUploadTypes are the accepted upload content types.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(storage service.FileStorage, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{
		storage: storage,
		logger:  logger,
	}
}

// Upload validates and stores a file, returning its public URL.
func (srv *uploadService) Upload(ctx context.Context, actor entity.Actor, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input.Size > MaxUploadBytes {
		return nil, domainerrors.ErrFileTooLarge.WrapMessage("upload rejected")
	}
	ext, ok := allowedUploadTypes[input.ContentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails("content type " + input.ContentType)
	}

	kind := input.Kind
	if kind == "" {
		kind = "misc"
	}

	// Keys never derive from the client filename.
	key := path.Join(
		strings.ToLower(kind),
		time.Now().Format("2006/01"),
		actor.ID.String()+"-"+uuid.NewString()+ext,
	)

	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		logger.Error("Failed to store upload", "key", key, "error", err)

		return nil, domainerrors.ErrFileUploadFailed.WrapMessage("upload failed")
	}

	logger.Debug("Stored upload", "key", key, "filename", input.Filename)

	return &usecase.UploadOutput{Key: key, URL: url}, nil
}

// Remove deletes a previously uploaded file by its key. Only the uploader
// or an admin may remove a file.
func (srv *uploadService) Remove(ctx context.Context, actor entity.Actor, key string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	ownerID, err := uploadOwner(key)
	if err != nil {
		return err
	}
	if !actor.CanMutate(ownerID) {
		return domainerrors.ErrForbidden.WrapMessage("file removal rejected")
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete stored file")
	}

	logger.Debug("Deleted upload", "key", key)

	return nil
}

// uploadOwner recovers the uploader's ID from a storage key. Keys embed the
// uploader's UUID as the leading 36 characters of the base filename.
func uploadOwner(key string) (uuid.UUID, error) {
	base := path.Base(key)
	if len(base) < 36 {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("malformed storage key")
	}

	ownerID, err := uuid.Parse(base[:36])
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("malformed storage key")
	}

	return ownerID, nil
}
