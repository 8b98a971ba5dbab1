package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"recipeblog/internal/config"
	"recipeblog/internal/storage"
)

// ErrUnsupportedImage is returned when the uploaded bytes are not one of the
// accepted image formats.
var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ImageService interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type imageService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewImageService(storage storage.Storage, cfg *config.Config) ImageService {
	return &imageService{storage: storage, cfg: cfg}
}

// UploadImage sniffs the real content type from the first bytes of the file
// rather than trusting the client header, then stores the image and returns
// the public URL for posts.image.
func (s *imageService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	header := make([]byte, 3072)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	header = header[:n]

	mtype := mimetype.Detect(header)
	if !allowedImageTypes[mtype.String()] {
		return "", ErrUnsupportedImage
	}

	reader := io.MultiReader(bytes.NewReader(header), file)

	_, imageURL, err := s.storage.UploadImage(ctx, fileName, reader, size, mtype.String())
	if err != nil {
		return "", err
	}

	return imageURL, nil
}
