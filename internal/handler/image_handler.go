package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/dustin/go-humanize"

	"recipeblog/internal/service"
)

type ImageResponse struct {
	URL string `json:"url"`
}

// UploadImage accepts a multipart image for a post header and returns the
// stored URL for the admin dashboard to put into the post's image field.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("File too large (max %s)",
			humanize.Bytes(uint64(h.Cfg.MaxUploadSize))), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.ImageService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImage) {
			WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}
		log.Printf("failed to upload image: %v", err)
		WriteError(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ImageResponse{URL: url}, http.StatusCreated)
}
