package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"recipeblog/internal/repository"
	"recipeblog/internal/service"
)

type PostRequest struct {
	Title   string  `json:"title" validate:"required"`
	Excerpt *string `json:"excerpt"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
	Author  *string `json:"author"`
}

// GetPosts is public: everyone may browse the blog.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		log.Printf("failed to list posts: %v", err)
		WriteError(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("failed to fetch post %d: %v", id, err)
		WriteError(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title is required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), session, service.CreatePostRequest{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Author:  req.Author,
	})
	if err != nil {
		log.Printf("failed to create post: %v", err)
		WriteError(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title is required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), session, id, service.CreatePostRequest{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Author:  req.Author,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("failed to update post %d: %v", id, err)
		WriteError(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		WriteError(w, "Post ID is required", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		WriteError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), id); err != nil {
		log.Printf("failed to delete post %d: %v", id, err)
		WriteError(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}
