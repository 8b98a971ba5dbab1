package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"recipeblog/internal/models"
	"recipeblog/internal/repository"
	"recipeblog/internal/service"
)

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type CommentResponse struct {
	OK      bool            `json:"ok"`
	Comment *models.Comment `json:"comment,omitempty"`
}

// GetComments is public: comment threads render on post pages without a
// session.
func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postIDParam := r.URL.Query().Get("postId")
	if postIDParam == "" {
		WriteError(w, "postId required", http.StatusBadRequest)
		return
	}

	postID, err := strconv.ParseInt(postIDParam, 10, 64)
	if err != nil {
		WriteError(w, "Invalid postId", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		log.Printf("failed to list comments for post %d: %v", postID, err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, CommentsResponse{Comments: comments}, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		PostID  int64  `json:"postId" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "postId and content required", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), session, req.PostID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "Only regular users may post comments", http.StatusForbidden)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			log.Printf("failed to create comment: %v", err)
			WriteError(w, "Failed to create comment", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, CommentResponse{OK: true, Comment: comment}, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		CommentID int64  `json:"commentId" validate:"required"`
		Content   string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "commentId and content required", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), session, req.CommentID, req.Content)
	if err != nil {
		h.writeCommentMutationError(w, req.CommentID, err)
		return
	}

	writeJSON(w, CommentResponse{OK: true, Comment: comment}, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	commentIDParam := r.URL.Query().Get("commentId")
	if commentIDParam == "" {
		WriteError(w, "commentId required", http.StatusBadRequest)
		return
	}

	commentID, err := strconv.ParseInt(commentIDParam, 10, 64)
	if err != nil {
		WriteError(w, "Invalid commentId", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), session, commentID); err != nil {
		h.writeCommentMutationError(w, commentID, err)
		return
	}

	writeJSON(w, CommentResponse{OK: true}, http.StatusOK)
}

func (h *Handlers) writeCommentMutationError(w http.ResponseWriter, commentID int64, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Comment not found", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Forbidden", http.StatusForbidden)
	default:
		log.Printf("failed to mutate comment %d: %v", commentID, err)
		WriteError(w, "Server error", http.StatusInternalServerError)
	}
}
