package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/main18/Developers-Social-Network/app/middleware"
	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/repositories"
	"github.com/main18/Developers-Social-Network/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts, likes, and comments.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /api/posts: all posts, newest first.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServerError(w, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles GET /api/posts/{id}.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendPostError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles POST /api/posts.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorMsg(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.ValidateRequest(req); errs != nil {
		sendErrors(w, http.StatusBadRequest, errs)
		return
	}

	post, err := pc.postService.CreatePost(userID, req.Text)
	if err != nil {
		sendServerError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}. Owner-only.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(userID, id); err != nil {
		pc.sendPostError(w, err)
		return
	}
	sendMsg(w, http.StatusOK, "Post removed")
}

// Like handles PUT /api/posts/like/{id}.
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	likes, err := pc.postService.Like(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyLiked) {
			sendMsg(w, http.StatusBadRequest, "Post already liked")
			return
		}
		pc.sendPostError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/{id}. Unliking a post the user never
// liked is reported as an informational no-op, not an error.
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	likes, err := pc.postService.Unlike(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotLiked) {
			sendMsg(w, http.StatusOK, "Post has not yet been liked")
			return
		}
		pc.sendPostError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, likes)
}

// Comment handles POST /api/posts/comment/{id}.
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorMsg(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if errs := models.ValidateRequest(req); errs != nil {
		sendErrors(w, http.StatusBadRequest, errs)
		return
	}

	comments, err := pc.postService.AddComment(userID, id, req.Text)
	if err != nil {
		pc.sendPostError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/comment/{id}/{comment_id}.
// Owner-only.
func (pc *PostController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	commentID := mux.Vars(r)["comment_id"]

	comments, err := pc.postService.DeleteComment(userID, id, commentID)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			sendMsg(w, http.StatusNotFound, "Comment does not exist")
			return
		}
		pc.sendPostError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// sendPostError maps service errors from post operations to HTTP responses.
func (pc *PostController) sendPostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendMsg(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrForbidden):
		sendMsg(w, http.StatusUnauthorized, "Not authorized")
	default:
		sendServerError(w, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		sendMsg(w, http.StatusNotFound, "Post not found")
		return 0, false
	}
	return id, true
}

func requesterID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return 0, false
	}
	return userID, true
}
