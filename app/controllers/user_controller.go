package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/services"
)

// UserController handles registration.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register handles POST /api/users: validates the input, creates the account,
// and returns a token for it.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorMsg(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := models.ValidateRequest(req); errs != nil {
		sendErrors(w, http.StatusBadRequest, errs)
		return
	}

	token, err := uc.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			sendErrorMsg(w, http.StatusBadRequest, "User already exists")
			return
		}
		sendServerError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
