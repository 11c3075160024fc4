package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/main18/Developers-Social-Network/app/middleware"
	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/services"
)

// AuthController handles login and the authenticated profile lookup.
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new AuthController.
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Me handles GET /api/auth: returns the authenticated user's profile. The
// password hash is excluded by serialization.
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	user, err := ac.userService.GetProfile(userID)
	if err != nil {
		sendServerError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// Login handles POST /api/auth: verifies credentials and returns a token.
// Unknown email and wrong password produce the identical response.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorMsg(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := models.ValidateRequest(req); errs != nil {
		sendErrors(w, http.StatusBadRequest, errs)
		return
	}

	token, err := ac.userService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorMsg(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		sendServerError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
