package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/main18/Developers-Social-Network/app/models"
)

// Helper methods for consistent response handling. Validation and credential
// failures use the batched {"errors":[{"msg":...}]} shape; everything else is
// a single {"msg":...}. Internal causes are logged, never returned.

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendMsg(w http.ResponseWriter, status int, msg string) {
	sendJSON(w, status, map[string]string{"msg": msg})
}

func sendErrors(w http.ResponseWriter, status int, errs []models.FieldError) {
	sendJSON(w, status, map[string][]models.FieldError{"errors": errs})
}

func sendErrorMsg(w http.ResponseWriter, status int, msg string) {
	sendErrors(w, status, []models.FieldError{{Msg: msg}})
}

func sendServerError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	sendMsg(w, http.StatusInternalServerError, "Server error")
}
