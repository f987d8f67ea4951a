package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/streamify-app/auth-server/internal/server/accounts"
)

// Fixed client-facing messages. These are part of the compatibility contract.
const (
	msgInvalidBody        = "Invalid request body"
	msgEmailAlreadyExists = "Email already exists, please use a different one"
	msgInvalidCredentials = "Invalid email or password"
	msgUnauthorized       = "Unauthorized"
	msgLogoutSuccessful   = "Logout successful"
	msgInternalError      = "Internal Server Error"
)

type userResponse struct {
	Success bool          `json:"success"`
	User    accounts.View `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeUser(w http.ResponseWriter, status int, account *accounts.Account) {
	writeJSON(w, status, userResponse{Success: true, User: account.Public()})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
