package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/streamify-app/auth-server/internal/common"
	"github.com/streamify-app/auth-server/internal/server/accounts"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	account, token, err := s.accounts.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case accounts.IsValidationError(err):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusBadRequest, msgEmailAlreadyExists)
		default:
			s.logger.Error(r.Context(), "Error in signup handler", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	http.SetCookie(w, s.sessionCookie(token, s.accounts.SessionTokenValidity()))

	s.logger.Info(r.Context(), "Account registered", "email", account.Email)
	writeUser(w, http.StatusCreated, account)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	account, token, err := s.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case accounts.IsValidationError(err):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrorUnauthorized):
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			s.logger.Error(r.Context(), "Error in login handler", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	http.SetCookie(w, s.sessionCookie(token, s.accounts.SessionTokenValidity()))

	writeUser(w, http.StatusOK, account)
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Stateless sessions: nothing to revoke server-side, we only tell the
	// client to drop the cookie. Safe to call any number of times.
	http.SetCookie(w, s.expiredSessionCookie())

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: msgLogoutSuccessful})
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {

	accountID := accountIDFromContext(r.Context())

	account, err := s.accounts.GetAccount(r.Context(), accountID)
	if err != nil {
		// A valid token for a vanished account maps to 401, not 404, so the
		// endpoint cannot be used to probe account existence.
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "Error in me handler", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeUser(w, http.StatusOK, account)
}
