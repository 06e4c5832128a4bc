package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mworx/stockroom/internal/auth"
	"github.com/mworx/stockroom/internal/inventory"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate a demo user and return JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(credentials.Email)
	if err != nil || !user.IsActive {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := auth.IssueRefreshToken(user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue refresh token")
	}

	user.LastLogin = time.Now()
	if err := userRepo.TouchLastLogin(user.ID, user.LastLogin); err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("failed to record last login")
	}

	svc.RecordLogin(inventory.Actor{ID: user.ID, Name: user.Name, Email: user.Email})

	writeJSON(w, http.StatusOK, LoginResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "refresh token"
// @Success 200 {object} RefreshResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unknown refresh token"
// @Router /refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	email, err := auth.ResolveRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			http.Error(w, "unknown refresh token", http.StatusUnauthorized)
			return
		}
		http.Error(w, "could not resolve refresh token", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.GetByEmail(email)
	if err != nil || !user.IsActive {
		http.Error(w, "unknown refresh token", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResult{Token: token})
}

// LogoutHandler godoc
// @Summary Log out, revoking the refresh token
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param refresh body RefreshRequest false "refresh token to revoke"
// @Success 204 "Logged out"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.RefreshToken != "" {
		if err := auth.RevokeRefreshToken(req.RefreshToken); err != nil {
			log.Error().Err(err).Msg("failed to revoke refresh token")
		}
	}

	svc.RecordLogout(actor)
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {string} string "Unauthorized"
// @Router /me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByEmail(actor.Email)
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
