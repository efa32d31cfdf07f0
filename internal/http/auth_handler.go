package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler issues and clears the token cookie. Token verification for
// protected routes lives in AuthMiddleware.
type AuthHandler struct {
	secret     []byte
	production bool
}

func NewAuthHandler(secret []byte, production bool) *AuthHandler {
	return &AuthHandler{secret: secret, production: production}
}

type issueTokenRequestDTO struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// POST /jwt
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email is required")
		return
	}

	claims := tokenClaims{
		Email: req.Email,
		Role:  req.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(365 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to sign token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.production,
		SameSite: h.sameSite(),
	})
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: h.sameSite(),
	})
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) sameSite() http.SameSite {
	if h.production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
