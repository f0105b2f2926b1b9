package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/tylacb11-spec/lienquan-sub000/models"
	"github.com/tylacb11-spec/lienquan-sub000/services"
)

type AuthHandler struct {
	auth      services.AuthService
	jwtSecret string
}

func NewAuthHandler(auth services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	user, err := h.auth.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	token, err := h.issueToken(user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	user, err := h.auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	token, err := h.issueToken(user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
