package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// TokenIssuer mirrors auth.TokenService.Issue.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type AuthHandler struct {
	tokens TokenIssuer
}

func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// --- POST /jwt ---

// IssueToken signs whatever JSON object the caller sends as the token payload.
// Clients are expected to include an email field; none of it is validated.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
