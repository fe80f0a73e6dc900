package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailytask-backend/internal/auth"
	"dailytask-backend/internal/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	h := handlers.NewAuthHandler(tokens)

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"a@x.com","name":"Ada"}`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// the issued token round-trips through the same secret
	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "Ada", claims["name"])
}

func TestIssueTokenInvalidBody(t *testing.T) {
	h := handlers.NewAuthHandler(auth.NewTokenService("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
