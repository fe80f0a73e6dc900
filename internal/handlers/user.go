package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"dailytask-backend/internal/mailer"
	"dailytask-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	ListAll(ctx context.Context) ([]bson.M, error)
	InsertIfAbsent(ctx context.Context, user bson.M) (*mongo.InsertOneResult, bool, error)
}

type UserHandler struct {
	users  UserStore
	mailer mailer.Mailer
}

func NewUserHandler(users UserStore, m mailer.Mailer) *UserHandler {
	return &UserHandler{users: users, mailer: m}
}

// --- GET /users ---

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if users == nil {
		users = []bson.M{}
	}

	writeJSON(w, http.StatusOK, users)
}

// --- POST /users ---

// Create registers a user unless the email is already taken. The welcome mail
// is fired in a background goroutine (non-blocking, best-effort).
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user bson.M
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	email, _ := user["email"].(string)
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	result, existed, err := h.users.InsertIfAbsent(r.Context(), user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if existed {
		writeJSON(w, http.StatusOK, models.DuplicateUserResult{
			Message:    "User already exists",
			InsertedID: nil,
		})
		return
	}

	go func() {
		if err := h.mailer.SendWelcome(context.Background(), email); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, models.InsertResult{
		Acknowledged: result.Acknowledged,
		InsertedID:   result.InsertedID,
	})
}
