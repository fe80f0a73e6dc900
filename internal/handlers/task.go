package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"dailytask-backend/internal/middleware"
	"dailytask-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TaskStore is the slice of the task repository the handlers need.
type TaskStore interface {
	ListByOwner(ctx context.Context, email string) ([]bson.M, error)
	Insert(ctx context.Context, task bson.M) (*mongo.InsertOneResult, error)
	UpdatePartial(ctx context.Context, id bson.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error)
}

type TaskHandler struct {
	tasks TaskStore
}

func NewTaskHandler(tasks TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// --- GET /task ---

// List returns the tasks owned by the authenticated caller. Ownership comes
// from the token's email claim, never from the query.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmail(r.Context())
	if email == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	tasks, err := h.tasks.ListByOwner(r.Context(), email)
	if err != nil {
		log.Printf("Error listing tasks: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if tasks == nil {
		tasks = []bson.M{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

// --- POST /task ---

// Create stores the request body as-is. The document is opaque to the server;
// clients set userEmail themselves and it is trusted as given.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task bson.M
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.tasks.Insert(r.Context(), task)
	if err != nil {
		log.Printf("Error inserting task: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, models.InsertResult{
		Acknowledged: result.Acknowledged,
		InsertedID:   result.InsertedID,
	})
}

// --- PUT /task/{id} ---

// Update merge-patches the supplied fields onto the matched task. A missing id
// still reports success with matchedCount 0.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid task id"})
		return
	}

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.tasks.UpdatePartial(r.Context(), id, fields)
	if err != nil {
		log.Printf("Error updating task: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, models.UpdateResult{
		Acknowledged:  result.Acknowledged,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	})
}

// --- DELETE /task/{id} ---

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid task id"})
		return
	}

	deleted, err := h.tasks.DeleteByID(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting task: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.DeleteResult{
			Success: false,
			Message: "Server error",
		})
		return
	}

	if deleted != 1 {
		writeJSON(w, http.StatusNotFound, models.DeleteResult{
			Success: false,
			Message: "Task not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, models.DeleteResult{
		Success: true,
		Message: "Task deleted successfully",
	})
}
