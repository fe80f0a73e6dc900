package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailytask-backend/internal/handlers"
	"dailytask-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeTaskStore struct {
	tasks   []bson.M
	listErr error

	insertResult *mongo.InsertOneResult
	insertErr    error

	updateResult *mongo.UpdateResult
	updateErr    error

	deleteCount int64
	deleteErr   error

	listCalls   int
	listEmail   string
	insertedDoc bson.M
	updatedID   bson.ObjectID
	updatedDoc  bson.M
	deletedID   bson.ObjectID
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, email string) ([]bson.M, error) {
	f.listCalls++
	f.listEmail = email
	return f.tasks, f.listErr
}

func (f *fakeTaskStore) Insert(ctx context.Context, task bson.M) (*mongo.InsertOneResult, error) {
	f.insertedDoc = task
	return f.insertResult, f.insertErr
}

func (f *fakeTaskStore) UpdatePartial(ctx context.Context, id bson.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	f.updatedID = id
	f.updatedDoc = fields
	return f.updateResult, f.updateErr
}

func (f *fakeTaskStore) DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error) {
	f.deletedID = id
	return f.deleteCount, f.deleteErr
}

// taskRouter mounts the handler the same way the server does so {id} params
// resolve in tests.
func taskRouter(h *handlers.TaskHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/task", h.List)
	r.Post("/task", h.Create)
	r.Put("/task/{id}", h.Update)
	r.Delete("/task/{id}", h.Delete)
	return r
}

func TestTaskList(t *testing.T) {
	store := &fakeTaskStore{tasks: []bson.M{
		{"title": "write report", "userEmail": "a@x.com"},
		{"title": "buy milk", "userEmail": "a@x.com"},
	}}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	req = req.WithContext(middleware.WithEmail(req.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", store.listEmail)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "write report", body[0]["title"])
}

func TestTaskListWithoutIdentity(t *testing.T) {
	store := &fakeTaskStore{}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.listCalls, "store must not be queried")
}

func TestTaskListEmptyIsJSONArray(t *testing.T) {
	h := handlers.NewTaskHandler(&fakeTaskStore{})

	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	req = req.WithContext(middleware.WithEmail(req.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestTaskCreate(t *testing.T) {
	id := bson.NewObjectID()
	store := &fakeTaskStore{
		insertResult: &mongo.InsertOneResult{InsertedID: id, Acknowledged: true},
	}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/task",
		strings.NewReader(`{"title":"write report","userEmail":"a@x.com","priority":2}`))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Acknowledged)
	assert.Equal(t, id.Hex(), body.InsertedID)

	// document passes through untouched
	assert.Equal(t, "write report", store.insertedDoc["title"])
	assert.Equal(t, "a@x.com", store.insertedDoc["userEmail"])
}

func TestTaskCreateInvalidBody(t *testing.T) {
	h := handlers.NewTaskHandler(&fakeTaskStore{})

	req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskUpdate(t *testing.T) {
	id := bson.NewObjectID()
	store := &fakeTaskStore{
		updateResult: &mongo.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
	}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/task/"+id.Hex(), strings.NewReader(`{"title":"new"}`))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, store.updatedID)
	assert.Equal(t, bson.M{"title": "new"}, store.updatedDoc, "only supplied fields are patched")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["matchedCount"])
	assert.Equal(t, float64(1), body["modifiedCount"])
}

func TestTaskUpdateMissingDocumentIsNot404(t *testing.T) {
	store := &fakeTaskStore{
		updateResult: &mongo.UpdateResult{Acknowledged: true},
	}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/task/"+bson.NewObjectID().Hex(),
		strings.NewReader(`{"title":"new"}`))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["matchedCount"])
}

func TestTaskUpdateInvalidID(t *testing.T) {
	store := &fakeTaskStore{}
	h := handlers.NewTaskHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/task/not-an-id", strings.NewReader(`{"title":"new"}`))
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, store.updatedID.IsZero())
}

func TestTaskDelete(t *testing.T) {
	tests := []struct {
		name            string
		deleteCount     int64
		deleteErr       error
		expectedStatus  int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "deleted",
			deleteCount:     1,
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "Task deleted successfully",
		},
		{
			name:            "not found",
			deleteCount:     0,
			expectedStatus:  http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Task not found",
		},
		{
			name:            "store failure",
			deleteErr:       assert.AnError,
			expectedStatus:  http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "Server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeTaskStore{deleteCount: tc.deleteCount, deleteErr: tc.deleteErr}
			h := handlers.NewTaskHandler(store)

			req := httptest.NewRequest(http.MethodDelete, "/task/"+bson.NewObjectID().Hex(), nil)
			rec := httptest.NewRecorder()

			taskRouter(h).ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedSuccess, body.Success)
			assert.Equal(t, tc.expectedMessage, body.Message)
		})
	}
}

func TestTaskDeleteInvalidID(t *testing.T) {
	h := handlers.NewTaskHandler(&fakeTaskStore{})

	req := httptest.NewRequest(http.MethodDelete, "/task/zzz", nil)
	rec := httptest.NewRecorder()

	taskRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
