package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := setupTestRepo(t)
	r := gin.New()
	RegisterRoutes(r.Group("/"), NewHandler(repo))
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsMissingUser(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/notifications", gin.H{"message": "hello"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateRejectsBlankMessage(t *testing.T) {
	r, repo := setupTestRouter(t)

	// Markup-only content sanitizes to blank and must not be written.
	w := doJSON(t, r, http.MethodPost, "/notifications", gin.H{"userId": 1, "message": "<b></b>  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	count, err := repo.CountUnread(context.Background(), 1)
	if err != nil {
		t.Fatalf("CountUnread returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no writes after rejected create, got %d", count)
	}
}

func TestCreateSanitizesAndForcesUnread(t *testing.T) {
	r, repo := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/notifications", gin.H{
		"userId":  4,
		"message": " <b>New   task</b> added ",
		"read":    true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list, err := repo.ListByUser(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one record, got %d", len(list))
	}
	if list[0].Message != "New task added" {
		t.Fatalf("expected sanitized message, got %q", list[0].Message)
	}
	if list[0].IsRead {
		t.Fatalf("read flag must be false at creation")
	}
}

func TestListEndpointsReturnEmptyCollections(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, path := range []string{"/notifications/99", "/notifications/99/unread"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
		var resp struct {
			Success bool           `json:"success"`
			Data    []Notification `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("GET %s: failed to decode: %v", path, err)
		}
		if !resp.Success || len(resp.Data) != 0 {
			t.Fatalf("GET %s: expected empty success response, got %s", path, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/notifications/99/count", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var countResp struct {
		Data UnreadCountResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &countResp); err != nil {
		t.Fatalf("failed to decode count: %v", err)
	}
	if countResp.Data.UnreadCount != 0 {
		t.Fatalf("expected zero unread, got %d", countResp.Data.UnreadCount)
	}
}

func TestMarkReadEndpointIdempotent(t *testing.T) {
	r, repo := setupTestRouter(t)

	n := &Notification{UserID: 6, Message: "hello"}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	path := fmt.Sprintf("/notifications/%d/read", n.ID)
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPut, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPut, "/notifications/424242/read", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestMarkAllReadEndpointReportsCount(t *testing.T) {
	r, repo := setupTestRouter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Create(ctx, &Notification{UserID: 8, Message: fmt.Sprintf("m%d", i)}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodPut, "/notifications/8/read-all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data MarkAllReadResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Data.MarkedAsRead != 2 {
		t.Fatalf("expected 2 marked, got %d", resp.Data.MarkedAsRead)
	}

	// Empty unread set: still a success, count zero.
	w = doJSON(t, r, http.MethodPut, "/notifications/8/read-all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on empty read-all, got %d", w.Code)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	r, repo := setupTestRouter(t)

	n := &Notification{UserID: 2, Message: "bye"}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/notifications/%d", n.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/notifications/%d", n.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
