package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/client/api"
	"taskboard/internal/domains/todo/model/dto"
)

func TestClient_ListTodos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/todos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		_ = json.NewEncoder(w).Encode(dto.PagedTodosResponse{
			Items:       []dto.TodoItemResponse{{ID: 6, Title: "Buy milk", Description: "Two liters"}},
			CurrentPage: 2,
			PageSize:    5,
			TotalCount:  12,
			TotalPages:  3,
		})
	}))
	defer server.Close()

	client := api.New(server.URL)

	res, err := client.ListTodos(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 3, res.TotalPages)
}

func TestClient_GetTodo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/todos/42", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dto.TodoItemResponse{ID: 42, Title: "Buy milk", Description: "Two liters"})
	}))
	defer server.Close()

	client := api.New(server.URL)

	res, err := client.GetTodo(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
}

func TestClient_CreateTodo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req dto.TodoItemRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Buy milk", req.Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.TodoItemResponse{ID: 7, Title: req.Title, Description: req.Description})
	}))
	defer server.Close()

	client := api.New(server.URL)

	res, err := client.CreateTodo(context.Background(), dto.TodoItemRequest{Title: "Buy milk", Description: "Two liters"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
}

func TestClient_UpdateTodo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/todos/42", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := api.New(server.URL)

	err := client.UpdateTodo(context.Background(), 42, dto.TodoItemRequest{ID: 42, Title: "Buy milk", Description: "Three liters"})

	assert.NoError(t, err)
}

func TestClient_DeleteTodo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"todo not found"}`))
	}))
	defer server.Close()

	client := api.New(server.URL)

	err := client.DeleteTodo(context.Background(), 999)

	assert.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Contains(t, err.Error(), "todo not found")
}
