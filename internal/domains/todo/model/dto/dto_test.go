package dto_test

import (
	"testing"

	"taskboard/internal/domains/todo/model"
	"taskboard/internal/domains/todo/model/dto"
	gModel "taskboard/shared/model"
	"taskboard/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTodoItemRequest_ToModel(t *testing.T) {
	req := dto.TodoItemRequest{
		ID:          99,
		Title:       "Buy milk",
		Description: "2%",
	}

	mod := req.ToModel()

	assert.Zero(t, mod.ID, "expected the store to own id assignment")
	assert.Equal(t, req.Title, mod.Title)
	assert.Equal(t, req.Description, mod.Description)
	assert.False(t, mod.Completed)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, mod.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestTodoItemResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	todoModel := model.Todo{
		ID:          7,
		Title:       "Buy milk",
		Description: "2%",
		Completed:   true,
		Timestamps: gModel.Timestamps{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	var response dto.TodoItemResponse
	response.FromModel(todoModel)

	assert.Equal(t, todoModel.ID, response.ID)
	assert.Equal(t, todoModel.Title, response.Title)
	assert.Equal(t, todoModel.Description, response.Description)
	assert.Equal(t, todoModel.Completed, response.IsCompleted)
}

func TestPagedTodosResponse_FromModels(t *testing.T) {
	todos := []model.Todo{
		{ID: 6, Title: "Todo 6", Description: "Description 6"},
		{ID: 7, Title: "Todo 7", Description: "Description 7", Completed: true},
	}

	var response dto.PagedTodosResponse
	response.FromModels(todos, 12, 2, 5)

	assert.Equal(t, 12, response.TotalCount)
	assert.Equal(t, 3, response.TotalPages) // 12 rows with pageSize 5
	assert.Equal(t, 2, response.CurrentPage)
	assert.Equal(t, 5, response.PageSize)
	assert.Len(t, response.Items, len(todos))

	for i, todo := range response.Items {
		assert.Equal(t, todos[i].ID, todo.ID)
		assert.Equal(t, todos[i].Title, todo.Title)
	}
}

func TestPagedTodosResponse_FromModels_EmptyStore(t *testing.T) {
	var todos []model.Todo

	var response dto.PagedTodosResponse
	response.FromModels(todos, 0, 1, 5)

	assert.Equal(t, 0, response.TotalCount)
	assert.Equal(t, 0, response.TotalPages)
	assert.Equal(t, 1, response.CurrentPage)
	assert.Equal(t, 5, response.PageSize)
	assert.NotNil(t, response.Items, "items must encode as [] not null")
	assert.Len(t, response.Items, 0)
}
