package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/client/state"
	"taskboard/internal/domains/todo/model/dto"
)

// stubAPI records calls and serves canned responses.
type stubAPI struct {
	page    dto.PagedTodosResponse
	item    dto.TodoItemResponse
	listErr error
	getErr  error
	mutErr  error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastUpdateID int64
	lastRequest  dto.TodoItemRequest
}

func (s *stubAPI) ListTodos(_ context.Context, page, pageSize int) (dto.PagedTodosResponse, error) {
	s.listCalls++

	if s.listErr != nil {
		return dto.PagedTodosResponse{}, s.listErr
	}

	res := s.page
	res.CurrentPage = page
	res.PageSize = pageSize

	return res, nil
}

func (s *stubAPI) GetTodo(_ context.Context, _ int64) (dto.TodoItemResponse, error) {
	return s.item, s.getErr
}

func (s *stubAPI) CreateTodo(_ context.Context, req dto.TodoItemRequest) (dto.TodoItemResponse, error) {
	s.createCalls++
	s.lastRequest = req

	return dto.TodoItemResponse{ID: 7, Title: req.Title, Description: req.Description}, s.mutErr
}

func (s *stubAPI) UpdateTodo(_ context.Context, id int64, req dto.TodoItemRequest) error {
	s.updateCalls++
	s.lastUpdateID = id
	s.lastRequest = req

	return s.mutErr
}

func (s *stubAPI) DeleteTodo(_ context.Context, _ int64) error {
	s.deleteCalls++

	return s.mutErr
}

func TestState_StartEditLoadsFreshItem(t *testing.T) {
	api := &stubAPI{
		item: dto.TodoItemResponse{ID: 42, Title: "Buy milk", Description: "Two liters", IsCompleted: true},
	}

	s := state.New(api)
	s.StartEdit(context.Background(), 42)

	assert.Equal(t, state.ModeEditing, s.Mode)
	assert.Equal(t, int64(42), s.EditID)
	assert.Equal(t, "Buy milk", s.Form.Title)
	assert.True(t, s.Form.IsCompleted)
}

func TestState_StartEditFetchFailureStaysBrowsing(t *testing.T) {
	api := &stubAPI{getErr: errors.New("service down")}

	s := state.New(api)
	s.StartEdit(context.Background(), 42)

	assert.Equal(t, state.ModeBrowsing, s.Mode)
	assert.Zero(t, s.EditID)
	assert.Empty(t, s.Alert)
}

func TestState_SubmitCreatesWhenBrowsing(t *testing.T) {
	api := &stubAPI{page: dto.PagedTodosResponse{TotalCount: 1, TotalPages: 1}}

	s := state.New(api)
	s.Form.Title = "Buy milk"
	s.Form.Description = "Two liters"

	s.Submit(context.Background())

	assert.Equal(t, 1, api.createCalls)
	assert.Zero(t, api.updateCalls)
	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, state.ModeBrowsing, s.Mode)
	assert.Empty(t, s.Form.Title)
}

func TestState_SubmitUpdatesWhenEditing(t *testing.T) {
	api := &stubAPI{
		item: dto.TodoItemResponse{ID: 42, Title: "Buy milk", Description: "Two liters"},
	}

	s := state.New(api)
	s.StartEdit(context.Background(), 42)
	s.Form.Description = "Three liters"

	s.Submit(context.Background())

	assert.Equal(t, 1, api.updateCalls)
	assert.Zero(t, api.createCalls)
	assert.Equal(t, int64(42), api.lastUpdateID)
	assert.Equal(t, int64(42), api.lastRequest.ID)
	assert.Equal(t, "Three liters", api.lastRequest.Description)
	assert.Equal(t, state.ModeBrowsing, s.Mode)
	assert.Zero(t, s.EditID)
}

func TestState_SubmitBlankFieldsNeverCallsNetwork(t *testing.T) {
	api := &stubAPI{}

	s := state.New(api)
	s.Form.Title = "   "
	s.Form.Description = ""

	s.Submit(context.Background())

	assert.Zero(t, api.createCalls)
	assert.Zero(t, api.updateCalls)
	assert.Zero(t, api.listCalls)
	assert.Contains(t, s.Alert, "title")
	assert.Contains(t, s.Alert, "description")
}

func TestState_SubmitMutationFailureAlerts(t *testing.T) {
	api := &stubAPI{mutErr: errors.New("todo not found")}

	s := state.New(api)
	s.Form.Title = "Buy milk"
	s.Form.Description = "Two liters"

	s.Submit(context.Background())

	assert.Equal(t, "todo not found", s.Alert)
	assert.Zero(t, api.listCalls)
}

func TestState_DeleteRefetchesAndKeepsEditTarget(t *testing.T) {
	api := &stubAPI{
		item: dto.TodoItemResponse{ID: 42, Title: "Buy milk", Description: "Two liters"},
	}

	s := state.New(api)
	s.StartEdit(context.Background(), 42)

	s.Delete(context.Background(), 42)

	assert.Equal(t, 1, api.deleteCalls)
	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, state.ModeEditing, s.Mode)
	assert.Equal(t, int64(42), s.EditID)
}

func TestState_PageNavigationRefetches(t *testing.T) {
	api := &stubAPI{page: dto.PagedTodosResponse{TotalCount: 12, TotalPages: 3}}

	s := state.New(api)
	s.Refresh(context.Background())

	s.NextPage(context.Background())
	assert.Equal(t, 2, s.Page.CurrentPage)

	s.PrevPage(context.Background())
	assert.Equal(t, 1, s.Page.CurrentPage)

	// Already at page one; no refetch happens.
	calls := api.listCalls
	s.PrevPage(context.Background())
	assert.Equal(t, calls, api.listCalls)
}

func TestState_RefreshFailureKeepsPreviousPage(t *testing.T) {
	api := &stubAPI{page: dto.PagedTodosResponse{
		Items:      []dto.TodoItemResponse{{ID: 1, Title: "Buy milk", Description: "Two liters"}},
		TotalCount: 1, TotalPages: 1,
	}}

	s := state.New(api)
	s.Refresh(context.Background())
	assert.Len(t, s.Page.Items, 1)

	api.listErr = errors.New("service down")
	s.Refresh(context.Background())

	assert.Len(t, s.Page.Items, 1)
	assert.Empty(t, s.Alert)
}
