// Package state holds the client's browsing/editing state machine. The TUI
// renders from this state and feeds user actions into it; it never talks to
// the service directly.
package state

import (
	"context"

	"github.com/rs/zerolog/log"

	"taskboard/internal/domains/todo/model/dto"
	"taskboard/shared/validator"
)

const (
	// The client always browses in fixed pages of five items.
	PageSize = 5
)

type Mode int

const (
	ModeBrowsing Mode = iota + 1
	ModeEditing
)

// API is the slice of the service contract the client needs.
type API interface {
	ListTodos(ctx context.Context, page, pageSize int) (dto.PagedTodosResponse, error)
	GetTodo(ctx context.Context, id int64) (dto.TodoItemResponse, error)
	CreateTodo(ctx context.Context, req dto.TodoItemRequest) (dto.TodoItemResponse, error)
	UpdateTodo(ctx context.Context, id int64, req dto.TodoItemRequest) error
	DeleteTodo(ctx context.Context, id int64) error
}

// Form carries the create/edit input fields.
type Form struct {
	Title       string
	Description string
	IsCompleted bool
}

type State struct {
	api API

	Mode Mode
	Page dto.PagedTodosResponse

	// EditID is the id of the item loaded into the form, nonzero only in
	// ModeEditing.
	EditID int64
	Form   Form

	// Alert is the last mutation failure, shown to the user until the next
	// action. Fetch failures are logged, not alerted.
	Alert string
}

func New(api API) *State {
	return &State{
		api:  api,
		Mode: ModeBrowsing,
		Page: dto.PagedTodosResponse{CurrentPage: 1, PageSize: PageSize},
	}
}

// Refresh refetches the current page. A failed fetch keeps the previous page
// contents on screen.
func (s *State) Refresh(ctx context.Context) {
	page := s.Page.CurrentPage
	if page < 1 {
		page = 1
	}

	res, err := s.api.ListTodos(ctx, page, PageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch todos")

		return
	}

	s.Page = res
}

// StartEdit fetches the item fresh and loads it into the form.
func (s *State) StartEdit(ctx context.Context, id int64) {
	res, err := s.api.GetTodo(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to load todo for editing")

		return
	}

	s.Mode = ModeEditing
	s.EditID = res.ID
	s.Form = Form{
		Title:       res.Title,
		Description: res.Description,
		IsCompleted: res.IsCompleted,
	}
}

// Submit validates the form and issues a create (browsing) or an update
// (editing). Validation failures never reach the network; they surface as the
// aggregated field messages. On success the form is cleared and the current
// page refetched.
func (s *State) Submit(ctx context.Context) {
	req := dto.TodoItemRequest{
		ID:          s.EditID,
		Title:       s.Form.Title,
		Description: s.Form.Description,
		IsCompleted: s.Form.IsCompleted,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		s.Alert = err.Error()

		return
	}

	var err error

	if s.Mode == ModeEditing {
		err = s.api.UpdateTodo(ctx, s.EditID, req)
	} else {
		_, err = s.api.CreateTodo(ctx, req)
	}

	if err != nil {
		s.Alert = err.Error()

		return
	}

	s.ClearForm()
	s.Refresh(ctx)
}

// Delete removes item id and refetches. The edit target is left alone even
// when the deleted item is the one being edited; the next submit will then
// surface the service's not-found.
func (s *State) Delete(ctx context.Context, id int64) {
	if err := s.api.DeleteTodo(ctx, id); err != nil {
		s.Alert = err.Error()

		return
	}

	s.Refresh(ctx)
}

// ClearForm drops the form contents and returns to browsing.
func (s *State) ClearForm() {
	s.Mode = ModeBrowsing
	s.EditID = 0
	s.Form = Form{}
	s.Alert = ""
}

// NextPage advances one page and refetches, stopping at the last known page.
func (s *State) NextPage(ctx context.Context) {
	if s.Page.CurrentPage >= s.Page.TotalPages {
		return
	}

	s.Page.CurrentPage++
	s.Refresh(ctx)
}

// PrevPage steps back one page and refetches, stopping at page one.
func (s *State) PrevPage(ctx context.Context) {
	if s.Page.CurrentPage <= 1 {
		return
	}

	s.Page.CurrentPage--
	s.Refresh(ctx)
}
