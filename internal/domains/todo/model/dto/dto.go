package dto

import (
	"taskboard/internal/domains/todo/model"
	"taskboard/shared"
	gModel "taskboard/shared/model"
	"taskboard/shared/timezone"
)

// TodoItemRequest is the payload for both create and update. On create the
// id field is ignored; on update it must match the path id.
type TodoItemRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank,max=255"`
	IsCompleted bool   `json:"isCompleted"`
}

func (c *TodoItemRequest) ToModel() model.Todo {
	return model.Todo{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.IsCompleted,
		Timestamps: gModel.Timestamps{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type TodoItemResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

func (r *TodoItemResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.IsCompleted = model.Completed
}

// PagedTodosResponse is the list envelope: one page of items plus the
// pagination arithmetic derived from the total row count.
type PagedTodosResponse struct {
	Items       []TodoItemResponse `json:"items"`
	CurrentPage int                `json:"currentPage"`
	PageSize    int                `json:"pageSize"`
	TotalCount  int                `json:"totalCount"`
	TotalPages  int                `json:"totalPages"`
}

func (r *PagedTodosResponse) FromModels(models []model.Todo, totalCount, page, pageSize int) {
	r.CurrentPage = page
	r.PageSize = pageSize
	r.TotalCount = totalCount
	r.TotalPages = shared.CalculateTotalPages(totalCount, pageSize)

	r.Items = make([]TodoItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
