package dto

import (
	"net/http"
	"strconv"
	"taskboard/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page     int    `json:"page"     validate:"omitempty"`
	PageSize int    `json:"pageSize" validate:"omitempty"`
	SortBy   string `json:"sort_by"  validate:"omitempty"`
	SortDir  string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates Page and PageSize from the HTTP request.
// Anything below 1 (including garbage input) is coerced to the defaults:
// page 1, pageSize 5. There is no upper bound on pageSize; a caller asking
// for a huge page gets the whole table.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.PageSize = constant.DefaultValuePageSize

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt >= 1 {
			q.Page = pageInt
		}
	}

	if size := queryParams.Get(constant.RequestParamPageSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil && sizeInt >= 1 {
			q.PageSize = sizeInt
		}
	}
}

// Offset converts the page number into the number of rows to skip.
func (q *QueryParams) Offset() int {
	return (q.Page - 1) * q.PageSize
}
