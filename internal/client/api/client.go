// Package api is a thin SDK over the todo service's REST contract, shared by
// the terminal client and anything else that wants to call the service from Go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domains/todo/model/dto"
	"taskboard/shared/constant"
)

// Error is a non-success response decoded from the service's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)

	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) ListTodos(ctx context.Context, page, pageSize int) (dto.PagedTodosResponse, error) {
	var res dto.PagedTodosResponse

	url := fmt.Sprintf("%s/api/todos?page=%d&pageSize=%d", c.baseURL, page, pageSize)

	err := c.do(ctx, http.MethodGet, url, nil, &res)

	return res, err
}

func (c *Client) GetTodo(ctx context.Context, id int64) (dto.TodoItemResponse, error) {
	var res dto.TodoItemResponse

	err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &res)

	return res, err
}

func (c *Client) CreateTodo(ctx context.Context, req dto.TodoItemRequest) (dto.TodoItemResponse, error) {
	var res dto.TodoItemResponse

	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/todos", &req, &res)

	return res, err
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, req dto.TodoItemRequest) error {
	return c.do(ctx, http.MethodPut, c.itemURL(id), &req, nil)
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/api/todos/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reqBody io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call service: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var envelope struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Message = envelope.Error
	}

	return apiErr
}
