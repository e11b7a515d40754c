package todo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"taskboard/infras/otel"
	"taskboard/internal/domains/todo/model/dto"
	"taskboard/internal/domains/todo/service"
	"taskboard/shared"
	"taskboard/shared/constant"
	gDto "taskboard/shared/dto"
	"taskboard/shared/failure"
	"taskboard/shared/validator"
	"taskboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a new todo item with the provided details.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoItemRequest true "Create Todo Request"
// @Success 201 {object} dto.TodoItemResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.TodoItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	writer.Header().Set(constant.RequestHeaderLocation, fmt.Sprintf("%s/%d", strings.TrimSuffix(request.URL.Path, "/"), res.ID))
	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTodos retrieves one page of todo items.
// @Summary Get todo items
// @Description Retrieve todo items with offset pagination.
// @Tags Todo
// @Accept json
// @Produce json
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} dto.PagedTodosResponse "One page of todo items"
// @Failure 500 {object} response.Error
// @Router /api/todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	todos, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves a todo item by its ID.
// @Summary Get a todo item by ID
// @Description Retrieve a todo item by its unique identifier.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} dto.TodoItemResponse "Todo item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo replaces an existing todo item by its ID.
// @Summary Replace a todo item by ID
// @Description Replace every mutable field of an existing todo item.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.TodoItemRequest true "Update Todo Request"
// @Success 204 "Todo updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	// The payload is decoded without validation here. Field validation
	// happens in the service, after the id match check.
	req := dto.TodoItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithNoContent(w)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo item by ID
// @Description Delete a todo item using its unique identifier.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Success 204 "Todo deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithNoContent(w)
}
