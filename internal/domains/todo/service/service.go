package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"taskboard/config"
	"taskboard/infras/otel"
	"taskboard/internal/domains/todo/model/dto"
	"taskboard/internal/domains/todo/repository"
	"taskboard/shared"
	"taskboard/shared/cache"
	"taskboard/shared/constant"
	gDto "taskboard/shared/dto"
	"taskboard/shared/failure"
	"taskboard/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix = "todo"
)

type Todo interface {
	Create(ctx context.Context, req dto.TodoItemRequest) (dto.TodoItemResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.PagedTodosResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoItemResponse, error)
	Update(ctx context.Context, id int64, req dto.TodoItemRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TodoItemRequest) (res dto.TodoItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel()

	id, err := s.repo.Insert(ctx, mod)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	mod.ID = id
	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.PagedTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models, total, params.Page, params.PageSize)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, strconv.FormatInt(id, 10))

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("failed to cache todo")
	}

	return res, nil
}

// Update replaces every mutable field of the addressed row. Mismatched ids
// are rejected before the payload is even validated; a row that vanished
// between the read and the write surfaces as not-found.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TodoItemRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req.ID != id {
		return failure.BadRequestFromString("URL id and payload id must match") // nolint:wrapcheck
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return err // nolint:wrapcheck
	}

	mod := req.ToModel()
	mod.ID = id

	outcome, err := s.repo.Replace(ctx, mod)
	if err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	switch outcome {
	case repository.UpdateApplied:
	case repository.UpdateMissing:
		log.Error().Int64("id", id).Msg("todo not found")

		return failure.NotFound("todo not found") // nolint:wrapcheck
	case repository.UpdateConflicted:
		log.Error().Int64("id", id).Msg("todo update conflicted")

		return fmt.Errorf("todo update conflicted for id %d", id)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg("todo not found")

		return failure.NotFound("todo not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, strconv.FormatInt(id, 10))

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("failed to invalidate todo cache")
	}
}
