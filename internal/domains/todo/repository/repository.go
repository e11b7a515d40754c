package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"taskboard/infras/otel"
	"taskboard/infras/postgres"
	"taskboard/internal/domains/todo/model"
	"taskboard/shared"
	"taskboard/shared/constant"
	gDto "taskboard/shared/dto"
	gRepo "taskboard/shared/repository"
	"taskboard/shared/timezone"
)

// UpdateOutcome is the explicit result of a full-row replacement. A write is
// either applied, lost to a row that no longer exists, or lost to something
// the store cannot explain.
type UpdateOutcome int

const (
	UpdateApplied UpdateOutcome = iota + 1
	UpdateMissing
	UpdateConflicted
)

type Todo interface {
	Insert(ctx context.Context, model model.Todo) (int64, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Todo, error)
	Count(ctx context.Context) (int, error)
	Exist(ctx context.Context, id int64) (bool, error)
	Replace(ctx context.Context, mod model.Todo) (UpdateOutcome, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Todo, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// GetAll returns one page of rows. Ordering is always ascending id; pages
// are only stable under that ordering.
func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Todo, error) {
	params.SortBy = model.FieldID
	params.SortDir = gDto.SortDirAsc

	return repo.Repository.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int64) (bool, error) {
	return repo.Repository.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return repo.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// Replace overwrites every mutable column of the row addressed by mod.ID.
// When the write lands on zero rows the row either vanished concurrently
// (UpdateMissing) or the store is in a state this code does not understand
// (UpdateConflicted); the existence re-check tells the two apart.
func (repo *repositoryImpl) Replace(ctx context.Context, mod model.Todo) (UpdateOutcome, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Replace")
	defer scope.End()

	fields := map[string]any{
		model.FieldTitle:         mod.Title,
		model.FieldDescription:   mod.Description,
		model.FieldCompleted:     mod.Completed,
		constant.FieldModifiedAt: timezone.Now(),
	}

	affected, err := repo.Repository.Update(ctx, fields, shared.FilterByID(mod.ID, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to replace data (%s): %w", model.EntityName, err)
	}

	if affected > 0 {
		return UpdateApplied, nil
	}

	exist, err := repo.Exist(ctx, mod.ID)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to re-check existence (%s): %w", model.EntityName, err)
	}

	if !exist {
		return UpdateMissing, nil
	}

	return UpdateConflicted, nil
}
