package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"taskboard/config"
	"taskboard/infras/otel/mocks"
	todoMocks "taskboard/internal/domains/todo/mocks"
	"taskboard/internal/domains/todo/model"
	"taskboard/internal/domains/todo/model/dto"
	"taskboard/internal/domains/todo/repository"
	"taskboard/internal/domains/todo/service"
	cacheMocks "taskboard/shared/cache/mocks"
	gDto "taskboard/shared/dto"
	"taskboard/shared/failure"
	gModel "taskboard/shared/model"
	"taskboard/shared/timezone"
)

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.TodoItemRequest
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "successful creation",
			req: dto.TodoItemRequest{
				Title:       "Test Todo",
				Description: "Test Description",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)
			},
			wantErr: false,
			wantID:  7,
		},
		{
			name: "repository error",
			req: dto.TodoItemRequest{
				Title:       "Test Todo",
				Description: "Test Description",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestTodoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult dto.PagedTodosResponse
	}{
		{
			name: "successful list",
			params: gDto.QueryParams{
				Page:     2,
				PageSize: 5,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any()).
					Return(12, nil)

				todos := []model.Todo{
					{
						ID:          6,
						Title:       "Test Todo",
						Description: "Test Description",
						Completed:   false,
						Timestamps: gModel.Timestamps{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantErr: false,
			wantResult: dto.PagedTodosResponse{
				CurrentPage: 2,
				PageSize:    5,
				TotalCount:  12,
				TotalPages:  3,
			},
		},
		{
			name: "empty table yields zero pages",
			params: gDto.QueryParams{
				Page:     1,
				PageSize: 5,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return([]model.Todo{}, nil)
			},
			wantErr: false,
			wantResult: dto.PagedTodosResponse{
				CurrentPage: 1,
				PageSize:    5,
				TotalCount:  0,
				TotalPages:  0,
			},
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Page:     1,
				PageSize: 5,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			params: gDto.QueryParams{
				Page:     1,
				PageSize: 5,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.List(ctx, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.CurrentPage, result.CurrentPage)
				assert.Equal(t, tt.wantResult.PageSize, result.PageSize)
				assert.Equal(t, tt.wantResult.TotalCount, result.TotalCount)
				assert.Equal(t, tt.wantResult.TotalPages, result.TotalPages)
			}
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	todo := model.Todo{
		ID:          42,
		Title:       "Test Todo",
		Description: "Test Description",
		Completed:   false,
		Timestamps: gModel.Timestamps{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "cache hit",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  0,
		},
		{
			name: "cache miss, successful get from db",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(todo, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  42,
		},
		{
			name: "todo not found",
			id:   999,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil) // Empty todo means not found
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name        string
		req         dto.TodoItemRequest
		id          int64
		setupMock   func()
		wantErr     bool
		wantErrCode int
	}{
		{
			name: "successful update",
			req: dto.TodoItemRequest{
				ID:          42,
				Title:       "Updated Title",
				Description: "Updated Description",
				IsCompleted: true,
			},
			id: 42,
			setupMock: func() {
				mockRepo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					Return(repository.UpdateApplied, nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "id mismatch rejected before validation",
			req: dto.TodoItemRequest{
				ID:          43,
				Title:       "",
				Description: "",
			},
			id: 42,
			setupMock: func() {
				// No mock expectations as the mismatch fails early
			},
			wantErr:     true,
			wantErrCode: 400,
		},
		{
			name: "blank fields rejected",
			req: dto.TodoItemRequest{
				ID:          42,
				Title:       "   ",
				Description: "\t",
			},
			id: 42,
			setupMock: func() {
				// No mock expectations as validation fails early
			},
			wantErr:     true,
			wantErrCode: 400,
		},
		{
			name: "todo not found",
			req: dto.TodoItemRequest{
				ID:          999,
				Title:       "Updated Title",
				Description: "Updated Description",
			},
			id: 999,
			setupMock: func() {
				mockRepo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					Return(repository.UpdateMissing, nil)
			},
			wantErr:     true,
			wantErrCode: 404,
		},
		{
			name: "update conflicted",
			req: dto.TodoItemRequest{
				ID:          42,
				Title:       "Updated Title",
				Description: "Updated Description",
			},
			id: 42,
			setupMock: func() {
				mockRepo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					Return(repository.UpdateConflicted, nil)
			},
			wantErr:     true,
			wantErrCode: 500,
		},
		{
			name: "replace error",
			req: dto.TodoItemRequest{
				ID:          42,
				Title:       "Updated Title",
				Description: "Updated Description",
			},
			id: 42,
			setupMock: func() {
				mockRepo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					Return(repository.UpdateOutcome(0), errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Update(ctx, tt.id, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrCode != 0 {
					assert.Equal(t, tt.wantErrCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "todo not found",
			id:   999,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "delete error",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
