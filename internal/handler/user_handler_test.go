package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "pushuplog/internal/errors"
	"pushuplog/internal/model"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) ListDetailed(ctx context.Context) ([]model.UserDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserDetail), args.Error(1)
}

func (m *MockUserService) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) Paginated(ctx context.Context, skip, limit int) (int64, []model.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Error(2)
	}
	return args.Get(0).(int64), args.Get(1).([]model.User), args.Error(2)
}

func (m *MockUserService) PaginatedDetailed(ctx context.Context, skip, limit int) (int64, []model.UserWithRecordIDs, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Error(2)
	}
	return args.Get(0).(int64), args.Get(1).([]model.UserWithRecordIDs), args.Error(2)
}

func (m *MockUserService) Search(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*model.UserWithRecordIDs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserWithRecordIDs), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, in model.UserCreate) (*model.UserWithRecordIDs, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserWithRecordIDs), args.Error(1)
}

func (m *MockUserService) BulkCreate(ctx context.Context, items []model.UserCreate) ([]uint, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockUserService) BulkDelete(ctx context.Context, ids []uint) (int, []uint, error) {
	args := m.Called(ctx, ids)
	if args.Get(1) == nil {
		return args.Int(0), nil, args.Error(2)
	}
	return args.Int(0), args.Get(1).([]uint), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, id uint, in model.UserCreate) (*model.UserWithRecordIDs, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserWithRecordIDs), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("returns the user with its record ids", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Get", mock.Anything, uint(1)).Return(&model.UserWithRecordIDs{
			User:         model.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
			HasRecordIDs: []uint{4, 7},
		}, nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodGet, "/user/1/", "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"user": {"id":1,"name":"Alice","email":"alice@example.com"},
			"hasRecords_ids": [4, 7]
		}`, rec.Body.String())
	})

	t.Run("passes the not-found error through", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Get", mock.Anything, uint(99)).Return(nil, apperrors.ErrUserNotFound)
		h := NewUserHandler(svc)

		c, _ := newTestContext(http.MethodGet, "/user/99/", "")
		c.SetParamNames("id")
		c.SetParamValues("99")

		assert.Equal(t, apperrors.ErrUserNotFound, h.Get(c))
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("passes hasRecords through to the service", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in model.UserCreate) bool {
			return in.HasRecords != nil && len(*in.HasRecords) == 2
		})).Return(&model.UserWithRecordIDs{
			User:         model.User{ID: 2, Name: "Bob", Email: "bob@example.com"},
			HasRecordIDs: []uint{4, 7},
		}, nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodPost, "/user/",
			`{"email":"bob@example.com","name":"Bob","hasRecords":[4,7]}`)

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("empty hasRecords list is preserved, not nulled", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in model.UserCreate) bool {
			return in.HasRecords != nil && len(*in.HasRecords) == 0
		})).Return(&model.UserWithRecordIDs{User: model.User{ID: 2}}, nil)
		h := NewUserHandler(svc)

		c, _ := newTestContext(http.MethodPost, "/user/",
			`{"email":"bob@example.com","name":"Bob","hasRecords":[]}`)

		assert.NoError(t, h.Create(c))
		svc.AssertExpectations(t)
	})

	t.Run("missing name is rejected before the service runs", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		c, _ := newTestContext(http.MethodPost, "/user/", `{"email":"bob@example.com"}`)

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, h.Create(c), &validationErr)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_Paginated(t *testing.T) {
	t.Run("flat page", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Paginated", mock.Anything, 0, 100).Return(int64(1), []model.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
		}, nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodGet, "/user/paginated/", "")

		assert.NoError(t, h.Paginated(c))
		assert.JSONEq(t, `{
			"total": 1, "skip": 0, "limit": 100,
			"data": [{"id":1,"name":"Alice","email":"alice@example.com"}]
		}`, rec.Body.String())
		svc.AssertNotCalled(t, "PaginatedDetailed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("detailed page inlines record ids only", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("PaginatedDetailed", mock.Anything, 0, 100).Return(int64(1), []model.UserWithRecordIDs{
			{User: model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, HasRecordIDs: []uint{4}},
		}, nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodGet, "/user/paginated/?detailed=true", "")

		assert.NoError(t, h.Paginated(c))
		assert.JSONEq(t, `{
			"total": 1, "skip": 0, "limit": 100,
			"data": [{"user":{"id":1,"name":"Alice","email":"alice@example.com"},"hasRecords_ids":[4]}]
		}`, rec.Body.String())
		svc.AssertNotCalled(t, "Paginated", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_BulkCreate(t *testing.T) {
	svc := new(MockUserService)
	svc.On("BulkCreate", mock.Anything, mock.AnythingOfType("[]model.UserCreate")).Return([]uint{1, 2}, nil)
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/user/bulk/",
		`[{"email":"a@example.com","name":"Alice"},{"email":"b@example.com","name":"Bob"}]`)

	assert.NoError(t, h.BulkCreate(c))
	assert.JSONEq(t, `{
		"created_count": 2,
		"created_ids": [1, 2],
		"message": "Successfully created 2 User entities"
	}`, rec.Body.String())
}

func TestUserHandler_BulkDelete(t *testing.T) {
	svc := new(MockUserService)
	svc.On("BulkDelete", mock.Anything, []uint{5, 6}).Return(1, []uint{6}, nil)
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/user/bulk/", `[5,6]`)

	assert.NoError(t, h.BulkDelete(c))
	assert.JSONEq(t, `{
		"deleted_count": 1,
		"not_found": [6],
		"message": "Successfully deleted 1 User entities"
	}`, rec.Body.String())
}

func TestUserHandler_Delete(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Delete", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/user/1/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Alice","email":"alice@example.com"}`, rec.Body.String())
}

func TestUserHandler_List(t *testing.T) {
	t.Run("detailed inlines full records", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("ListDetailed", mock.Anything).Return([]model.UserDetail{
			{User: model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, HasRecords: []model.Record{}},
		}, nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodGet, "/user/?detailed=true", "")

		assert.NoError(t, h.List(c))
		assert.JSONEq(t, `[{"id":1,"name":"Alice","email":"alice@example.com","hasRecords":[]}]`, rec.Body.String())
	})
}
