package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "bistro/internal/errors"
	"bistro/internal/model"
)

func TestEnsureUser_CreatesOnFirstSignIn(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.EnsureUser(context.Background(), &model.User{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleNone, user.Role)
	repo.AssertExpectations(t)
}

func TestEnsureUser_SecondCreateIsNoOp(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	existing := &model.User{ID: 7, Email: "alice@example.com", Role: model.RoleNone}
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	user, err := svc.EnsureUser(context.Background(), &model.User{Email: "alice@example.com"})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, existing, user)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(m *MockUserRepository)
		admin     bool
	}{
		{
			name:  "admin role",
			email: "boss@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "boss@example.com").
					Return(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}, nil)
			},
			admin: true,
		},
		{
			name:  "plain user",
			email: "alice@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").
					Return(&model.User{Email: "alice@example.com", Role: model.RoleNone}, nil)
			},
			admin: false,
		},
		{
			name:  "unknown email is not an error",
			email: "ghost@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			admin: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo)

			admin, err := svc.IsAdmin(context.Background(), tt.email)

			assert.NoError(t, err)
			assert.Equal(t, tt.admin, admin)
			repo.AssertExpectations(t)
		})
	}
}

func TestPromoteToAdmin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("UpdateRole", mock.Anything, uint(99), model.RoleAdmin).Return(gorm.ErrRecordNotFound)

	err := svc.PromoteToAdmin(context.Background(), 99)

	assert.ErrorIs(t, err, errs.ErrNotFound)
}
