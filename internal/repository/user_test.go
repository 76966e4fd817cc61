package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-api/internal/model"
)

func TestUserRepository_SingleAdmin(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := &model.User{Email: "admin@shop.com", Name: "Admin", Role: model.RoleAdmin}
	require.NoError(t, repo.CreateAdmin(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &model.User{Email: "other@shop.com", Name: "Other", Role: model.RoleAdmin}
	assert.ErrorIs(t, repo.CreateAdmin(ctx, second), ErrAdminExists)

	admin, err := repo.Admin(ctx)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, first.ID, admin.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateCustomer(ctx, &model.User{Email: "a@x.com", Role: model.RoleCustomer}))
	err := repo.CreateCustomer(ctx, &model.User{Email: "a@x.com", Role: model.RoleCustomer})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Email match is case-sensitive: a different casing registers fine.
	assert.NoError(t, repo.CreateCustomer(ctx, &model.User{Email: "A@x.com", Role: model.RoleCustomer}))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &model.User{Email: "ann@x.com", Name: "Ann", Role: model.RoleCustomer}
	require.NoError(t, repo.CreateCustomer(ctx, user))

	found, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Ann", found.Name)

	missing, err := repo.GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_NoAdmin(t *testing.T) {
	repo := NewUserRepository()

	admin, err := repo.Admin(context.Background())
	require.NoError(t, err)
	assert.Nil(t, admin)
}
