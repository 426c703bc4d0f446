package employee

import (
	"context"
	"testing"

	"directory-backend/internal/docstore"
	"directory-backend/internal/validation"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewService(docstore.NewRedisStore(client))
}

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, svc *Service, name, department string, branchID int) string {
	t.Helper()
	e, err := svc.Create(context.Background(), CreateInput{
		Name:       name,
		Position:   "Clerk",
		Department: department,
		Email:      name + "@example.com",
		Phone:      "204-555-0000",
		BranchID:   validation.Int(branchID),
	})
	require.NoError(t, err)
	return e.ID
}

func TestCreateReturnsRecordWithID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateInput{
		Name:       "Alice",
		Position:   "Manager",
		Department: "IT",
		Email:      "alice@example.com",
		Phone:      "204-555-1111",
		BranchID:   3,
	})
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 3, e.BranchID)

	stored, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, e, stored)
}

func TestGetByBranch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedEmployee(t, svc, "alice", "IT", 1)
	seedEmployee(t, svc, "bob", "HR", 1)
	seedEmployee(t, svc, "carol", "IT", 2)

	employees, err := svc.GetByBranch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, employees, 2)

	employees, err = svc.GetByBranch(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestGetByDepartment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedEmployee(t, svc, "alice", "IT", 1)
	seedEmployee(t, svc, "bob", "HR", 1)

	employees, err := svc.GetByDepartment(ctx, "IT")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "alice", employees[0].Name)

	employees, err = svc.GetByDepartment(ctx, "Sales")
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestUpdatePreservesUntouchedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := seedEmployee(t, svc, "alice", "IT", 4)

	updated, err := svc.Update(ctx, id, UpdateInput{Position: strPtr("Senior Clerk")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Senior Clerk", updated.Position)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "IT", updated.Department)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "204-555-0000", updated.Phone)
	assert.Equal(t, 4, updated.BranchID)
}

func TestUpdateBranchID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := seedEmployee(t, svc, "alice", "IT", 1)

	branchID := validation.Int(9)
	updated, err := svc.Update(ctx, id, UpdateInput{BranchID: &branchID})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 9, updated.BranchID)

	// The filtered listing follows the new reference.
	employees, err := svc.GetByBranch(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestUpdateAbsent(t *testing.T) {
	svc := newTestService(t)

	e, err := svc.Update(context.Background(), "no-such-id", UpdateInput{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := seedEmployee(t, svc, "alice", "IT", 1)

	deleted, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
