package repository

import (
	"context"
	"testing"

	"github.com/dmontes/ipogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCatalogRepo_List(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 6)

	// Seed order follows the fee schedule positions.
	assert.Equal(t, "110", tasks[0].Code)
	assert.Equal(t, "210", tasks[5].Code)

	for _, task := range tasks {
		assert.NotEmpty(t, task.Name, "task %s should have a name", task.Code)
		assert.NotEmpty(t, task.Paragraphs, "task %s should have scope text", task.Code)
		assert.GreaterOrEqual(t, task.DefaultFeeCents, int64(0))
	}
}

func TestSQLiteCatalogRepo_GetByCode(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task, err := repo.GetByCode(ctx, "140")
	require.NoError(t, err)
	assert.Equal(t, "Civil Construction Documents", task.Name)
	assert.Equal(t, int64(5000000), task.DefaultFeeCents)
	assert.Contains(t, task.Paragraphs, "Cover Sheet")
}

func TestSQLiteCatalogRepo_GetByCode_NotFound(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))

	_, err := repo.GetByCode(context.Background(), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
