package service

import (
	"context"
	"testing"

	"github.com/dmontes/ipogen/internal/repository"
	"github.com/dmontes/ipogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_TaskLines(t *testing.T) {
	svc := NewCatalogService(repository.NewSQLiteCatalogRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	lines, err := svc.TaskLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 6)

	assert.Equal(t, "110", lines[0].Code)
	assert.Equal(t, "Civil Engineering Design", lines[0].Description)
	assert.Equal(t, int64(4000000), lines[0].FeeCents)
	assert.NotEmpty(t, lines[0].Paragraphs)

	for _, line := range lines {
		assert.False(t, line.Selected, "catalog lines start unselected")
	}
}

func TestCatalogService_GetByCode(t *testing.T) {
	svc := NewCatalogService(repository.NewSQLiteCatalogRepo(testutil.NewTestDB(t)))

	task, err := svc.GetByCode(context.Background(), "210")
	require.NoError(t, err)
	assert.Equal(t, "Meetings and Coordination", task.Name)
}
