package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_MigratesAndSeeds(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var tasks int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM catalog_tasks`).Scan(&tasks))
	assert.Equal(t, len(seedTasks), tasks)

	var paragraphs int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM catalog_paragraphs`).Scan(&paragraphs))
	assert.Greater(t, paragraphs, tasks, "every task should carry at least one paragraph")

	var orders int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&orders))
	assert.Zero(t, orders)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))

	var tasks int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM catalog_tasks`).Scan(&tasks))
	assert.Equal(t, len(seedTasks), tasks, "re-running migrations should not duplicate the seed")
}

func TestSeedCatalog_RespectsEdits(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`UPDATE catalog_tasks SET default_fee_cents = 123400 WHERE code = '110'`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var fee int64
	require.NoError(t, database.QueryRow(`SELECT default_fee_cents FROM catalog_tasks WHERE code = '110'`).Scan(&fee))
	assert.Equal(t, int64(123400), fee, "seed must not overwrite an edited catalog")
}
