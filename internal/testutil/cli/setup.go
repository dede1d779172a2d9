package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/lanekit/internal/app"
	"github.com/thenoetrevino/lanekit/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, nil)
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance
}

// CreateTestItem wraps testutil.CreateTestItem for CLI tests
func CreateTestItem(t *testing.T, db *sql.DB, laneKey, key, title string) string {
	t.Helper()
	return testutil.CreateTestItem(t, db, laneKey, key, title)
}

// ItemPosition wraps testutil.ItemPosition for CLI tests
func ItemPosition(t *testing.T, db *sql.DB, key string) (string, int) {
	t.Helper()
	return testutil.ItemPosition(t, db, key)
}
