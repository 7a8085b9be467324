package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		nickname TEXT NOT NULL,
		password TEXT,
		profile_image TEXT,
		role TEXT NOT NULL,
		provider TEXT NOT NULL,
		social_id TEXT UNIQUE,
		is_onboarded BOOLEAN NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createArtistTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE artists (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		genre TEXT,
		country TEXT,
		image_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
