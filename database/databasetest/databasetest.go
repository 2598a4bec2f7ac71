// Package databasetest opens throwaway SQLite databases shaped like the
// production schema.
package databasetest

import (
	"testing"

	"github.com/rpupo63/cms-admin-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The agreement table lives in another schema in production. SQLite gets the
// same qualified name through an attached database.
const agreementDDL = `CREATE TABLE dfp.tcus_agre_m (
	agre_no           TEXT PRIMARY KEY,
	tmcnd_plcy_cls_cd TEXT,
	scrn_id           TEXT,
	cust_id           TEXT,
	cust_nm           TEXT,
	eml               TEXT,
	agre_yn           TEXT,
	agre_dtm          DATETIME,
	inpt_usr_id       TEXT NOT NULL DEFAULT '',
	inpt_dtm          DATETIME,
	updt_usr_id       TEXT NOT NULL DEFAULT '',
	updt_dtm          DATETIME
)`

// New returns an in-memory database with all three tables. LIKE is made case
// sensitive to behave like PostgreSQL.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA case_sensitive_like = ON").Error)
	require.NoError(t, db.Exec("ATTACH DATABASE ':memory:' AS dfp").Error)
	require.NoError(t, db.Exec(agreementDDL).Error)
	require.NoError(t, db.AutoMigrate(&models.BlogPost{}, &models.CustomerInfo{}))

	return db
}
