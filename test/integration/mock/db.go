// Package mock provides test doubles for integration tests.
package mock

import (
	"database/sql"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// Db wraps an in-memory database carrying the full application schema.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a fresh in-memory database and migrates the schema. Each
// scenario gets its own instance, so no cross-scenario cleanup is needed.
func NewDb() *Db {
	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.BillModel{},
		&model.DeviceModel{},
		&model.FinancialSummaryModel{},
	); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Close releases the underlying connection.
func (d *Db) Close() {
	if sqlDB, err := d.DbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
