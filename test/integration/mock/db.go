// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the test server.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The map is keyed by table name so step definitions can assert on tables.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return d
}

// Reset removes every row while keeping the schema. Referencing tables are
// cleared before the tables they point at.
func (d *Db) Reset() error {
	order := []string{"expenses", "budgets", "payment_modes"}

	cleared := make(map[string]bool, len(d.models))
	for _, table := range order {
		model, ok := d.models[table]
		if !ok {
			continue
		}
		if err := d.deleteAll(model); err != nil {
			return err
		}
		cleared[table] = true
	}
	for table, model := range d.models {
		if cleared[table] {
			continue
		}
		if err := d.deleteAll(model); err != nil {
			return err
		}
	}
	return nil
}

func (d *Db) deleteAll(model any) error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
}

// GetModel returns the model registered for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
