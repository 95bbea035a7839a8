package testhelpers

import (
	"path/filepath"

	"fitratio/internal/db"
	"fitratio/internal/models"
	"fitratio/internal/store"

	g "github.com/onsi/gomega"
	"gorm.io/gorm"
)

// OpenTestDB opens a throwaway SQLite database under dir and ensures the
// schema exists.
func OpenTestDB(dir string) *gorm.DB {
	dbConn, err := db.InitDB(filepath.Join(dir, "comparisons_test.db"))
	g.Expect(err).NotTo(g.HaveOccurred())

	g.Expect(store.New(dbConn).Init()).To(g.Succeed())

	return dbConn
}

// CleanupDB empties the comparisons table and resets the id sequence so each
// test starts from id 1.
func CleanupDB(dbConn *gorm.DB) {
	g.Expect(dbConn.Exec("DELETE FROM comparisons").Error).NotTo(g.HaveOccurred())
	g.Expect(dbConn.Exec("DELETE FROM sqlite_sequence WHERE name = 'comparisons'").Error).NotTo(g.HaveOccurred())
}

// CreateComparison inserts one row directly, bypassing the store, with full
// control over every column.
func CreateComparison(dbConn *gorm.DB, comparison *models.Comparison) *models.Comparison {
	g.Expect(dbConn.Create(comparison).Error).NotTo(g.HaveOccurred())
	return comparison
}

// Float returns a pointer to v, handy for ResultValue fields.
func Float(v float64) *float64 {
	return &v
}
