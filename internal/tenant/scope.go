package tenant

import (
	"strings"

	"gorm.io/gorm"
)

// Scope restricts a query to one company's rows. table qualifies the column when the query
// joins other tables.
func Scope(companyID string, table ...string) func(db *gorm.DB) *gorm.DB {
	column := "company_id"
	if len(table) > 0 && table[0] != "" {
		column = table[0] + ".company_id"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyID)
	}
}

// Between restricts column to the inclusive [from, to] range; empty bounds are ignored.
func Between(column, from, to string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(from) != "" {
			db = db.Where(column+" >= ?", from)
		}
		if strings.TrimSpace(to) != "" {
			db = db.Where(column+" <= ?", to)
		}
		return db
	}
}
