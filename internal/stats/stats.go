// Package stats is the read-only aggregation layer behind the dashboard
// endpoints: entity totals, grouped counts with joined lookup labels, and the
// recent-operator feeds.
package stats

import (
	"fmt"

	"gorm.io/gorm"
)

// FieldCount is one group of a count-by-column aggregation.
type FieldCount struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
}

// ForeignKeyCount is one group of a count-by-foreign-key aggregation. ID and
// Label stay null for rows whose foreign key is unset.
type ForeignKeyCount struct {
	ID    *uint   `json:"id"`
	Total int64   `json:"total"`
	Label *string `json:"label"`
}

// CountAll counts every row of the model's table.
func CountAll(db *gorm.DB, model any) (int64, error) {
	var total int64
	err := db.Model(model).Count(&total).Error
	return total, err
}

// CountWhere counts rows whose column equals value.
func CountWhere(db *gorm.DB, model any, column string, value any) (int64, error) {
	var total int64
	err := db.Model(model).Where(column+" = ?", value).Count(&total).Error
	return total, err
}

// GroupByField returns per-value counts for a plain column, e.g. assets by
// status or operators by permit_status.
func GroupByField(db *gorm.DB, model any, column string) ([]FieldCount, error) {
	groups := []FieldCount{}
	err := db.Model(model).
		Select(column + " AS key, COUNT(*) AS total").
		Group(column).
		Order(column).
		Scan(&groups).Error
	return groups, err
}

// GroupByForeignKey returns per-parent counts for a foreign key column, with
// the parent's label column left-joined on. Rows with a null foreign key form
// their own group with a null label.
func GroupByForeignKey(db *gorm.DB, model any, table, fkColumn, lookupTable, lookupColumn string) ([]ForeignKeyCount, error) {
	groups := []ForeignKeyCount{}
	err := db.Model(model).
		Select(fmt.Sprintf("%s.%s AS id, COUNT(*) AS total, %s.%s AS label",
			table, fkColumn, lookupTable, lookupColumn)).
		Joins(fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s",
			lookupTable, lookupTable, table, fkColumn)).
		Group(fmt.Sprintf("%s.%s, %s.%s", table, fkColumn, lookupTable, lookupColumn)).
		Order(fmt.Sprintf("%s.%s", table, fkColumn)).
		Scan(&groups).Error
	return groups, err
}

// TodaOperatorCounts counts operators per TODA from the TODA side, so
// associations with no operators still appear with a zero total.
func TodaOperatorCounts(db *gorm.DB) ([]FieldCount, error) {
	groups := []FieldCount{}
	err := db.Table("toda").
		Select("toda.toda_name AS key, COUNT(operators.id) AS total").
		Joins("LEFT JOIN operators ON operators.toda_id = toda.id").
		Group("toda.id, toda.toda_name").
		Order("toda.toda_name").
		Scan(&groups).Error
	return groups, err
}
