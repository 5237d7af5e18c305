// Package store is the thin record-store façade the handlers talk to:
// insert with a generated id, ordered scans, equality lookups, partial
// updates and deletes. It owns every timestamp so record ordering never
// depends on a caller's clock.
package store

import (
	"gorm.io/gorm"

	"student-portal-system/internal/global/database"
)

func db() *gorm.DB {
	return database.DB
}

// Insert persists a record, assigning its uuid id and creation timestamps.
func Insert[T any](rec *T) error {
	return db().Create(rec).Error
}

// AllOrdered returns records sorted by the given column. limit <= 0 means
// unbounded.
func AllOrdered[T any](column string, desc bool, limit int) ([]T, error) {
	order := column
	if desc {
		order += " DESC"
	}
	q := db().Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []T
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Where returns every record whose column equals value.
func Where[T any](column string, value any) ([]T, error) {
	var recs []T
	if err := db().Where(column+" = ?", value).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdateByID merges the supplied fields into the record and re-stamps
// updated_at. Updating a missing id matches zero rows and is not an error.
func UpdateByID[T any](id string, fields map[string]any) error {
	var rec T
	return db().Model(&rec).Where("id = ?", id).Updates(fields).Error
}

// DeleteByID removes a record. Deleting a missing id is a no-op, not an
// error.
func DeleteByID[T any](id string) error {
	var rec T
	return db().Where("id = ?", id).Delete(&rec).Error
}

// DeleteWhere removes every record whose column equals value.
func DeleteWhere[T any](column string, value any) error {
	var rec T
	return db().Where(column+" = ?", value).Delete(&rec).Error
}
