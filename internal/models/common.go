package models

import "time"

// AuditFields mirrors the audit columns of imported tables.
type AuditFields struct {
	CreatedAt       time.Time `db:"creation_date"`
	CreatedBy       string    `db:"created_by"`
	LastUpdatedAt   time.Time `db:"last_update_date"`
	LastUpdatedBy   string    `db:"last_update_by"`
	LastUpdateLogin string    `db:"last_update_login"`
}
