package domain

import "time"

// AuditFields holds standard audit information for imported records.
type AuditFields struct {
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy   string    `json:"lastUpdatedBy"`
	LastUpdateLogin string    `json:"lastUpdateLogin"` // channel that performed the update
}

const (
	// SystemActor is the creator/updater tag stamped on records written by the loaders.
	SystemActor = "SYSTEM"
	// AutoImportLogin is the update channel tag for records written by the loaders.
	AutoImportLogin = "AUTO_IMPORT"
)

// NewSystemAuditFields returns audit fields for a record written by a loader at now.
func NewSystemAuditFields(now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:       now,
		CreatedBy:       SystemActor,
		LastUpdatedAt:   now,
		LastUpdatedBy:   SystemActor,
		LastUpdateLogin: AutoImportLogin,
	}
}
