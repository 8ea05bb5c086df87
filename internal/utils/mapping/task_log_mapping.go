package mapping

import (
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/SscSPs/cbr_loader/internal/models"
)

// ToDomainTaskLog converts a model TaskLog to a domain TaskLog
func ToDomainTaskLog(m models.TaskLog) domain.TaskLog {
	log := domain.TaskLog{
		ID:             m.ID,
		TaskType:       domain.TaskType(m.TaskType),
		StartedAt:      m.StartedAt.Time,
		Success:        m.Success,
		Details:        m.Details.String,
		ItemsProcessed: int(m.ItemsProcessed),
	}
	if m.FinishedAt.Valid {
		finishedAt := m.FinishedAt.Time
		log.FinishedAt = &finishedAt
	}
	return log
}
