package models

import "github.com/jackc/pgx/v5/pgtype"

// TaskLog is a row of the task_logs table.
type TaskLog struct {
	ID             int64              `db:"id"`
	TaskType       string             `db:"task_type"`
	StartedAt      pgtype.Timestamptz `db:"started_at"`
	FinishedAt     pgtype.Timestamptz `db:"finished_at"`
	Success        bool               `db:"success"`
	Details        pgtype.Text        `db:"details"`
	ItemsProcessed int32              `db:"items_processed"`
}
