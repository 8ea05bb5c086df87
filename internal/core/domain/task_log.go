package domain

import (
	"fmt"
	"time"
)

// TaskType identifies which loader a TaskLog belongs to.
type TaskType string

const (
	TaskTypeCurrency TaskType = "currency"
	TaskTypeBanks    TaskType = "banks"
)

// Label is the human readable name of the task type.
func (t TaskType) Label() string {
	switch t {
	case TaskTypeCurrency:
		return "Currency rates load"
	case TaskTypeBanks:
		return "Banks data load"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	return t == TaskTypeCurrency || t == TaskTypeBanks
}

// TaskLog is the audit record of one loader invocation.
// FinishedAt is nil until the run completes.
type TaskLog struct {
	ID             int64      `json:"id"`
	TaskType       TaskType   `json:"taskType"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	Success        bool       `json:"success"`
	Details        string     `json:"details"`
	ItemsProcessed int        `json:"itemsProcessed"`
}

func (l TaskLog) String() string {
	outcome := "Failed"
	if l.Success {
		outcome = "Succeeded"
	}
	return fmt.Sprintf("%s - %s (%s)", l.TaskType.Label(), l.StartedAt.Format(time.DateTime), outcome)
}
