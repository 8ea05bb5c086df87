package dto

import (
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// ListTaskLogsParams are the query parameters of the run log listing.
type ListTaskLogsParams struct {
	Type  string `form:"type" binding:"omitempty,oneof=currency banks"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// TaskLogResponse defines the data returned for one loader run.
type TaskLogResponse struct {
	ID             int64      `json:"id"`
	TaskType       string     `json:"taskType"`
	Label          string     `json:"label"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	Success        bool       `json:"success"`
	Details        string     `json:"details"`
	ItemsProcessed int        `json:"itemsProcessed"`
}

// RunTaskResponse is the outcome of a manually triggered run.
type RunTaskResponse struct {
	TaskType string `json:"taskType"`
	Success  bool   `json:"success"`
}

func ToTaskLogResponse(l domain.TaskLog) TaskLogResponse {
	return TaskLogResponse{
		ID:             l.ID,
		TaskType:       string(l.TaskType),
		Label:          l.TaskType.Label(),
		StartedAt:      l.StartedAt,
		FinishedAt:     l.FinishedAt,
		Success:        l.Success,
		Details:        l.Details,
		ItemsProcessed: l.ItemsProcessed,
	}
}

func ToListTaskLogResponse(logs []domain.TaskLog) []TaskLogResponse {
	res := make([]TaskLogResponse, len(logs))
	for i, l := range logs {
		res[i] = ToTaskLogResponse(l)
	}
	return res
}
