package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/dto"
	"github.com/SscSPs/cbr_loader/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler exposes the run log and manual loader runs.
type taskHandler struct {
	taskLogService portssvc.TaskLogReaderSvc
	loaders        func(domain.TaskType) portssvc.LoaderSvc
}

// registerTaskRoutes registers the run log listing and the protected trigger endpoint.
func registerTaskRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, jwtSecret string) {
	h := &taskHandler{taskLogService: services.TaskLog, loaders: services.Loader}

	rg.GET("/task-logs", h.listTaskLogs)
	rg.POST("/tasks/:kind/run", middleware.AuthMiddleware(jwtSecret), h.runTask)
}

// listTaskLogs godoc
// @Summary List loader runs
// @Description Lists the most recent loader runs, newest first
// @Tags tasks
// @Produce  json
// @Param   type query string false "Task type" Enums(currency, banks)
// @Param   limit query int false "Maximum number of entries"
// @Success 200 {array} dto.TaskLogResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to retrieve task logs"
// @Router /task-logs [get]
func (h *taskHandler) listTaskLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTaskLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTaskLogs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var taskType *domain.TaskType
	if params.Type != "" {
		t := domain.TaskType(params.Type)
		taskType = &t
	}

	logs, err := h.taskLogService.ListTaskLogs(c.Request.Context(), taskType, params.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "task logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTaskLogResponse(logs))
}

// runTask godoc
// @Summary Run a loader now
// @Description Runs one load synchronously and reports whether it succeeded. Details are in the task log.
// @Tags tasks
// @Produce  json
// @Param   kind path string true "Task type" Enums(currency, banks)
// @Success 200 {object} dto.RunTaskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown task type"
// @Security BearerAuth
// @Router /tasks/{kind}/run [post]
func (h *taskHandler) runTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskType := domain.TaskType(c.Param("kind"))

	loader := h.loaders(taskType)
	if !taskType.Valid() || loader == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown task type"})
		return
	}

	operator, _ := middleware.GetOperatorFromContext(c)
	logger.Info("Manual loader run requested", slog.String("task_type", string(taskType)), slog.String("operator", operator))

	// A started run finishes even if the client goes away.
	success := loader.Run(context.WithoutCancel(c.Request.Context()))
	c.JSON(http.StatusOK, dto.RunTaskResponse{TaskType: string(taskType), Success: success})
}
