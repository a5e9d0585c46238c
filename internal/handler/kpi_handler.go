package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type KPIHandler struct {
	kpiService service.KPIService
}

func NewKPIHandler(kpiService service.KPIService) *KPIHandler {
	return &KPIHandler{
		kpiService: kpiService,
	}
}

func sprintScope(c *gin.Context) *string {
	if v := c.Query("sprintId"); v != "" {
		return &v
	}
	return nil
}

// SprintReport godoc
// @Summary      Sprint completion report
// @Description  Returns counts, completion rate and hour totals,
// @Description  board-wide or scoped to one sprint
// @Tags         reports
// @Produce      json
// @Param        sprintId query string false "Sprint ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintReportResponse} "Report retrieved"
// @Router       /reports/sprint [get]
func (h *KPIHandler) SprintReport(c *gin.Context) {
	report, err := h.kpiService.SprintReport(c.Request.Context(), sprintScope(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// AssigneeReport godoc
// @Summary      Per-assignee workload report
// @Description  Returns open and done counts per assignee,
// @Description  board-wide or scoped to one sprint
// @Tags         reports
// @Produce      json
// @Param        sprintId query string false "Sprint ID"
// @Success      200 {object} response.SuccessResponse{data=dto.AssigneeReportResponse} "Report retrieved"
// @Router       /reports/assignees [get]
func (h *KPIHandler) AssigneeReport(c *gin.Context) {
	report, err := h.kpiService.AssigneeReport(c.Request.Context(), sprintScope(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}
