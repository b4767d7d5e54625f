package controllers

import (
	"hoteljt/response"
	"hoteljt/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GetDashboard returns today's occupancy, the month's revenue and the next
// check-ins.
func (rc *ReportController) GetDashboard(c *gin.Context) {
	summary, err := rc.service.Dashboard()
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, summary)
}

// GetPeriodReport returns revenue and occupancy rate for ?start=&end=
// (end exclusive). Invalid ranges fall back to the current month with a
// message rather than failing.
func (rc *ReportController) GetPeriodReport(c *gin.Context) {
	report, err := rc.service.PeriodReport(c.Query("start"), c.Query("end"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, report)
}
