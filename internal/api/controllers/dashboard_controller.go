package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ecotours/internal/models/response_models"
	"ecotours/internal/services"
	"ecotours/pkg/utils"
)

const defaultDashboardZone = "Asia/Colombo"

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Booking dashboard
// @Description Booking KPIs, bookings per interval, most booked places and the latest bookings
// @Tags Dashboard
// @Produce json
// @Param start     query string false "RFC3339 start, e.g. 2025-10-01T00:00:00Z"
// @Param end       query string false "RFC3339 end"
// @Param last_days query int    false "Lookback in days, instead of start/end. Default 30"
// @Param interval  query string false "day | week | month (default: day)"
// @Param tz        query string false "IANA zone for bucketing (default: Asia/Colombo)"
// @Success 200 {object} response_models.DashboardReport
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats/ [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	rng, err := dashboardRange(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, report)
}

// dashboardRange reads the report window from the query string. Missing
// bounds are filled in by the service.
func dashboardRange(c *gin.Context) (response_models.TimeRange, error) {
	rng := response_models.TimeRange{
		Interval: c.DefaultQuery("interval", "day"),
		Timezone: c.DefaultQuery("tz", defaultDashboardZone),
	}
	verr := &utils.ValidationError{}

	switch rng.Interval {
	case "day", "week", "month":
	default:
		verr.Add("interval", "Must be one of: day, week, month.")
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if lastDays, ok := c.GetQuery("last_days"); ok {
		d, convErr := strconv.Atoi(lastDays)
		switch {
		case startStr != "" || endStr != "":
			verr.Add("last_days", "Cannot be combined with start or end.")
		case convErr != nil || d <= 0:
			verr.Add("last_days", "Must be a positive integer.")
		default:
			rng.End = time.Now().UTC()
			rng.Start = rng.End.AddDate(0, 0, -d)
		}
	}

	parse := func(field, value string, dst *time.Time) {
		if value == "" {
			return
		}
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			verr.Add(field, "Datetime has wrong format. Use RFC 3339, e.g. 2025-10-01T00:00:00Z.")
			return
		}
		*dst = t
	}
	parse("start", startStr, &rng.Start)
	parse("end", endStr, &rng.End)

	if len(verr.Fields) > 0 {
		return rng, verr
	}
	return rng, nil
}
