package controllers

import (
	"net/http"
	"time"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (ac *AnalyticsController) Summary(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	summary, err := ac.Svc.Summary(userID, *from, *to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (ac *AnalyticsController) WeeklyOverview(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart := time.Now().UTC()
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
			return
		}
		weekStart = parsed
	}

	mode := c.DefaultQuery("mode", "chart")
	if mode != "chart" && mode != "detailed" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be chart or detailed"})
		return
	}

	overview, err := ac.Svc.WeeklyOverview(userID, weekStart, mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (ac *AnalyticsController) CalorieChart(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	g := services.BucketDaily
	if c.Query("granularity") == "weekly" {
		g = services.BucketWeekly
	}

	series, err := ac.Svc.CalorieSeries(userID, services.ChartRequest{From: *from, To: *to, Granularity: g})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (ac *AnalyticsController) ActivityChart(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	g := services.BucketDaily
	if c.Query("granularity") == "weekly" {
		g = services.BucketWeekly
	}

	series, err := services.ActivitySeries(userID, *from, *to, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (ac *AnalyticsController) WorkoutChart(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	g := services.BucketDaily
	if c.Query("granularity") == "weekly" {
		g = services.BucketWeekly
	}

	series, err := services.WorkoutSeries(userID, *from, *to, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}
