package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LogWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		WeightKg float64   `json:"weight_kg" binding:"required"`
		LoggedAt time.Time `json:"logged_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.LogWeight(userID, input.WeightKg, input.LoggedAt)
	if err != nil {
		if errors.Is(err, services.ErrNonPositiveWeight) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

func DeleteWeightLog(c *gin.Context) {
	userID := c.GetUint("userID")
	logID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteWeightLog(userID, logID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "weight log deleted"})
}

func ListWeightLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := services.ListWeightLogs(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weight_logs": logs})
}

func WeightTrend(c *gin.Context) {
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

	series, err := services.WeightTrend(userID, *from, *to, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": series})
}

func LogMeasurement(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MeasurementRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := services.LogMeasurement(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

func DeleteMeasurement(c *gin.Context) {
	userID := c.GetUint("userID")
	measurementID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteMeasurement(userID, measurementID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "measurement deleted"})
}

func ListMeasurements(c *gin.Context) {
	userID := c.GetUint("userID")

	list, err := services.ListMeasurements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"measurements": list})
}

func BodyStats(c *gin.Context) {
	userID := c.GetUint("userID")

	stats, err := services.GetBodyStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
