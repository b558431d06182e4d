package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RecordActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.RecordActivityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := services.RecordActivity(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecordingWindow) || errors.Is(err, services.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func GetActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	activity, err := services.GetActivity(userID, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// GetSharedActivity serves a public share link, no auth required.
func GetSharedActivity(c *gin.Context) {
	shareID := c.Param("shareId")

	activity, err := services.GetSharedActivity(shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

func ListActivities(c *gin.Context) {
	userID := c.GetUint("userID")

	list, err := services.ListActivities(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": list})
}

func DeleteActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteActivity(userID, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

func LogDailyActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Date          time.Time `json:"date" binding:"required"`
		Steps         float64   `json:"steps"`
		ActiveMinutes float64   `json:"active_minutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Steps < 0 || input.ActiveMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "steps and active_minutes must not be negative"})
		return
	}

	if err := services.UpsertDailyActivity(userID, input.Date, input.Steps, input.ActiveMinutes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daily activity saved"})
}

func StepSeries(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	series, err := services.StepSeries(userID, *from, *to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": series})
}
