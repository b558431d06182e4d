package controllers

import (
	"errors"
	"net/http"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddWorkout(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WorkoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.AddWorkout(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrNegativeDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workout)
}

func UpdateWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	workoutID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.WorkoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.UpdateWorkout(userID, workoutID, input)
	switch {
	case errors.Is(err, services.ErrNegativeDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, workout)
	}
}

func DeleteWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	workoutID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteWorkout(userID, workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workouts, err := services.ListWorkouts(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}
