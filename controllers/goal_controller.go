package controllers

import (
	"net/http"
	"time"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	MealSvc *services.MealService
}

func NewGoalController(mealSvc *services.MealService) *GoalController {
	return &GoalController{MealSvc: mealSvc}
}

func (gc *GoalController) Upsert(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := services.UpsertGoals(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) Dashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	dash, err := services.GetDashboard(gc.MealSvc, userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dash)
}
