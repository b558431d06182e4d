package controllers

import (
	"net/http"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Svc *services.PlanService
}

func NewPlanController(svc *services.PlanService) *PlanController {
	return &PlanController{Svc: svc}
}

func (pc *PlanController) MealPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Days int `json:"days"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Days <= 0 || input.Days > 14 {
		input.Days = 7
	}

	plan, err := pc.Svc.GenerateMealPlan(userID, input.Days)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) WorkoutPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Days int `json:"days"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Days <= 0 || input.Days > 14 {
		input.Days = 7
	}

	plan, err := pc.Svc.GenerateWorkoutPlan(userID, input.Days)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate workout plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) Chat(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := pc.Svc.Chat(userID, input.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Coach is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
