package controllers

import (
	"errors"
	"net/http"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChallengeController struct {
	Svc *services.ChallengeService
}

func NewChallengeController(svc *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Svc: svc}
}

func (cc *ChallengeController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ChallengeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := cc.Svc.CreateChallenge(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrUnknownChallengeType) ||
			errors.Is(err, services.ErrInvalidChallengeWindow) ||
			errors.Is(err, services.ErrInvalidGoal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

func (cc *ChallengeController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	challenge, err := cc.Svc.GetChallenge(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func (cc *ChallengeController) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	list, err := cc.Svc.ListChallenges(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": list})
}

func (cc *ChallengeController) Join(c *gin.Context) {
	userID := c.GetUint("userID")
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	participant, err := cc.Svc.Join(userID, challengeID)
	switch {
	case errors.Is(err, services.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, participant)
	}
}

func (cc *ChallengeController) Leave(c *gin.Context) {
	userID := c.GetUint("userID")
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := cc.Svc.Leave(userID, challengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not a participant"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left challenge"})
}

func (cc *ChallengeController) Leaderboard(c *gin.Context) {
	challengeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entries, err := cc.Svc.Leaderboard(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
