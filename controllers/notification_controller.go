package controllers

import (
	"errors"
	"net/http"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")
	unreadOnly := c.Query("unread") == "true"

	alerts, err := services.ListAlerts(userID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func MarkAlertRead(c *gin.Context) {
	userID := c.GetUint("userID")
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.MarkAlertRead(userID, alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "alert marked read"})
}
