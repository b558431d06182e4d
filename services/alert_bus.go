package services

import (
	"fmt"
	"time"

	"github.com/varad16/fittrack-pro/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the alert and fans it out over websocket and push.
// Safe to call anywhere; a nil dependency just skips that channel.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastToUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "New Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

func ListAlerts(userID uint, unreadOnly bool) ([]models.Alert, error) {
	if _alert.db == nil {
		return nil, fmt.Errorf("alert bus not initialized")
	}
	q := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var alerts []models.Alert
	err := q.Find(&alerts).Error
	return alerts, err
}

func MarkAlertRead(userID, alertID uint) error {
	if _alert.db == nil {
		return fmt.Errorf("alert bus not initialized")
	}
	return _alert.db.Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("read", true).Error
}
