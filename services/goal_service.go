package services

import (
	"errors"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"

	"gorm.io/gorm"
)

type GoalRequest struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
	Steps         float64 `json:"steps"`
	ActiveMinutes float64 `json:"active_minutes"`
}

func UpsertGoals(userID uint, req GoalRequest) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:        userID,
			Calories:      req.Calories,
			Protein:       req.Protein,
			Carbs:         req.Carbs,
			Fats:          req.Fats,
			Steps:         req.Steps,
			ActiveMinutes: req.ActiveMinutes,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = req.Calories
	goal.Protein = req.Protein
	goal.Carbs = req.Carbs
	goal.Fats = req.Fats
	goal.Steps = req.Steps
	goal.ActiveMinutes = req.ActiveMinutes

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalProgressItem is one metric of the dashboard card.
type GoalProgressItem struct {
	Actual  float64 `json:"actual"`
	Goal    float64 `json:"goal"`
	Percent float64 `json:"percent"`
}

// Dashboard is the "today" view: recomputed nutrition totals and the
// day's activity against the user's targets.
type Dashboard struct {
	Date     string                      `json:"date"`
	Progress map[string]GoalProgressItem `json:"progress"`
	Body     *BodyStats                  `json:"body,omitempty"`
}

func GetDashboard(mealSvc *MealService, userID uint, day time.Time) (*Dashboard, error) {
	goal, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}

	nutrition, err := mealSvc.GetDailyNutrition(userID, day)
	if err != nil {
		return nil, err
	}

	steps, activeMinutes, err := GetDailyActivity(userID, day)
	if err != nil {
		return nil, err
	}

	body, err := GetBodyStats(userID)
	if err != nil {
		return nil, err
	}

	item := func(actual, target float64) GoalProgressItem {
		return GoalProgressItem{Actual: round2(actual), Goal: target, Percent: pct(actual, target)}
	}

	return &Dashboard{
		Date: nutrition.Date,
		Progress: map[string]GoalProgressItem{
			"calories":       item(nutrition.Totals.Calories, goal.Calories),
			"protein":        item(nutrition.Totals.Protein, goal.Protein),
			"carbs":          item(nutrition.Totals.Carbs, goal.Carbs),
			"fats":           item(nutrition.Totals.Fats, goal.Fats),
			"steps":          item(steps, goal.Steps),
			"active_minutes": item(activeMinutes, goal.ActiveMinutes),
		},
		Body: body,
	}, nil
}
