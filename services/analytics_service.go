package services

import (
	"errors"
	"time"

	"github.com/varad16/fittrack-pro/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db      *gorm.DB
	mealSvc *MealService
}

func NewAnalyticsService(db *gorm.DB, mealSvc *MealService) *AnalyticsService {
	return &AnalyticsService{db: db, mealSvc: mealSvc}
}

// ---------- Summary ----------

type MetricAvg struct {
	AvgActual float64 `json:"avg_actual"`
	Goal      float64 `json:"goal,omitempty"`
	Unit      string  `json:"unit,omitempty"`
}

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	// Averages over days that have logged meals; unlogged days are not
	// counted as zeros.
	Nutrition map[string]MetricAvg `json:"nutrition"`
	Activity  map[string]MetricAvg `json:"activity"` // steps, active minutes, workouts/week

	Metadata struct {
		DaysLogged int `json:"days_logged"`
	} `json:"metadata"`
}

func (s *AnalyticsService) Summary(userID uint, from, to time.Time) (*AnalyticsSummary, error) {
	nr, err := s.mealSvc.GetNutritionRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalSnapshot(userID)
	if err != nil {
		return nil, err
	}

	steps, err := SumStepsInWindow(userID, from, to)
	if err != nil {
		return nil, err
	}
	workouts, err := CountWorkoutsInWindow(userID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	calendarDays := to.Sub(from).Hours()/24 + 1
	if calendarDays < 1 {
		calendarDays = 1
	}

	out := &AnalyticsSummary{}
	out.Range.From = from.UTC().Format("2006-01-02")
	out.Range.To = to.UTC().Format("2006-01-02")
	out.Metadata.DaysLogged = nr.DaysLogged

	out.Nutrition = map[string]MetricAvg{
		"calories": {AvgActual: nr.DailyAvg.Calories, Goal: goal.Calories, Unit: "kcal"},
		"protein":  {AvgActual: nr.DailyAvg.Protein, Goal: goal.Protein, Unit: "g"},
		"carbs":    {AvgActual: nr.DailyAvg.Carbs, Goal: goal.Carbs, Unit: "g"},
		"fats":     {AvgActual: nr.DailyAvg.Fats, Goal: goal.Fats, Unit: "g"},
	}

	out.Activity = map[string]MetricAvg{
		"steps_per_day":     {AvgActual: round2(steps / calendarDays), Goal: goal.Steps, Unit: "steps"},
		"workouts_per_week": {AvgActual: round2(float64(workouts) / (calendarDays / 7)), Unit: "workouts"},
	}

	return out, nil
}

// ---------- Weekly Overview ----------

type WeeklyOverviewResponse struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type DayDetailed struct {
	Date    string                      `json:"date"`
	Metrics map[string]GoalProgressItem `json:"metrics"`
}

func (s *AnalyticsService) WeeklyOverview(userID uint, weekStart time.Time, mode string) (*WeeklyOverviewResponse, error) {
	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := weekStartUTC(weekStart)
	to := from.AddDate(0, 0, 6)

	nr, err := s.mealSvc.GetNutritionRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalSnapshot(userID)
	if err != nil {
		return nil, err
	}

	stepsByDay := map[string]models.DailyActivityLog{}
	var activityLogs []models.DailyActivityLog
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to.AddDate(0, 0, 1)).
		Find(&activityLogs).Error; err != nil {
		return nil, err
	}
	for _, l := range activityLogs {
		stepsByDay[l.Date.UTC().Format("2006-01-02")] = l
	}

	out := &WeeklyOverviewResponse{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			key := from.AddDate(0, 0, i).Format("2006-01-02")
			n := nr.ByDay[key]
			act := stepsByDay[key]
			days = append(days, DayChart{
				Date: key,
				Percentages: map[string]float64{
					"calories":       pct(n.Calories, goal.Calories),
					"protein":        pct(n.Protein, goal.Protein),
					"carbs":          pct(n.Carbs, goal.Carbs),
					"fats":           pct(n.Fats, goal.Fats),
					"steps":          pct(act.Steps, goal.Steps),
					"active_minutes": pct(act.ActiveMinutes, goal.ActiveMinutes),
				},
			})
		}
		out.Days = days
		return out, nil
	}

	item := func(actual, target float64) GoalProgressItem {
		return GoalProgressItem{Actual: round2(actual), Goal: round2(target), Percent: pct(actual, target)}
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		n := nr.ByDay[key]
		act := stepsByDay[key]
		days = append(days, DayDetailed{
			Date: key,
			Metrics: map[string]GoalProgressItem{
				"calories":       item(n.Calories, goal.Calories),
				"protein_g":      item(n.Protein, goal.Protein),
				"carbs_g":        item(n.Carbs, goal.Carbs),
				"fats_g":         item(n.Fats, goal.Fats),
				"steps":          item(act.Steps, goal.Steps),
				"active_minutes": item(act.ActiveMinutes, goal.ActiveMinutes),
			},
		})
	}
	out.Days = days
	return out, nil
}

// ---------- Chart endpoints ----------

type ChartRequest struct {
	From        time.Time
	To          time.Time
	Granularity BucketGranularity
}

func (s *AnalyticsService) CalorieSeries(userID uint, req ChartRequest) ([]SeriesBucket, error) {
	meals, err := s.mealSvc.ListMealsByDateRange(userID, req.From, req.To.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	points := make([]TimePoint, 0, len(meals))
	for _, m := range meals {
		raw, err := SumFoodLines(foodLinesFromEntries(m.Entries))
		if err != nil {
			return nil, err
		}
		points = append(points, TimePoint{
			Date: m.AteAt,
			Values: map[string]float64{
				"calories": raw.Calories,
				"protein":  raw.Protein,
				"carbs":    raw.Carbs,
				"fats":     raw.Fats,
			},
		})
	}
	return BucketSeries(points, req.Granularity), nil
}

func (s *AnalyticsService) goalSnapshot(userID uint) (*models.DailyGoal, error) {
	var g models.DailyGoal
	if err := s.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{}, nil
		}
		return nil, err
	}
	return &g, nil
}
