package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"
)

var ErrNonPositiveQuantity = errors.New("food entry quantity must be positive")

type MealService struct {
	foodSvc *FoodService
}

func NewMealService(fs *FoodService) *MealService {
	return &MealService{foodSvc: fs}
}

type MealEntryRequest struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
}

// MealResponse carries the meal plus totals recomputed from its entries.
// The row's cached totals are written on every mutation but never trusted
// on the way out.
type MealResponse struct {
	models.Meal
	Totals MealTotals `json:"totals"`
}

func (s *MealService) buildEntries(mealID uint, reqs []MealEntryRequest) error {
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return fmt.Errorf("food item %d: %w", r.FoodItemID, ErrNonPositiveQuantity)
		}
		item, err := s.foodSvc.GetFood(r.FoodItemID)
		if err != nil {
			return fmt.Errorf("food item %d: %w", r.FoodItemID, err)
		}

		entry := &models.FoodEntry{
			MealID:          mealID,
			FoodItemID:      item.ID,
			FoodName:        item.Name,
			Quantity:        r.Quantity,
			CaloriesPerUnit: item.CaloriesPerUnit,
			ProteinPerUnit:  item.ProteinPerUnit,
			CarbsPerUnit:    item.CarbsPerUnit,
			FatsPerUnit:     item.FatsPerUnit,
		}
		if err := config.DB.Create(entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// syncCachedTotals recomputes the meal's stored totals from its entries.
// Reconciles the cache with the source of truth after every mutation.
func (s *MealService) syncCachedTotals(meal *models.Meal) (MealTotals, error) {
	var entries []models.FoodEntry
	if err := config.DB.Where("meal_id = ?", meal.ID).Find(&entries).Error; err != nil {
		return MealTotals{}, err
	}
	totals, err := SumFoodLines(foodLinesFromEntries(entries))
	if err != nil {
		return MealTotals{}, err
	}

	meal.TotalCalories = totals.Calories
	meal.TotalProtein = totals.Protein
	meal.TotalCarbs = totals.Carbs
	meal.TotalFats = totals.Fats
	if err := config.DB.Save(meal).Error; err != nil {
		return MealTotals{}, err
	}
	return totals, nil
}

func (s *MealService) loadWithTotals(mealID uint) (*MealResponse, error) {
	var meal models.Meal
	if err := config.DB.Preload("Entries").First(&meal, mealID).Error; err != nil {
		return nil, err
	}
	totals, err := SumFoodLines(foodLinesFromEntries(meal.Entries))
	if err != nil {
		return nil, err
	}
	return &MealResponse{Meal: meal, Totals: totals.Rounded()}, nil
}

func (s *MealService) AddMeal(userID uint, mealType string, ateAt time.Time, entries []MealEntryRequest) (*MealResponse, error) {
	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	if err := s.buildEntries(meal.ID, entries); err != nil {
		return nil, err
	}
	if _, err := s.syncCachedTotals(meal); err != nil {
		return nil, err
	}
	return s.loadWithTotals(meal.ID)
}

func (s *MealService) UpdateMeal(userID, mealID uint, mealType string, ateAt time.Time, entries []MealEntryRequest) (*MealResponse, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	meal.Type = mealType
	meal.AteAt = ateAt
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("meal_id = ?", meal.ID).
		Delete(&models.FoodEntry{}).Error; err != nil {
		return nil, err
	}
	if err := s.buildEntries(meal.ID, entries); err != nil {
		return nil, err
	}
	if _, err := s.syncCachedTotals(&meal); err != nil {
		return nil, err
	}
	return s.loadWithTotals(meal.ID)
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("meal_id = ?", meal.ID).
		Delete(&models.FoodEntry{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&meal).Error
}

func (s *MealService) GetMeal(userID, mealID uint) (*MealResponse, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Entries").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	totals, err := SumFoodLines(foodLinesFromEntries(meal.Entries))
	if err != nil {
		return nil, err
	}
	return &MealResponse{Meal: meal, Totals: totals.Rounded()}, nil
}

func (s *MealService) ListMeals(userID uint) ([]MealResponse, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Entries").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return s.withTotals(meals)
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]MealResponse, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Entries").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return s.withTotals(meals)
}

func (s *MealService) withTotals(meals []models.Meal) ([]MealResponse, error) {
	out := make([]MealResponse, 0, len(meals))
	for _, m := range meals {
		totals, err := SumFoodLines(foodLinesFromEntries(m.Entries))
		if err != nil {
			return nil, err
		}
		out = append(out, MealResponse{Meal: m, Totals: totals.Rounded()})
	}
	return out, nil
}

// DailyNutrition recomputes one UTC day's totals from the day's entries.
type DailyNutrition struct {
	Date   string         `json:"date"`
	Meals  []MealResponse `json:"meals"`
	Totals MealTotals     `json:"totals"`
}

func (s *MealService) GetDailyNutrition(userID uint, day time.Time) (*DailyNutrition, error) {
	from := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	meals, err := s.ListMealsByDateRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	perMeal := make([]MealTotals, 0, len(meals))
	for _, m := range meals {
		perMeal = append(perMeal, m.Totals)
	}

	return &DailyNutrition{
		Date:   from.Format("2006-01-02"),
		Meals:  meals,
		Totals: SumMealTotals(perMeal).Rounded(),
	}, nil
}

// NutritionRange sums per day and averages over days that have meals.
type NutritionRange struct {
	From       string                `json:"from"`
	To         string                `json:"to"`
	ByDay      map[string]MealTotals `json:"by_day"`
	RangeTotal MealTotals            `json:"range_total"`
	DailyAvg   MealTotals            `json:"daily_avg"` // over logged days only
	DaysLogged int                   `json:"days_logged"`
}

func (s *MealService) GetNutritionRange(userID uint, from, to time.Time) (*NutritionRange, error) {
	meals, err := s.ListMealsByDateRange(userID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	// sum unrounded entry values per day; rounding happens once, below
	byDay := map[string]MealTotals{}
	for _, m := range meals {
		raw, err := SumFoodLines(foodLinesFromEntries(m.Entries))
		if err != nil {
			return nil, err
		}
		key := BucketKey(m.AteAt, BucketDaily)
		day := byDay[key]
		day.Calories += raw.Calories
		day.Protein += raw.Protein
		day.Carbs += raw.Carbs
		day.Fats += raw.Fats
		byDay[key] = day
	}

	rounded := make(map[string]MealTotals, len(byDay))
	perDay := make([]MealTotals, 0, len(byDay))
	for k, d := range byDay {
		rounded[k] = d.Rounded()
		perDay = append(perDay, d)
	}

	return &NutritionRange{
		From:       from.UTC().Format("2006-01-02"),
		To:         to.UTC().Format("2006-01-02"),
		ByDay:      rounded,
		RangeTotal: SumMealTotals(perDay).Rounded(),
		DailyAvg:   AveragePerLoggedDay(byDay).Rounded(),
		DaysLogged: len(byDay),
	}, nil
}
