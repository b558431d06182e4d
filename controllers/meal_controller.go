package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/varad16/fittrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

type MealInput struct {
	MealType string                      `json:"meal_type" binding:"required"`
	AteAt    time.Time                   `json:"ate_at" binding:"required"`
	Entries  []services.MealEntryRequest `json:"entries" binding:"required,min=1"`
}

func mealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNonPositiveQuantity), errors.Is(err, services.ErrNegativeQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (mc *MealController) Add(c *gin.Context) {
	userID := c.GetUint("userID")

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Svc.AddMeal(userID, input.MealType, input.AteAt, input.Entries)
	if err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Svc.UpdateMeal(userID, mealID, input.MealType, input.AteAt, input.Entries)
	if err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.Svc.DeleteMeal(userID, mealID); err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func (mc *MealController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, ok := pathID(c, "id")
	if !ok {
		return
	}

	meal, err := mc.Svc.GetMeal(userID, mealID)
	if err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var meals []services.MealResponse
	if from != nil && to != nil {
		meals, err = mc.Svc.ListMealsByDateRange(userID, *from, *to)
	} else {
		meals, err = mc.Svc.ListMeals(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) DailyNutrition(c *gin.Context) {
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

	summary, err := mc.Svc.GetDailyNutrition(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (mc *MealController) NutritionRange(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := dateRangeQuery(c)
	if err != nil || from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required (YYYY-MM-DD)"})
		return
	}

	summary, err := mc.Svc.GetNutritionRange(userID, *from, *to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// dateRangeQuery parses optional from/to query params as YYYY-MM-DD.
// Both must be present or both absent.
func dateRangeQuery(c *gin.Context) (*time.Time, *time.Time, error) {
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" && toRaw == "" {
		return nil, nil, nil
	}
	if fromRaw == "" || toRaw == "" {
		return nil, nil, errors.New("from and to must be provided together")
	}

	from, err := time.Parse("2006-01-02", fromRaw)
	if err != nil {
		return nil, nil, errors.New("from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", toRaw)
	if err != nil {
		return nil, nil, errors.New("to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, nil, errors.New("to must not be before from")
	}
	return &from, &to, nil
}
