package services

import (
	"errors"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"
)

var ErrInvalidMacros = errors.New("per-unit macros must not be negative")

type FoodService struct {
	api *FoodAPIService
	rek *RekognitionService
}

func NewFoodService(api *FoodAPIService, rek *RekognitionService) *FoodService {
	return &FoodService{api: api, rek: rek}
}

// Search looks in the local catalog first and falls back to the external
// food database, importing any hits so the next search is local.
func (s *FoodService) Search(userID uint, query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := config.DB.
		Where("(created_by_id = 0 OR created_by_id = ?) AND name ILIKE ?", userID, "%"+query+"%").
		Limit(25).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || s.api == nil {
		return items, nil
	}

	remote, err := s.api.SearchFoods(query)
	if err != nil {
		// external lookup is best-effort; an empty catalog result is
		// still a valid answer
		return items, nil
	}
	for i := range remote {
		remote[i].Source = "openfoodfacts"
		if err := config.DB.
			Where("name = ? AND brand = ? AND source = ?", remote[i].Name, remote[i].Brand, remote[i].Source).
			FirstOrCreate(&remote[i]).Error; err != nil {
			return nil, err
		}
	}
	return remote, nil
}

type CustomFoodRequest struct {
	Name            string  `json:"name" binding:"required"`
	Brand           string  `json:"brand"`
	Unit            string  `json:"unit"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	ProteinPerUnit  float64 `json:"protein_per_unit"`
	CarbsPerUnit    float64 `json:"carbs_per_unit"`
	FatsPerUnit     float64 `json:"fats_per_unit"`
}

func (s *FoodService) CreateCustomFood(userID uint, req CustomFoodRequest) (*models.FoodItem, error) {
	if req.CaloriesPerUnit < 0 || req.ProteinPerUnit < 0 || req.CarbsPerUnit < 0 || req.FatsPerUnit < 0 {
		return nil, ErrInvalidMacros
	}
	unit := req.Unit
	if unit == "" {
		unit = "serving"
	}

	item := models.FoodItem{
		Name:            req.Name,
		Brand:           req.Brand,
		Unit:            unit,
		CaloriesPerUnit: req.CaloriesPerUnit,
		ProteinPerUnit:  req.ProteinPerUnit,
		CarbsPerUnit:    req.CarbsPerUnit,
		FatsPerUnit:     req.FatsPerUnit,
		Source:          "custom",
		CreatedByID:     userID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *FoodService) GetFood(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SuggestFromPhoto runs the image through Rekognition and searches the
// catalog for each detected label.
func (s *FoodService) SuggestFromPhoto(userID uint, base64Img string) (map[string][]models.FoodItem, error) {
	if s.rek == nil {
		return nil, errors.New("photo recognition not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]models.FoodItem, len(labels))
	for _, label := range labels {
		matches, err := s.Search(userID, label)
		if err != nil {
			return nil, err
		}
		out[label] = matches
	}
	return out, nil
}
