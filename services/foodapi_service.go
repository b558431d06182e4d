package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/varad16/fittrack-pro/models"
)

// FoodAPIService queries the Open Food Facts search API for catalog
// entries we don't have locally. Macros come back per 100 g.
type FoodAPIService struct {
	baseURL string
	client  *http.Client
}

func NewFoodAPIService() *FoodAPIService {
	return &FoodAPIService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type offSearchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

func (s *FoodAPIService) SearchFoods(query string) ([]models.FoodItem, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=10",
		s.baseURL, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse food search JSON: %w", err)
	}

	results := make([]models.FoodItem, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.ProductName == "" {
			continue
		}
		// store per-gram so Quantity can be grams
		results = append(results, models.FoodItem{
			Name:            p.ProductName,
			Brand:           p.Brands,
			Unit:            "g",
			CaloriesPerUnit: p.Nutriments.EnergyKcal100g / 100,
			ProteinPerUnit:  p.Nutriments.Proteins100g / 100,
			CarbsPerUnit:    p.Nutriments.Carbs100g / 100,
			FatsPerUnit:     p.Nutriments.Fat100g / 100,
		})
	}
	return results, nil
}
