package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"
)

// PlanService talks to an external LLM inference API to produce meal and
// workout plans and coach replies. Responses are parsed into typed structs
// at this boundary; nothing downstream ever sees the raw model output.
type PlanService struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func NewPlanService() *PlanService {
	baseURL := os.Getenv("LLM_API_URL")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	return &PlanService{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		token:   os.Getenv("LLM_API_TOKEN"),
		model:   model,
	}
}

type PlannedMeal struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

type MealPlanDay struct {
	Day   string        `json:"day"`
	Meals []PlannedMeal `json:"meals"`
}

type MealPlanResponse struct {
	Days []MealPlanDay `json:"days"`
}

type PlannedExercise struct {
	Name            string  `json:"name"`
	Sets            int     `json:"sets,omitempty"`
	Reps            int     `json:"reps,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
}

type WorkoutPlanDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Exercises []PlannedExercise `json:"exercises"`
}

type WorkoutPlanResponse struct {
	Days []WorkoutPlanDay `json:"days"`
}

// userContext summarizes the user's recent history for the prompt.
func (p *PlanService) userContext(userID uint) string {
	var sb strings.Builder

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		if user.FitnessGoal != "" {
			fmt.Fprintf(&sb, "Fitness goal: %s\n", user.FitnessGoal)
		}
		if user.HeightCm > 0 {
			fmt.Fprintf(&sb, "Height: %.0f cm\n", user.HeightCm)
		}
	}

	if latest, err := LatestWeight(userID); err == nil && latest != nil {
		fmt.Fprintf(&sb, "Current weight: %.1f kg\n", latest.WeightKg)
	}

	var entries []models.FoodEntry
	today := time.Now().UTC().Format("2006-01-02")
	config.DB.
		Table("food_entries fe").
		Joins("JOIN meals m ON m.id = fe.meal_id").
		Where("m.user_id = ? AND DATE(m.ate_at) = ?", userID, today).
		Select("fe.food_name, fe.quantity, fe.calories_per_unit").
		Scan(&entries)

	if len(entries) > 0 {
		sb.WriteString("Today's meals so far:\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "- %s: %.0f units, %.0f kcal\n",
				e.FoodName, e.Quantity, e.Quantity*e.CaloriesPerUnit)
		}
	}
	return sb.String()
}

func (p *PlanService) generate(prompt string) (string, error) {
	if p.token == "" {
		return "", fmt.Errorf("LLM_API_TOKEN not set")
	}

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 1024,
			"temperature":    0.3,
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST",
		fmt.Sprintf("%s/%s", p.baseURL, p.model), bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read llm response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("llm API error %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("llm API error %d: %s", resp.StatusCode, string(respBytes))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil || len(out) == 0 {
		return "", fmt.Errorf("unexpected llm response shape: %s", string(respBytes))
	}
	return out[0].GeneratedText, nil
}

// extractJSON pulls the first top-level JSON object out of model output
// that may wrap it in prose or code fences.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model output")
	}
	return text[start : end+1], nil
}

func (p *PlanService) GenerateMealPlan(userID uint, days int) (*MealPlanResponse, error) {
	if days <= 0 || days > 14 {
		days = 7
	}

	prompt := fmt.Sprintf(
		"You are a nutrition coach. %s\nCreate a %d-day meal plan. "+
			`Respond ONLY with JSON of the shape {"days":[{"day":"Monday","meals":[{"type":"breakfast","description":"...","calories":0}]}]}.`,
		p.userContext(userID), days,
	)

	text, err := p.generate(prompt)
	if err != nil {
		return nil, err
	}
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var plan MealPlanResponse
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan: %w", err)
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("model returned an empty meal plan")
	}
	return &plan, nil
}

func (p *PlanService) GenerateWorkoutPlan(userID uint, days int) (*WorkoutPlanResponse, error) {
	if days <= 0 || days > 14 {
		days = 7
	}

	prompt := fmt.Sprintf(
		"You are a personal trainer. %s\nCreate a %d-day workout plan. "+
			`Respond ONLY with JSON of the shape {"days":[{"day":"Monday","focus":"legs","exercises":[{"name":"squat","sets":3,"reps":10}]}]}.`,
		p.userContext(userID), days,
	)

	text, err := p.generate(prompt)
	if err != nil {
		return nil, err
	}
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var plan WorkoutPlanResponse
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse workout plan: %w", err)
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("model returned an empty workout plan")
	}
	return &plan, nil
}

// Chat relays one coach question with the user's context attached.
func (p *PlanService) Chat(userID uint, message string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a friendly fitness coach. Context about the user:\n%s\nUser asks: %s\nAnswer in a short, practical paragraph.",
		p.userContext(userID), message,
	)
	return p.generate(prompt)
}
