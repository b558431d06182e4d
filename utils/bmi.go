package utils

import "errors"

var ErrImplausibleBody = errors.New("height/weight outside plausible range")

// CalculateBMI takes height in centimeters and weight in kilograms, the
// units the profile and weight log store.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}

	m := heightCm / 100.0
	return weightKg / (m * m), nil
}

// BMICategory maps a BMI value onto the WHO adult bands. The dashboard
// shows this label next to the number.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}
