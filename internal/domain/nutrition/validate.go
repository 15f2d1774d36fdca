package nutrition

// Rangos "humanos" aceptados por el onboarding. Son consultivos:
// las funciones de cálculo no los aplican.
const (
	MinAge      = 13
	MaxAge      = 120
	MinHeightCm = 100.0 // ~3'3"
	MaxHeightCm = 250.0 // ~8'2"
	MinWeightKg = 30.0  // ~66 lbs
	MaxWeightKg = 300.0 // ~660 lbs
)

func ValidateAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

func ValidateHeight(heightCm float64) bool {
	return heightCm >= MinHeightCm && heightCm <= MaxHeightCm
}

func ValidateWeight(weightKg float64) bool {
	return weightKg >= MinWeightKg && weightKg <= MaxWeightKg
}

// Valid reporta si los tres rangos pasan.
func (b Biometrics) Valid() bool {
	return ValidateAge(b.Age) && ValidateHeight(b.HeightCm) && ValidateWeight(b.WeightKg)
}
