package nutrition

import "math"

const (
	kgPerLb   = 0.453592
	lbsPerKg  = 2.20462
	cmPerInch = 2.54
)

func LbsToKg(lbs float64) float64 { return lbs * kgPerLb }

func KgToLbs(kg float64) float64 { return kg * lbsPerKg }

// CmToFeet convierte cm a pies + pulgadas redondeadas.
// Las pulgadas no se acarrean: valores cercanos al pie siguiente dan Inches == 12.
func CmToFeet(cm float64) HeightImperial {
	totalInches := cm / cmPerInch
	return HeightImperial{
		Feet:   int(math.Floor(totalInches / 12)),
		Inches: int(math.Round(math.Mod(totalInches, 12))),
	}
}

func FeetToCm(feet, inches float64) float64 {
	return (feet*12 + inches) * cmPerInch
}
