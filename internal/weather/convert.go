package weather

// FahrenheitToCelsius converts a Fahrenheit value to Celsius, rounded to 1 decimal place.
func FahrenheitToCelsius(f Number) float64 {
	return roundTo((f.Float64()-32)*5/9, 1)
}
