package metrics

import "fmt"

// TemperatureUnit selects how sensor readings are reported.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

// String returns the lowercase unit name.
func (u TemperatureUnit) String() string {
	switch u {
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "celsius"
	}
}

// Suffix returns the display suffix for readings in this unit.
func (u TemperatureUnit) Suffix() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

// FromCelsius converts a Celsius reading (the unit sensors report in) to
// this unit.
func (u TemperatureUnit) FromCelsius(c float64) float64 {
	switch u {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// ParseTemperatureUnit maps a unit name to its TemperatureUnit. The empty
// string maps to Celsius, the default.
func ParseTemperatureUnit(name string) (TemperatureUnit, error) {
	switch name {
	case "", "celsius":
		return Celsius, nil
	case "fahrenheit":
		return Fahrenheit, nil
	case "kelvin":
		return Kelvin, nil
	default:
		return Celsius, fmt.Errorf("unknown temperature unit %q", name)
	}
}
