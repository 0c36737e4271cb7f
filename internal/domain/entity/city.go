package entity

import (
	"errors"
	"fmt"
)

// City is one of the fixed cities the widget can show.
type City string

const (
	Stockholm City = "Stockholm"
	Milan     City = "Milan"
)

// ErrUnknownCity is returned when a name is not one of Cities().
var ErrUnknownCity = errors.New("unknown city")

var cities = []City{Stockholm, Milan}

// Cities returns the selectable cities in display order. The first one is the default selection.
func Cities() []City {
	return append([]City(nil), cities...)
}

// DefaultCity is the city selected before the user picks one.
func DefaultCity() City {
	return cities[0]
}

// ParseCity validates name against the closed set of cities.
func ParseCity(name string) (City, error) {
	for _, city := range cities {
		if string(city) == name {
			return city, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

func (c City) String() string {
	return string(c)
}
