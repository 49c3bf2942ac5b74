package config

import (
	"sort"

	"github.com/LovationAdmin/powertrack/models"
)

// countryTariffs is the static per-country electricity data. Built once,
// read-only after init.
var countryTariffs = map[string]models.Tariff{
	"USA":       {Voltage: 120, Frequency: 60, CostPerKWh: 0.15},
	"Canada":    {Voltage: 120, Frequency: 60, CostPerKWh: 0.12},
	"UK":        {Voltage: 230, Frequency: 50, CostPerKWh: 0.22},
	"Germany":   {Voltage: 230, Frequency: 50, CostPerKWh: 0.35},
	"France":    {Voltage: 230, Frequency: 50, CostPerKWh: 0.19},
	"Australia": {Voltage: 230, Frequency: 50, CostPerKWh: 0.25},
	"Japan":     {Voltage: 100, Frequency: 50, CostPerKWh: 0.26},
	"India":     {Voltage: 230, Frequency: 50, CostPerKWh: 0.08},
	"China":     {Voltage: 220, Frequency: 50, CostPerKWh: 0.10},
	"Brazil":    {Voltage: 127, Frequency: 60, CostPerKWh: 0.18},
}

var countryNames []string

func init() {
	countryNames = make([]string, 0, len(countryTariffs))
	for name := range countryTariffs {
		countryNames = append(countryNames, name)
	}
	sort.Strings(countryNames)
}

// TariffFor looks up a country's tariff. The second return is false for
// unknown countries.
func TariffFor(country string) (models.Tariff, bool) {
	t, ok := countryTariffs[country]
	return t, ok
}

// CountryNames returns all supported countries in alphabetical order.
func CountryNames() []string {
	names := make([]string, len(countryNames))
	copy(names, countryNames)
	return names
}
