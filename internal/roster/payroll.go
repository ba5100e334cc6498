package roster

import "strings"

// NightShiftMonthlyHours is the flat monthly night-hours figure payroll
// assumes for night 12x36 postos. It is an agreed constant and is not derived
// from the projected roster, so a month with overrides still pays 120 hours.
const NightShiftMonthlyHours = 120

// EstimateNightShiftHours returns the assumed monthly night-shift hours for a
// schedule label: the flat constant for night 12x36 labels, zero otherwise.
func EstimateNightShiftHours(label string) int {
	switch ParseLabel(label) {
	case FamilyTwelveThirtySix, FamilyTwelveThirtySixPar, FamilyTwelveThirtySixImpar:
	default:
		return 0
	}

	norm := normalizeLabel(label)
	if strings.Contains(norm, "noturn") || strings.Contains(norm, "night") {
		return NightShiftMonthlyHours
	}
	return 0
}
