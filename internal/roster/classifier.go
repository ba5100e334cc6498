package roster

import "time"

// NormalizeDate strips the time-of-day and zone from t, keeping only the
// calendar date. All day arithmetic in this package goes through it so that
// DST transitions and client timezones never shift a day's classification.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of calendar days from pivot to
// target, negative when target precedes pivot. Both sides are normalized to
// UTC midnight first, so the difference is always an exact multiple of 24h.
func daysBetween(pivot, target time.Time) int {
	return int(NormalizeDate(target).Sub(NormalizeDate(pivot)).Hours() / 24)
}

// Classify returns the baseline status for target under the given family.
// It is a total function: every (family, pivot, target) triple classifies,
// and FamilyUnknown yields StatusWork for every day.
func Classify(family Family, pivot, target time.Time) Status {
	switch family {
	case FamilySegASex:
		wd := target.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return StatusOff
		}
		return StatusWork
	case FamilySegASab:
		if target.Weekday() == time.Sunday {
			return StatusOff
		}
		return StatusWork
	case FamilyTwelveThirtySixPar:
		// calendar-anchored: the pivot plays no role
		if target.Day()%2 == 0 {
			return StatusWork
		}
		return StatusOff
	case FamilyTwelveThirtySixImpar:
		if target.Day()%2 == 1 {
			return StatusWork
		}
		return StatusOff
	}

	rot, ok := rotations[family]
	if !ok {
		// FamilyUnknown: unrecognized labels default every day to work
		return StatusWork
	}

	elapsed := daysBetween(pivot, target)
	// Go's % truncates toward zero, so dates before the pivot would yield a
	// negative position without the correction below.
	pos := ((elapsed % rot.cycleLength) + rot.cycleLength) % rot.cycleLength
	if pos >= rot.workDays {
		return StatusOff
	}
	return StatusWork
}

// ClassifyLabel parses the label and classifies in one step. Callers that
// classify many days should parse once with ParseLabel and use Classify.
func ClassifyLabel(label string, pivot, target time.Time) Status {
	return Classify(ParseLabel(label), pivot, target)
}

// MonthDays lists every day of the given month in ascending order, one value
// per calendar day at midnight in loc.
func MonthDays(year int, month time.Month, loc *time.Location) []time.Time {
	days := make([]time.Time, 0, 31)
	for d := time.Date(year, month, 1, 0, 0, 0, 0, loc); d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
