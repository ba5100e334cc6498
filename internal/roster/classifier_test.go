package roster_test

import (
	"testing"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/roster"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseLabel(t *testing.T) {
	cases := []struct {
		label string
		want  roster.Family
	}{
		{"Seg a Sex", roster.FamilySegASex},
		{"SEG A SEX", roster.FamilySegASex},
		{"seg  a  sex (diurno)", roster.FamilySegASex},
		{"Mon to Fri", roster.FamilySegASex},
		{"Seg a Sab", roster.FamilySegASab},
		{"Seg a Sáb", roster.FamilySegASab},
		{"12x36", roster.FamilyTwelveThirtySix},
		{"12X36 Noturno", roster.FamilyTwelveThirtySix},
		{"12x36 Par", roster.FamilyTwelveThirtySixPar},
		{"12x36 Impar", roster.FamilyTwelveThirtySixImpar},
		{"12x36 Ímpar", roster.FamilyTwelveThirtySixImpar},
		{"Escala 5x1", roster.FamilyFiveByOne},
		{"6x1", roster.FamilySixByOne},
		{"5x2", roster.FamilyFiveByTwo},
		{"4x2", roster.FamilyFourByTwo},
		{"XYZ-UNKNOWN", roster.FamilyUnknown},
		{"", roster.FamilyUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, roster.ParseLabel(tc.label))
		})
	}
}

func TestClassify_PivotDayIsAlwaysWork(t *testing.T) {
	// Position 0 of every offset-anchored cycle is a work day: the rotation
	// starts working on the assignment start date.
	pivot := date(2024, time.March, 15)

	for _, family := range []roster.Family{
		roster.FamilyTwelveThirtySix,
		roster.FamilyFiveByOne,
		roster.FamilySixByOne,
		roster.FamilyFiveByTwo,
		roster.FamilyFourByTwo,
	} {
		assert.Equal(t, roster.StatusWork, roster.Classify(family, pivot, pivot),
			"family %s should work on the pivot itself", family)
	}
}

func TestClassify_Periodicity(t *testing.T) {
	pivot := date(2024, time.January, 10)

	cycleLengths := map[roster.Family]int{
		roster.FamilyTwelveThirtySix: 2,
		roster.FamilyFiveByOne:       6,
		roster.FamilySixByOne:        7,
		roster.FamilyFiveByTwo:       7,
		roster.FamilyFourByTwo:       6,
	}

	for family, cycle := range cycleLengths {
		for offset := -10; offset <= 40; offset++ {
			d := pivot.AddDate(0, 0, offset)
			assert.Equal(t,
				roster.Classify(family, pivot, d),
				roster.Classify(family, pivot, d.AddDate(0, 0, cycle)),
				"family %s should repeat every %d days (offset %d)", family, cycle, offset)
		}
	}
}

func TestClassify_TwelveThirtySix_BeforePivot(t *testing.T) {
	// Dates before the pivot produce negative elapsed days; the corrected
	// modulo must keep the alternation intact instead of going negative.
	pivot := date(2024, time.January, 10)

	assert.Equal(t, roster.StatusOff, roster.Classify(roster.FamilyTwelveThirtySix, pivot, date(2024, time.January, 9)))
	assert.Equal(t, roster.StatusWork, roster.Classify(roster.FamilyTwelveThirtySix, pivot, date(2024, time.January, 8)))
	assert.Equal(t, roster.StatusOff, roster.Classify(roster.FamilyTwelveThirtySix, pivot, date(2024, time.January, 7)))
}

func TestClassify_SegASex_WeekdaysOnly(t *testing.T) {
	// Pivot is irrelevant for fixed weekly families; pick an arbitrary one.
	pivot := date(2020, time.June, 1)

	// 2024-04-01 is a Monday
	monday := date(2024, time.April, 1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, roster.StatusWork, roster.Classify(roster.FamilySegASex, pivot, monday.AddDate(0, 0, i)))
	}
	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)
	assert.Equal(t, roster.StatusOff, roster.Classify(roster.FamilySegASex, pivot, saturday))
	assert.Equal(t, roster.StatusOff, roster.Classify(roster.FamilySegASex, pivot, sunday))
}

func TestClassify_SegASab_OnlySundayOff(t *testing.T) {
	pivot := date(2020, time.June, 1)

	monday := date(2024, time.April, 1)
	for i := 0; i < 6; i++ {
		assert.Equal(t, roster.StatusWork, roster.Classify(roster.FamilySegASab, pivot, monday.AddDate(0, 0, i)))
	}
	sunday := monday.AddDate(0, 0, 6)
	assert.Equal(t, roster.StatusOff, roster.Classify(roster.FamilySegASab, pivot, sunday))
}

func TestClassify_FiveByTwo_CycleShape(t *testing.T) {
	// Over the 7 days starting at the pivot: exactly 5 worked, then the 2 off
	// days consecutive at the tail of the cycle.
	pivot := date(2024, time.May, 6)

	var statuses []roster.Status
	for i := 0; i < 7; i++ {
		statuses = append(statuses, roster.Classify(roster.FamilyFiveByTwo, pivot, pivot.AddDate(0, 0, i)))
	}

	want := []roster.Status{
		roster.StatusWork, roster.StatusWork, roster.StatusWork, roster.StatusWork, roster.StatusWork,
		roster.StatusOff, roster.StatusOff,
	}
	assert.Equal(t, want, statuses)
}

func TestClassify_FourByTwo_CycleShape(t *testing.T) {
	pivot := date(2024, time.May, 6)

	var statuses []roster.Status
	for i := 0; i < 6; i++ {
		statuses = append(statuses, roster.Classify(roster.FamilyFourByTwo, pivot, pivot.AddDate(0, 0, i)))
	}

	want := []roster.Status{
		roster.StatusWork, roster.StatusWork, roster.StatusWork, roster.StatusWork,
		roster.StatusOff, roster.StatusOff,
	}
	assert.Equal(t, want, statuses)
}

func TestClassify_UnknownLabel_AllDaysWork(t *testing.T) {
	pivot := date(2024, time.January, 1)
	family := roster.ParseLabel("XYZ-UNKNOWN")

	for i := 0; i < 30; i++ {
		assert.Equal(t, roster.StatusWork, roster.Classify(family, pivot, pivot.AddDate(0, 0, i)))
	}
}

func TestClassify_TwelveThirtySixPar_February2024(t *testing.T) {
	// Calendar-anchored variant: even days of the month are worked, whatever
	// pivot is supplied. February 2024 is a leap month with 29 days.
	days := roster.MonthDays(2024, time.February, time.UTC)
	assert.Len(t, days, 29)

	for _, pivot := range []time.Time{date(2023, time.July, 3), date(2024, time.February, 14)} {
		for _, d := range days {
			want := roster.StatusOff
			if d.Day()%2 == 0 {
				want = roster.StatusWork
			}
			assert.Equal(t, want, roster.Classify(roster.FamilyTwelveThirtySixPar, pivot, d),
				"day %d with pivot %s", d.Day(), pivot.Format("2006-01-02"))
		}
	}
}

func TestClassify_IgnoresTimeOfDayAndZone(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	pivot := time.Date(2024, time.January, 10, 22, 30, 0, 0, saoPaulo)
	target := time.Date(2024, time.January, 11, 1, 15, 0, 0, saoPaulo)

	// Same calendar days at plain UTC midnights classify identically.
	assert.Equal(t,
		roster.Classify(roster.FamilyTwelveThirtySix, date(2024, time.January, 10), date(2024, time.January, 11)),
		roster.Classify(roster.FamilyTwelveThirtySix, pivot, target))
}

func TestMonthDays(t *testing.T) {
	days := roster.MonthDays(2024, time.February, time.UTC)
	assert.Len(t, days, 29)
	assert.Equal(t, date(2024, time.February, 1), days[0])
	assert.Equal(t, date(2024, time.February, 29), days[28])

	assert.Len(t, roster.MonthDays(2023, time.February, time.UTC), 28)
	assert.Len(t, roster.MonthDays(2024, time.December, time.UTC), 31)
}

func TestEstimateNightShiftHours(t *testing.T) {
	assert.Equal(t, 120, roster.EstimateNightShiftHours("12x36 Noturno"))
	assert.Equal(t, 120, roster.EstimateNightShiftHours("12x36 Noturno Par"))
	assert.Equal(t, 0, roster.EstimateNightShiftHours("12x36"))
	assert.Equal(t, 0, roster.EstimateNightShiftHours("5x2 Noturno"))
	assert.Equal(t, 0, roster.EstimateNightShiftHours("Seg a Sex"))
}
