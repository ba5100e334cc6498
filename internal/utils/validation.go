package utils

import (
	"fmt"
	"time"
)

// ParseMonth parses a YYYY-MM query value into its year and month.
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("mês inválido %q, use o formato AAAA-MM", value)
	}
	return t.Year(), t.Month(), nil
}
