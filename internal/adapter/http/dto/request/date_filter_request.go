package request

import (
	"strconv"
	"strings"
	"time"

	"garagemate/internal/domain/entities"
)

// ParseDateFilter builds a DateFilter from the date/month/year query
// parameters. date is "2006-01-02" and wins over month/year.
func ParseDateFilter(date, month, year string) (entities.DateFilter, error) {
	var f entities.DateFilter

	if d := strings.TrimSpace(date); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return entities.DateFilter{}, ErrInvalidDateField
		}
		f.Date = &t
		return f, nil
	}

	if y := strings.TrimSpace(year); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil || n <= 0 {
			return entities.DateFilter{}, ErrInvalidDateField
		}
		f.Year = n
	}
	if m := strings.TrimSpace(month); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 || f.Year == 0 {
			return entities.DateFilter{}, ErrInvalidDateField
		}
		f.Month = n
	}
	return f, nil
}
