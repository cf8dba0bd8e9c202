package utils

import (
	"carehome-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// YearOf returns the calendar year of a YYYY-MM-DD or RFC3339 date string.
func YearOf(date string) (int, error) {
	date = strings.TrimSpace(date)
	if parsed, err := time.Parse(time.DateOnly, date); err == nil {
		return parsed.Year(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, date); err == nil {
		return parsed.Year(), nil
	}
	if len(date) >= 4 {
		return strconv.Atoi(date[:4])
	}
	return 0, strconv.ErrSyntax
}

// YearLabel renders a grouping year, naming the unknown year group.
func YearLabel(year int) string {
	if year == constvars.UnknownYear {
		return constvars.UnknownYearLabel
	}
	return strconv.Itoa(year)
}
