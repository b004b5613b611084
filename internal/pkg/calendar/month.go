package calendar

import (
	"strconv"
	"time"
)

var monthNames = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthName returns the French month name, or "" when month is out of range.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNames[month-1]
}

// MonthTitle renders "<Month> <Year>", e.g. "Février 2024".
func MonthTitle(year int, month time.Month) string {
	return MonthName(month) + " " + strconv.Itoa(year)
}
