package calendar

import "time"

// WeekStart returns the Monday of the week containing d.
func WeekStart(d Date) Date {
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return d.AddDays(-(weekday - 1))
}

// WeekdayIndex returns the position of d inside its week, Monday=0 .. Sunday=6.
func WeekdayIndex(d Date) int {
	return (int(d.Weekday()) + 6) % 7
}

// WeekNumber counts Monday-aligned weeks from January 1st of d's year.
// The week holding January 1st is week 1 and every Monday opens the next one.
// This is not the ISO-8601 week-of-year: early January dates are never
// attributed to the previous year's last week.
func WeekNumber(d Date) int {
	jan1 := midnight(d.Year(), time.January, 1)
	return (d.YearDay()-1+WeekdayIndex(jan1))/7 + 1
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// InclusiveDayCount returns the number of calendar days from start to end,
// both included. It is at least 1 whenever start <= end.
func InclusiveDayCount(start, end Date) int {
	return int(end.ordinal()-start.ordinal()) + 1
}
