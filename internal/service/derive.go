package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aphrc/internship-tracker/internal/models"
)

// DurationMonths is the calendar-month difference between start and end. It is
// zero when either date is unset and negative when end precedes start.
func DurationMonths(start, end models.Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with the largest unit up to GB, using at
// most two decimals.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	unit := 0
	divisor := int64(1)
	for unit < len(fileSizeUnits)-1 && bytes >= divisor*1024 {
		divisor *= 1024
		unit++
	}
	value := float64(bytes) / float64(divisor)
	rounded := strconv.FormatFloat(roundTo(value, 2), 'f', -1, 64)
	return fmt.Sprintf("%s %s", rounded, fileSizeUnits[unit])
}

func roundTo(value float64, places int) float64 {
	parsed, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return parsed
}

// CurrentWeekAnchor returns the Monday of the week containing today.
func CurrentWeekAnchor(today time.Time) models.Date {
	day := models.DateOf(today)
	offset := (int(day.Weekday()) + 6) % 7
	return models.Date{Time: day.AddDate(0, 0, -offset)}
}
