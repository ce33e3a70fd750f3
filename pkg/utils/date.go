package utils

import "time"

// ParseDate lê uma data YYYY-MM-DD no fuso local. String vazia retorna a data zero.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.ParseInLocation(time.DateOnly, dateStr, time.Local)
}
