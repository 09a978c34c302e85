package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ParseDate lê "AAAA-MM-DD" como meia-noite no fuso padrão.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location(DefaultTimezone))
}

// DayRange devolve [início do dia de from, início do dia seguinte a to).
func DayRange(from, to string) (start, end *time.Time) {
	if from != "" {
		if t, err := ParseDate(from); err == nil {
			start = &t
		}
	}
	if to != "" {
		if t, err := ParseDate(to); err == nil {
			next := t.AddDate(0, 0, 1)
			end = &next
		}
	}
	return start, end
}
