package transform

import "time"

// j2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00).
const j2000 = 2451545.0

const secondsPerDay = 86400.0

// Epoch is a civil UTC date/time. Fields are not range checked; out-of-range
// values flow straight into the arithmetic.
type Epoch struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

// EpochFromTime converts t to an Epoch in UTC, carrying nanoseconds into Second.
func EpochFromTime(t time.Time) Epoch {
	t = t.UTC()
	return Epoch{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// JulianDateFraction returns the Julian date of the epoch, including the time of day.
func (e Epoch) JulianDateFraction() float64 {
	return JulianDateFraction(e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second)
}

// julianDayNumber is the integer Julian day number of the given Gregorian date,
// valid for dates after November 23, 4714 BC.
//
// All divisions truncate toward zero. Switching to floored division shifts the
// result by a day whenever (month-14)/12 is negative, i.e. for every month
// before March.
func julianDayNumber(year, month, day int) int {
	a := (month - 14) / 12
	return day - 32075 +
		1461*(year+4800+a)/4 +
		367*(month-2-a*12)/12 -
		3*((year+4900+a)/100)/4
}

// JulianDateFraction converts a civil UTC date/time to a Julian date.
//
// The day number is shifted back half a day so that it falls on the preceding
// midnight, then the fraction of the day elapsed is added.
func JulianDateFraction(year, month, day, hour, minute int, second float64) float64 {
	jdMidnight := float64(julianDayNumber(year, month, day)) - 0.5
	dayFrac := (second + 60*(float64(minute)+60*float64(hour))) / secondsPerDay
	return jdMidnight + dayFrac
}

// JulianDate converts a time.Time to a Julian date.
func JulianDate(t time.Time) float64 {
	return EpochFromTime(t).JulianDateFraction()
}
