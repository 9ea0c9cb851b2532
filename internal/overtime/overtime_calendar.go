package overtime

import "time"

// Fixed statutory holidays (month, day): New Year, Independence Day,
// Labor Day, Assumption.
var statutoryHolidays = [][2]int{
	{1, 1},
	{4, 4},
	{5, 1},
	{8, 15},
}

// IsNightInterval reports whether a work interval counts as night work: the
// surcharge applies when its start or end falls inside [22:00, 06:00),
// wrapping midnight.
func (s *service) IsNightInterval(start, end time.Time) bool {
	return inNightWindow(start) || inNightWindow(end)
}

func inNightWindow(t time.Time) bool {
	h := t.Hour()
	return h >= 22 || h < 6
}

// IsHoliday reports whether the day is a statutory holiday, either from the
// fixed civil calendar or from the configured per-year movable dates.
func (s *service) IsHoliday(day time.Time) bool {
	for _, h := range statutoryHolidays {
		if int(day.Month()) == h[0] && day.Day() == h[1] {
			return true
		}
	}
	for _, extra := range s.cfg.ExtraHolidays {
		if day.Year() == extra.Year() && day.Month() == extra.Month() && day.Day() == extra.Day() {
			return true
		}
	}
	return false
}
