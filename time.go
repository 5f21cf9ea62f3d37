// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"time"

	"cloudeng.io/datetime"
)

// Zone represents a resolved time zone as a display name and a fixed
// UTC offset in seconds east. Zone resolution is always performed
// externally, typically via time.LoadLocation; the core packages only
// carry the result around.
type Zone struct {
	Name   string
	Offset int
}

// Time represents a Jalali civil date and time of day with an optional
// resolved time zone. Derived values such as the weekday or day of year
// are computed on demand from the date, never cached.
//
// A nil Zone means no zone was attached; formatting then falls back to
// the host's local zone name and its offset at the time of formatting.
// The fallback offset is the current one, not the offset in effect at
// the represented instant.
type Time struct {
	Date      CalendarDate
	TimeOfDay datetime.TimeOfDay
	Zone      *Zone
}

// FromTime converts a time.Time to the equivalent Jalali Time, carrying
// the zone name and offset in effect at that instant.
func FromTime(t time.Time) Time {
	jy, jm, jd := gregorianToJalali(t.Year(), int(t.Month()), t.Day())
	name, offset := t.Zone()
	return Time{
		Date:      CalendarDate{Year: jy, Month: Month(jm), Day: jd},
		TimeOfDay: datetime.NewTimeOfDay(t.Hour(), t.Minute(), t.Second()),
		Zone:      &Zone{Name: name, Offset: offset},
	}
}

// GoTime returns the time.Time for the Jalali civil date and time of
// day in the supplied location, which defaults to time.Local when nil.
// The date is validated as for Gregorian.
func (t Time) GoTime(loc *time.Location) (time.Time, error) {
	gd, err := t.Date.Gregorian()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(gd.Year(), time.Month(gd.Month()), gd.Day(),
		t.TimeOfDay.Hour(), t.TimeOfDay.Minute(), t.TimeOfDay.Second(), 0, loc), nil
}
