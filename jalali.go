// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jalali provides support for working with Jalali (Solar Hijri)
// civil dates and for converting them to and from Gregorian dates.
// The Gregorian flavor of a civil date is datetime.CalendarDate from
// cloudeng.io/datetime; the two calendars are never mixed implicitly,
// conversion is always explicit.
//
// The conversion arithmetic follows the widely used jalaali-js algorithm
// with its fixed 79 day offset between the two calendars' day-count
// origins. It is exact for the modern civil calendar; proleptic use
// before 1925 is out of scope.
package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

var (
	// ErrInvalidDate is returned for a month outside 1..12 or a day
	// outside the valid range for its month and year.
	ErrInvalidDate = errors.New("invalid date")
	// ErrMalformedInput is returned for a date literal that is not in
	// the expected textual form.
	ErrMalformedInput = errors.New("malformed input")
)

// Month represents a Jalali month, Farvardin is 1.
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordaad
	Tir
	Mordaad
	Shahrivar
	Mehr
	Aabaan
	Aazar
	Dey
	Bahman
	Esfand
)

func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return fmt.Sprintf("month(%d)", int(m))
	}
	return monthsEN[m-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: invalid month: %d", ErrInvalidDate, n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Far" to "Esf" or any
// longer prefix of "Farvardin" to "Esfand" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("%w: invalid month: %q", ErrMalformedInput, val)
	}
	for i := range monthsEN {
		if strings.HasPrefix(strings.ToLower(monthsEN[i]), lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: invalid month: %q", ErrMalformedInput, val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// Weekday represents a day of the Jalali week, Shanbeh (Saturday) is 0
// and Jomeh (Friday) is 6. This is distinct from both time.Weekday
// (Sunday is 0) and the ISO convention (Monday is 0); use the From
// functions to remap at the boundary.
type Weekday int

const (
	Shanbeh Weekday = iota
	YekShanbeh
	DoShanbeh
	SehShanbeh
	ChahaarShanbeh
	PanjShanbeh
	Jomeh
)

func (w Weekday) String() string {
	if w < Shanbeh || w > Jomeh {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return daysEN[w]
}

// WeekdayFromMondayZero remaps a Monday-zero weekday number, as used
// by ISO 8601 and many host libraries, to the Saturday-zero Jalali
// convention.
func WeekdayFromMondayZero(wd int) Weekday {
	return Weekday((wd + 2) % 7)
}

// WeekdayFromTime remaps a time.Weekday (Sunday-zero) to the
// Saturday-zero Jalali convention.
func WeekdayFromTime(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 1) % 7)
}

// CalendarDate represents a Jalali date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a validated CalendarDate. The month must be
// in 1..12 and the day within the days of that month for that year,
// otherwise an error that satisfies errors.Is(err, ErrInvalidDate) is
// returned. Out of range days are never clamped.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	dm, err := DaysInMonth(year, month)
	if err != nil {
		return CalendarDate{}, err
	}
	if day < 1 || day > dm {
		return CalendarDate{}, fmt.Errorf("%w: invalid day for %v %v: %d", ErrInvalidDate, month, year, day)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", cd.Year, cd.Month, cd.Day)
}

// Parse parses a Jalali date in the fixed 'YYYY/MM/DD' form with error
// checking for valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(strings.TrimSpace(val), "/")
	if len(parts) != 3 {
		return fmt.Errorf("%w: %q, expected YYYY/MM/DD", ErrMalformedInput, val)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("%w: %q, expected YYYY/MM/DD", ErrMalformedInput, val)
		}
		nums[i] = n
	}
	date, err := NewCalendarDate(nums[0], Month(nums[1]), nums[2])
	if err != nil {
		return err
	}
	*cd = date
	return nil
}

// ParseGregorianDate parses a Gregorian date in the fixed 'YYYY/MM/DD'
// form with error checking for valid month and day.
func ParseGregorianDate(val string) (datetime.CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(val), "/")
	if len(parts) != 3 {
		return datetime.CalendarDate(0), fmt.Errorf("%w: %q, expected YYYY/MM/DD", ErrMalformedInput, val)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return datetime.CalendarDate(0), fmt.Errorf("%w: %q, expected YYYY/MM/DD", ErrMalformedInput, val)
		}
		nums[i] = n
	}
	if err := validGregorian(nums[0], datetime.Month(nums[1]), nums[2]); err != nil {
		return datetime.CalendarDate(0), err
	}
	return datetime.NewCalendarDate(nums[0], datetime.Month(nums[1]), nums[2]), nil
}

func validGregorian(year int, month datetime.Month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid month: %d", ErrInvalidDate, month)
	}
	if day < 1 || day > int(datetime.DaysInMonth(year, month)) {
		return fmt.Errorf("%w: invalid day for %v %v: %d", ErrInvalidDate, time.Month(month), year, day)
	}
	return nil
}

// FromGregorian converts a Gregorian date to the corresponding Jalali
// date. The Gregorian date is validated before conversion.
func FromGregorian(gd datetime.CalendarDate) (CalendarDate, error) {
	if err := validGregorian(gd.Year(), gd.Month(), gd.Day()); err != nil {
		return CalendarDate{}, err
	}
	jy, jm, jd := gregorianToJalali(gd.Year(), int(gd.Month()), gd.Day())
	return CalendarDate{Year: jy, Month: Month(jm), Day: jd}, nil
}

// Gregorian converts a Jalali date to the corresponding Gregorian date.
// The Jalali date is validated before conversion; the round trip
// through FromGregorian is lossless for every valid Jalali date.
func (cd CalendarDate) Gregorian() (datetime.CalendarDate, error) {
	dm, err := DaysInMonth(cd.Year, cd.Month)
	if err != nil {
		return datetime.CalendarDate(0), err
	}
	if cd.Day < 1 || cd.Day > dm {
		return datetime.CalendarDate(0), fmt.Errorf("%w: invalid day for %v %v: %d", ErrInvalidDate, cd.Month, cd.Year, cd.Day)
	}
	gy, gm, gd := jalaliToGregorian(cd.Year, int(cd.Month), cd.Day)
	return datetime.NewCalendarDate(gy, datetime.Month(gm), gd), nil
}

// IsLeap returns true if the specified Jalali year is a leap year, that
// is, if its 12th month (Esfand) has 30 days. The test is derived from
// the conversion itself rather than an independent arithmetic rule:
// Esfand 30 exists iff converting it to Gregorian and back round-trips.
// A failed probe is a normal negative result, never an error, so
// leap-ness and convertibility can never disagree.
func IsLeap(year int) bool {
	gy, gm, gd := jalaliToGregorian(year, 12, 30)
	jy, jm, jd := gregorianToJalali(gy, gm, gd)
	return jy == year && jm == 12 && jd == 30
}

// DaysInMonth returns the number of days in the given Jalali month:
// 31 for months 1-6, 30 for months 7-11 and 30 or 29 for Esfand
// depending on whether the year is a leap year.
func DaysInMonth(year int, month Month) (int, error) {
	switch {
	case month < Farvardin || month > Esfand:
		return 0, fmt.Errorf("%w: month out of range: %d", ErrInvalidDate, int(month))
	case month <= Shahrivar:
		return 31, nil
	case month <= Bahman:
		return 30, nil
	}
	if IsLeap(year) {
		return 30, nil
	}
	return 29, nil
}

// DayOfYear returns the zero based day of the year for the date,
// 0 for Farvardin 1 through 364, or 365 in a leap year, for the last
// day of Esfand.
func (cd CalendarDate) DayOfYear() int {
	if cd.Month <= Shahrivar {
		return int(cd.Month-1)*31 + cd.Day - 1
	}
	return 186 + int(cd.Month-Mehr)*30 + cd.Day - 1
}

// Weekday returns the Jalali weekday for the date.
func (cd CalendarDate) Weekday() Weekday {
	gy, gm, gd := jalaliToGregorian(cd.Year, int(cd.Month), cd.Day)
	t := time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)
	return WeekdayFromTime(t.Weekday())
}

// Tomorrow returns the date of the next day. Esfand 29/30 wraps to
// Farvardin 1 of the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	dm, err := DaysInMonth(cd.Year, cd.Month)
	if err != nil {
		return cd
	}
	if cd.Day >= dm {
		if cd.Month == Esfand {
			return CalendarDate{Year: cd.Year + 1, Month: Farvardin, Day: 1}
		}
		return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
	}
	cd.Day++
	return cd
}

// Yesterday returns the date of the previous day. Farvardin 1 wraps to
// the last day of Esfand of the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Day > 1 {
		cd.Day--
		return cd
	}
	if cd.Month == Farvardin {
		dm, _ := DaysInMonth(cd.Year-1, Esfand)
		return CalendarDate{Year: cd.Year - 1, Month: Esfand, Day: dm}
	}
	dm, _ := DaysInMonth(cd.Year, cd.Month-1)
	return CalendarDate{Year: cd.Year, Month: cd.Month - 1, Day: dm}
}

// Gregorian month lengths for a non-leap year. February's extra leap
// day is accounted for separately using the Gregorian leap rule from
// cloudeng.io/datetime.
var gregMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gregorianToJalali(gy, gm, gd int) (int, int, int) {
	gy2 := gy - 1600
	gDayNo := 365*gy2 + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400
	for i := 0; i < gm-1; i++ {
		gDayNo += gregMonthDays[i]
	}
	if gm > 2 && datetime.IsLeap(gy) {
		gDayNo++
	}
	gDayNo += gd - 1

	jDayNo := gDayNo - 79
	jNp := jDayNo / 12053 // 33 year cycles
	jDayNo %= 12053
	jy := 979 + 33*jNp + 4*(jDayNo/1461) // 4 year cycles
	jDayNo %= 1461
	if jDayNo >= 366 {
		jy += (jDayNo - 1) / 365
		jDayNo = (jDayNo - 1) % 365
	}
	if jDayNo < 186 {
		return jy, jDayNo/31 + 1, jDayNo%31 + 1
	}
	return jy, (jDayNo-186)/30 + 7, (jDayNo-186)%30 + 1
}

func jalaliToGregorian(jy, jm, jd int) (int, int, int) {
	jy2 := jy - 979
	jDayNo := 365*jy2 + (jy2/33)*8 + (jy2%33+3)/4
	for i := 0; i < jm-1; i++ {
		if i < 6 {
			jDayNo += 31
		} else {
			jDayNo += 30
		}
	}
	jDayNo += jd - 1

	gDayNo := jDayNo + 79
	gy := 1600 + 400*(gDayNo/146097) // 400 year cycles
	gDayNo %= 146097
	leap := true
	if gDayNo >= 36525 { // 36525 days in the first century of a cycle
		gDayNo--
		gy += 100 * (gDayNo / 36524)
		gDayNo %= 36524
		if gDayNo >= 365 {
			gDayNo++
		} else {
			leap = false
		}
	}
	gy += 4 * (gDayNo / 1461)
	gDayNo %= 1461
	if gDayNo >= 366 {
		leap = false
		gDayNo--
		gy += gDayNo / 365
		gDayNo %= 365
	}
	gm := 0
	for gm < 12 {
		md := gregMonthDays[gm]
		if gm == 1 && leap {
			md = 29
		}
		if gDayNo < md {
			break
		}
		gDayNo -= md
		gm++
	}
	return gy, gm + 1, gDayNo + 1
}
