// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strings"
)

// Language selects the name tables used when rendering weekday and
// month names. It never affects which calendar fields are used, only
// which table is indexed.
type Language string

const (
	// English names, e.g. "Khordaad", "Tuesday".
	English Language = "en"
	// Persian names in Persian script.
	Farsi Language = "fa"
	// Persian weekday names in Latin transliteration, e.g. "Seh-Shanbeh".
	// Month names remain the Latin forms.
	FarsiLatin Language = "fa-lat"
)

// Parse parses one of "en", "fa" or "fa-lat".
func (l *Language) Parse(val string) error {
	switch Language(val) {
	case English, Farsi, FarsiLatin:
		*l = Language(val)
		return nil
	}
	return fmt.Errorf("%w: invalid language %q, expected en, fa or fa-lat", ErrMalformedInput, val)
}

var monthsEN = [12]string{
	"Farvardin", "Ordibehesht", "Khordaad", "Tir", "Mordaad", "Shahrivar",
	"Mehr", "Aabaan", "Aazar", "Dey", "Bahman", "Esfand",
}

var monthsFA = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

var monthsAbbrevEN = [12]string{
	"Far", "Ord", "Kho", "Tir", "Mor", "Sha", "Meh", "Aba", "Aza", "Dey", "Bah", "Esf",
}

var monthsAbbrevFA = [12]string{
	"فرو", "ارد", "خرد", "تیر", "مرد", "شهر", "مهر", "آبا", "آذر", "دی", "بهم", "اسف",
}

var daysEN = [7]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

var daysAbbrevEN = [7]string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}
var daysShortEN = [7]string{"Sa", "Su", "Mo", "Tu", "We", "Th", "Fr"}

var daysFA = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

var daysAbbrevFA = [7]string{"شنب", "یکش", "دوش", "سهش", "چها", "پنج", "جمع"}
var daysShortFA = [7]string{"شن", "یک", "دو", "سه", "چه", "پن", "جم"}

var daysFALat = [7]string{
	"Shanbeh", "Yek-Shanbeh", "Do-Shanbeh", "Seh-Shanbeh", "Chahaar-Shanbeh", "Panj-Shanbeh", "Jomeh",
}

var daysAbbrevFALat = [7]string{"Sha", "Yek", "Dos", "Ses", "Cha", "Pan", "Jom"}

// Name returns the month name in the requested language. FarsiLatin
// uses the Latin month names.
func (m Month) Name(lang Language) string {
	if m < Farvardin || m > Esfand {
		return m.String()
	}
	if lang == Farsi {
		return monthsFA[m-1]
	}
	return monthsEN[m-1]
}

// Abbrev returns the 3 character month abbreviation in the requested
// language.
func (m Month) Abbrev(lang Language) string {
	if m < Farvardin || m > Esfand {
		return m.String()
	}
	if lang == Farsi {
		return monthsAbbrevFA[m-1]
	}
	return monthsAbbrevEN[m-1]
}

// Name returns the full weekday name in the requested language.
func (w Weekday) Name(lang Language) string {
	if w < Shanbeh || w > Jomeh {
		return w.String()
	}
	switch lang {
	case Farsi:
		return daysFA[w]
	case FarsiLatin:
		return daysFALat[w]
	}
	return daysEN[w]
}

// Abbrev returns the 3 character weekday abbreviation in the requested
// language.
func (w Weekday) Abbrev(lang Language) string {
	if w < Shanbeh || w > Jomeh {
		return w.String()
	}
	switch lang {
	case Farsi:
		return daysAbbrevFA[w]
	case FarsiLatin:
		return daysAbbrevFALat[w]
	}
	return daysAbbrevEN[w]
}

// Short returns the 2 character weekday abbreviation in the requested
// language. FarsiLatin has no 2 character forms and uses the 3
// character abbreviations.
func (w Weekday) Short(lang Language) string {
	if w < Shanbeh || w > Jomeh {
		return w.String()
	}
	switch lang {
	case Farsi:
		return daysShortFA[w]
	case FarsiLatin:
		return daysAbbrevFALat[w]
	}
	return daysShortEN[w]
}

var farsiDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// FarsiDigits returns s with every ASCII digit replaced by the
// corresponding Persian digit glyph. All other characters are returned
// unchanged, so the function is the identity on strings without ASCII
// digits.
func FarsiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return farsiDigits[r-'0']
		}
		return r
	}, s)
}
