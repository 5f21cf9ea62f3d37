// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jstrftime formats Jalali date/times using a strftime-like
// pattern language with Jalali weekday and month names in English or
// Persian. The supported tokens follow those of libjalali's strftime
// with a small number of Persian extras.
package jstrftime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/jalali"
)

// Options control name language and digit rendering. Lang selects
// which name table is used; the calendar fields and weekday convention
// are always Jalali regardless of language.
type Options struct {
	Lang        jalali.Language
	FarsiDigits bool
}

type state struct {
	date       jalali.CalendarDate
	wday       jalali.Weekday
	hour       int
	minute     int
	second     int
	lang       jalali.Language
	zoneName   string
	zoneOffset int
}

type resolver func(st *state) string

type token struct {
	text    string
	resolve resolver
}

// The token table is ordered by descending token length so that the
// single left-to-right scan in Format always matches the longest
// applicable token at each position and a short token can never
// partially consume a longer one's text.
var tokens []token

func init() {
	tokens = []token{
		{"%Y", func(st *state) string { return fmt.Sprintf("%04d", st.date.Year) }},
		{"%m", func(st *state) string { return fmt.Sprintf("%02d", st.date.Month) }},
		{"%d", func(st *state) string { return fmt.Sprintf("%02d", st.date.Day) }},
		{"%H", func(st *state) string { return fmt.Sprintf("%02d", st.hour) }},
		{"%M", func(st *state) string { return fmt.Sprintf("%02d", st.minute) }},
		{"%S", func(st *state) string { return fmt.Sprintf("%02d", st.second) }},
		{"%a", func(st *state) string { return st.wday.Abbrev(st.lang) }},
		{"%A", func(st *state) string { return st.wday.Name(st.lang) }},
		{"%b", func(st *state) string { return st.date.Month.Abbrev(st.lang) }},
		{"%B", func(st *state) string { return st.date.Month.Name(st.lang) }},
		{"%j", func(st *state) string { return fmt.Sprintf("%03d", st.date.DayOfYear()+1) }},
		{"%u", func(st *state) string { return strconv.Itoa(int(st.wday) + 1) }},
		{"%w", func(st *state) string { return strconv.Itoa(int(st.wday)) }},
		{"%z", (*state).offset},
		{"%Z", func(st *state) string { return st.zoneName }},
		{"%D", func(st *state) string { return fmt.Sprintf("%d/%02d/%02d", st.date.Year, st.date.Month, st.date.Day) }},
		{"%F", func(st *state) string { return fmt.Sprintf("%d-%02d-%02d", st.date.Year, st.date.Month, st.date.Day) }},
		{"%T", (*state).clock},
		{"%R", func(st *state) string { return fmt.Sprintf("%02d:%02d", st.hour, st.minute) }},
		{"%x", func(st *state) string { return fmt.Sprintf("%02d/%02d/%d", st.date.Day, st.date.Month, st.date.Year) }},
		{"%X", (*state).clock},
		{"%c", func(st *state) string {
			return fmt.Sprintf("%s %s %02d %s %s %d",
				st.wday.Abbrev(st.lang), st.date.Month.Abbrev(st.lang), st.date.Day,
				st.clock(), st.zoneName, st.date.Year)
		}},
		{"%p", func(st *state) string { return st.meridiem("AM", "PM") }},
		{"%P", func(st *state) string { return st.meridiem("am", "pm") }},
		{"%O", func(st *state) string { return st.meridiem("ق.ظ", "ب.ظ") }},
		// Persian extras: always the Persian tables, whatever Lang says.
		{"%g", func(st *state) string { return st.wday.Abbrev(jalali.Farsi) }},
		{"%G", func(st *state) string { return st.wday.Name(jalali.Farsi) }},
		{"%v", func(st *state) string { return st.date.Month.Abbrev(jalali.Farsi) }},
		{"%V", func(st *state) string { return st.date.Month.Name(jalali.Farsi) }},
		{"%W", func(st *state) string {
			return fmt.Sprintf("%s/%s/%s",
				jalali.FarsiDigits(strconv.Itoa(st.date.Year)),
				jalali.FarsiDigits(fmt.Sprintf("%02d", st.date.Month)),
				jalali.FarsiDigits(fmt.Sprintf("%02d", st.date.Day)))
		}},
		{"%E", (*state).narrative},
		{"%%", func(*state) string { return "%" }},
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i].text) > len(tokens[j].text)
	})
}

func (st *state) clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", st.hour, st.minute, st.second)
}

func (st *state) meridiem(am, pm string) string {
	if st.hour < 12 {
		return am
	}
	return pm
}

func (st *state) offset() string {
	sign := "+"
	total := st.zoneOffset / 60
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%02d%02d", sign, total/60, total%60)
}

// narrative renders the full Persian line, for example
// "سه‌شنبه ۱۷ خرداد ۱۳۹۰، ساعت ۰۸:۱۹:۲۳ - IRDT".
func (st *state) narrative() string {
	zone := st.zoneName
	if zone == "" {
		zone = "UTC"
	}
	return fmt.Sprintf("%s %s %s %s، ساعت %s - %s",
		st.wday.Name(jalali.Farsi),
		jalali.FarsiDigits(strconv.Itoa(st.date.Day)),
		st.date.Month.Name(jalali.Farsi),
		jalali.FarsiDigits(strconv.Itoa(st.date.Year)),
		jalali.FarsiDigits(st.clock()),
		zone)
}

// Format renders pattern for the supplied Jalali date/time. Tokens are
// substituted in a single non-recursive pass: replacement text is never
// rescanned, and any literal text, including unrecognized %-sequences,
// passes through unchanged. When Options.FarsiDigits is set, every
// ASCII digit in the final string, literal text included, is remapped
// to Persian digits after all substitution has completed.
//
// When t carries no zone the host's local zone name and its current
// offset are used; the offset is an approximation for instants at which
// a different offset was in effect.
func Format(pattern string, t jalali.Time, opts Options) string {
	st := &state{
		date:   t.Date,
		wday:   t.Date.Weekday(),
		hour:   t.TimeOfDay.Hour(),
		minute: t.TimeOfDay.Minute(),
		second: t.TimeOfDay.Second(),
		lang:   opts.Lang,
	}
	if t.Zone != nil {
		st.zoneName, st.zoneOffset = t.Zone.Name, t.Zone.Offset
	} else {
		st.zoneName, st.zoneOffset = time.Now().Zone()
	}

	out := &strings.Builder{}
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.text) {
				out.WriteString(tok.resolve(st))
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(pattern[i])
			i++
		}
	}
	if opts.FarsiDigits {
		return jalali.FarsiDigits(out.String())
	}
	return out.String()
}
