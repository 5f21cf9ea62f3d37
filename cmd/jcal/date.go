// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/jstrftime"
)

const defaultPattern = "%a %b %d %H:%M:%S %Z %Y"
const rfc2822Pattern = "%a, %d %b %Y %H:%M:%S %z"

type dateFlags struct {
	LocaleFlags
	TimezoneFlags
	RFC2822     bool   `subcmd:"rfc2822,false,use an RFC 2822 style Jalali format"`
	Date        string `subcmd:"date,,'FORMAT;VALUE pair describing the Jalali date/time to display'"`
	Access      string `subcmd:"access,,display the last access time of the named file"`
	Reference   string `subcmd:"reference,,display the last modification time of the named file"`
	ToJalali    string `subcmd:"to-jalali,,convert a Gregorian YYYY/MM/DD date to Jalali and exit"`
	ToGregorian string `subcmd:"to-gregorian,,convert a Jalali YYYY/MM/DD date to Gregorian and exit"`
}

func dateCmdRunner(_ context.Context, values interface{}, args []string) error {
	cl := values.(*dateFlags)
	lang, err := cl.language()
	if err != nil {
		return err
	}

	// Single-shot conversions print the converted date and nothing else.
	switch {
	case cl.ToJalali != "":
		gd, err := jalali.ParseGregorianDate(cl.ToJalali)
		if err != nil {
			return err
		}
		jd, err := jalali.FromGregorian(gd)
		if err != nil {
			return err
		}
		fmt.Println(jd)
		return nil
	case cl.ToGregorian != "":
		var jd jalali.CalendarDate
		if err := jd.Parse(cl.ToGregorian); err != nil {
			return err
		}
		gd, err := jd.Gregorian()
		if err != nil {
			return err
		}
		fmt.Printf("%04d/%02d/%02d\n", gd.Year(), gd.Month(), gd.Day())
		return nil
	}

	loc, err := cl.location()
	if err != nil {
		return err
	}
	var when time.Time
	switch {
	case cl.Access != "":
		when, err = fileTime(cl.Access, true)
	case cl.Reference != "":
		when, err = fileTime(cl.Reference, false)
	case cl.Date != "":
		when, err = parseFormatValue(cl.Date, loc)
	default:
		when = time.Now()
	}
	if err != nil {
		return err
	}

	pattern := defaultPattern
	switch {
	case cl.RFC2822:
		pattern = rfc2822Pattern
	case len(args) == 1:
		pattern = strings.TrimPrefix(args[0], "+")
	}
	jt := jalali.FromTime(when.In(loc))
	fmt.Println(jstrftime.Format(pattern, jt, jstrftime.Options{Lang: lang, FarsiDigits: cl.FarsiDigits}))
	return nil
}

var digitRuns = regexp.MustCompile(`[0-9]+`)

// parseFormatValue interprets a 'FORMAT;VALUE' pair as a Jalali
// date/time in the given location. The numeric runs of VALUE are
// assigned to the %Y, %m, %d, %H, %M and %S tokens in the order those
// tokens appear in FORMAT; time tokens absent from FORMAT default to
// zero.
func parseFormatValue(spec string, loc *time.Location) (time.Time, error) {
	idx := strings.Index(spec, ";")
	if idx < 0 {
		return time.Time{}, fmt.Errorf("%w: %q: expected ';' between format and value", jalali.ErrMalformedInput, spec)
	}
	format, value := spec[:idx], spec[idx+1:]

	type position struct {
		token string
		index int
	}
	order := []position{}
	for _, tok := range []string{"%Y", "%m", "%d", "%H", "%M", "%S"} {
		if p := strings.Index(format, tok); p >= 0 {
			order = append(order, position{tok, p})
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i].index < order[j].index })

	nums := digitRuns.FindAllString(value, -1)
	if len(nums) == 0 {
		return time.Time{}, fmt.Errorf("%w: no numeric fields in %q", jalali.ErrMalformedInput, value)
	}
	if len(nums) < len(order) {
		return time.Time{}, fmt.Errorf("%w: %d numeric fields for %d format tokens", jalali.ErrMalformedInput, len(nums), len(order))
	}
	fields := map[string]int{"%H": 0, "%M": 0, "%S": 0}
	for i, pos := range order {
		n, err := strconv.Atoi(nums[i])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", jalali.ErrMalformedInput, nums[i])
		}
		fields[pos.token] = n
	}
	for _, tok := range []string{"%Y", "%m", "%d"} {
		if _, ok := fields[tok]; !ok {
			return time.Time{}, fmt.Errorf("%w: format must include %%Y, %%m and %%d", jalali.ErrMalformedInput)
		}
	}
	if fields["%H"] > 23 || fields["%M"] > 59 || fields["%S"] > 59 {
		return time.Time{}, fmt.Errorf("%w: invalid time of day %02d:%02d:%02d", jalali.ErrInvalidDate, fields["%H"], fields["%M"], fields["%S"])
	}
	date, err := jalali.NewCalendarDate(fields["%Y"], jalali.Month(fields["%m"]), fields["%d"])
	if err != nil {
		return time.Time{}, err
	}
	jt := jalali.Time{
		Date:      date,
		TimeOfDay: datetime.NewTimeOfDay(fields["%H"], fields["%M"], fields["%S"]),
	}
	return jt.GoTime(loc)
}
