// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/calgrid"
)

type calFlags struct {
	LocaleFlags
	TimezoneFlags
	Three     bool   `subcmd:"three,false,show the previous and next months alongside the current one"`
	YearView  bool   `subcmd:"year,false,show a calendar for the whole year"`
	Julian    bool   `subcmd:"julian,false,use the wider 3 character weekday headers"`
	NoColor   bool   `subcmd:"no-color,false,disable highlighting of the current day"`
	Margin    int    `subcmd:"margin,3,number of spaces between months in multi-month views"`
	StartWeek string `subcmd:"start-week,sat,'first day of the week: sat, sun or mon'"`
}

func calCmdRunner(_ context.Context, values interface{}, args []string) error {
	cl := values.(*calFlags)
	lang, err := cl.language()
	if err != nil {
		return err
	}
	if err := flags.OneOf(cl.StartWeek).Validate("sat", "sun", "mon"); err != nil {
		return err
	}
	var start calgrid.WeekStart
	if err := start.Parse(cl.StartWeek); err != nil {
		return err
	}
	loc, err := cl.location()
	if err != nil {
		return err
	}

	today := jalali.FromTime(time.Now().In(loc)).Date
	target, err := targetDate(args, today)
	if err != nil {
		return err
	}

	opts := calOptions(cl, lang, start, today)

	var out string
	switch {
	case cl.YearView:
		out, err = calgrid.RenderYear(target.Year, cl.Margin, opts)
	case cl.Three:
		out, err = calgrid.RenderThree(target.Year, target.Month, cl.Margin, opts)
	default:
		out, err = calgrid.RenderMonth(target.Year, target.Month, opts)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// calOptions assembles the rendering options from the command's flags.
// Highlighting today is suppressed in UTC mode as well as by
// --no-color: UTC's today need not be the local today.
func calOptions(cl *calFlags, lang jalali.Language, start calgrid.WeekStart, today jalali.CalendarDate) calgrid.Options {
	opts := calgrid.Options{
		Lang:        lang,
		FarsiDigits: cl.FarsiDigits,
		Start:       start,
		WideHeader:  cl.Julian,
	}
	if cl.NoColor {
		return opts
	}
	opts.Style = calgrid.Inverse()
	if !cl.UTC {
		opts.Highlight = today
	}
	return opts
}

// targetDate interprets the optional year, month and day arguments,
// defaulting any omitted part. With no arguments the current date is
// used.
func targetDate(args []string, today jalali.CalendarDate) (jalali.CalendarDate, error) {
	if len(args) == 0 {
		return today, nil
	}
	if len(args) > 3 {
		return jalali.CalendarDate{}, fmt.Errorf("at most three arguments, year month day, are accepted")
	}
	parts := []int{0, 1, 1} // year month day
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return jalali.CalendarDate{}, fmt.Errorf("%w: %q", jalali.ErrMalformedInput, arg)
		}
		parts[i] = n
	}
	return jalali.NewCalendarDate(parts[0], jalali.Month(parts[1]), parts[2])
}
