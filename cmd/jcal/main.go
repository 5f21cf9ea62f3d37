// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// jcal provides Jalali (Solar Hijri) analogs of the date and cal
// utilities: it prints and formats Jalali dates and times, converts
// between the Jalali and Gregorian calendars and renders textual
// month, three-month and full-year calendars.
package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/jalali"
)

var cmdSet *subcmd.CommandSet

type LocaleFlags struct {
	Lang        string `subcmd:"lang,en,'language for weekday and month names: en, fa or fa-lat'"`
	FarsiDigits bool   `subcmd:"farsi-digits,false,render digits in the output as Persian digits"`
}

func (lf LocaleFlags) language() (jalali.Language, error) {
	if err := flags.OneOf(lf.Lang).Validate("en", "fa", "fa-lat"); err != nil {
		return jalali.English, err
	}
	return jalali.Language(lf.Lang), nil
}

type TimezoneFlags struct {
	UTC      bool   `subcmd:"utc,false,use UTC rather than the local time zone"`
	Timezone string `subcmd:"timezone,,'display times in the named zone, e.g. Asia/Tehran'"`
}

var errUnknownZone = errors.New("unknown time zone")

func (tf TimezoneFlags) location() (*time.Location, error) {
	if tf.Timezone != "" {
		loc, err := time.LoadLocation(tf.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errUnknownZone, tf.Timezone)
		}
		return loc, nil
	}
	if tf.UTC {
		return time.UTC, nil
	}
	return time.Local, nil
}

func init() {
	dateFS := subcmd.NewFlagSet()
	dateFS.MustRegisterFlagStruct(&dateFlags{}, nil, nil)
	calFS := subcmd.NewFlagSet()
	calFS.MustRegisterFlagStruct(&calFlags{}, nil, nil)

	dateCmd := subcmd.NewCommand("date", dateFS, dateCmdRunner, subcmd.OptionalSingleArgument())
	dateCmd.Document("print or format a Jalali date/time, or convert between calendars", "[+FORMAT]")

	calCmd := subcmd.NewCommand("cal", calFS, calCmdRunner)
	calCmd.Document("print a Jalali calendar", "[year [month [day]]]")

	cmdSet = subcmd.NewCommandSet(dateCmd, calCmd)
	cmdSet.Document(`jcal provides Jalali (Solar Hijri) analogs of the common date and cal utilities.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
