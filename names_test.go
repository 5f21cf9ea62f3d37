// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"testing"

	"cloudeng.io/jalali"
)

func TestNames(t *testing.T) {
	for _, tc := range []struct {
		lang   jalali.Language
		month  string
		abbrev string
	}{
		{jalali.English, "Khordaad", "Kho"},
		{jalali.Farsi, "خرداد", "خرد"},
		{jalali.FarsiLatin, "Khordaad", "Kho"},
	} {
		if got, want := jalali.Khordaad.Name(tc.lang), tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.lang, got, want)
		}
		if got, want := jalali.Khordaad.Abbrev(tc.lang), tc.abbrev; got != want {
			t.Errorf("%v: got %v, want %v", tc.lang, got, want)
		}
	}
	for _, tc := range []struct {
		lang                jalali.Language
		name, abbrev, short string
	}{
		{jalali.English, "Tuesday", "Tue", "Tu"},
		{jalali.Farsi, "سه‌شنبه", "سهش", "سه"},
		{jalali.FarsiLatin, "Seh-Shanbeh", "Ses", "Ses"},
	} {
		if got, want := jalali.SehShanbeh.Name(tc.lang), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", tc.lang, got, want)
		}
		if got, want := jalali.SehShanbeh.Abbrev(tc.lang), tc.abbrev; got != want {
			t.Errorf("%v: got %v, want %v", tc.lang, got, want)
		}
		if got, want := jalali.SehShanbeh.Short(tc.lang), tc.short; got != want {
			t.Errorf("%v: got %v, want %v", tc.lang, got, want)
		}
	}
}

func TestLanguageParse(t *testing.T) {
	for _, val := range []string{"en", "fa", "fa-lat"} {
		var l jalali.Language
		if err := l.Parse(val); err != nil {
			t.Errorf("failed: %v: %v", val, err)
		}
		if got, want := string(l), val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	var l jalali.Language
	if err := l.Parse("de"); err == nil {
		t.Errorf("failed to return an error")
	}
}

func TestFarsiDigits(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"1390/03/17", "۱۳۹۰/۰۳/۱۷"},
		{"0123456789", "۰۱۲۳۴۵۶۷۸۹"},
		{"no digits here", "no digits here"},
		{"", ""},
		{"ساعت ۰۸", "ساعت ۰۸"},
		{"x1y2", "x۱y۲"},
	} {
		if got, want := jalali.FarsiDigits(tc.in), tc.out; got != want {
			t.Errorf("%q: got %q, want %q", tc.in, got, want)
		}
	}
}
