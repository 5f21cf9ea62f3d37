// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calgrid_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"cloudeng.io/jalali"
	"cloudeng.io/jalali/calgrid"
)

func TestWeekStartParse(t *testing.T) {
	var ws calgrid.WeekStart
	for _, tc := range []struct {
		val  string
		want calgrid.WeekStart
	}{
		{"sat", calgrid.Saturday},
		{"SUN", calgrid.Sunday},
		{"Monday", calgrid.Monday},
	} {
		if err := ws.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
		}
		if got, want := ws, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	if err := ws.Parse("tue"); err == nil {
		t.Errorf("expected an error")
	}
}

// Farvardin 1 1390 fell on a Monday.
func TestFirstDayPlacement(t *testing.T) {
	for _, tc := range []struct {
		start calgrid.WeekStart
		col   int
	}{
		{calgrid.Saturday, 2},
		{calgrid.Sunday, 1},
		{calgrid.Monday, 0},
	} {
		g, err := calgrid.New(1390, jalali.Farvardin, tc.start)
		if err != nil {
			t.Fatal(err)
		}
		if day, ok := g.Day(0, tc.col); !ok || day != 1 {
			t.Errorf("start %v: got day %v at col %v, want 1", tc.start, day, tc.col)
		}
		for col := 0; col < tc.col; col++ {
			if _, ok := g.Day(0, col); ok {
				t.Errorf("start %v: col %v should be empty", tc.start, col)
			}
		}
	}
}

func TestGridCompleteness(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month jalali.Month
	}{
		{1390, jalali.Farvardin},
		{1400, jalali.Mehr},
		{1403, jalali.Esfand}, // leap year, 30 days
		{1404, jalali.Esfand}, // 29 days
	} {
		dm, err := jalali.DaysInMonth(tc.year, tc.month)
		if err != nil {
			t.Fatal(err)
		}
		g, err := calgrid.New(tc.year, tc.month, calgrid.Saturday)
		if err != nil {
			t.Fatal(err)
		}
		if g.Rows() > 6 {
			t.Errorf("%04d/%02d: %v rows", tc.year, tc.month, g.Rows())
		}
		seen := map[int]bool{}
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < 7; col++ {
				day, ok := g.Day(row, col)
				if !ok {
					continue
				}
				if day < 1 || day > dm || seen[day] {
					t.Errorf("%04d/%02d: unexpected day %v at (%v,%v)", tc.year, tc.month, day, row, col)
				}
				seen[day] = true
			}
		}
		if got, want := len(seen), dm; got != want {
			t.Errorf("%04d/%02d: got %v days, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestHeader(t *testing.T) {
	for _, tc := range []struct {
		opts calgrid.Options
		want string
	}{
		{calgrid.Options{Lang: jalali.English, Start: calgrid.Saturday}, "Sa Su Mo Tu We Th Fr"},
		{calgrid.Options{Lang: jalali.English, Start: calgrid.Monday}, "Mo Tu We Th Fr Sa Su"},
		{calgrid.Options{Lang: jalali.English, Start: calgrid.Saturday, WideHeader: true},
			"Sat Sun Mon Tue Wed Thu Fri"},
	} {
		out, err := calgrid.RenderMonth(1390, jalali.Farvardin, tc.opts)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(out, "\n")
		if got, want := lines[1], tc.want; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestRenderShape(t *testing.T) {
	out, err := calgrid.RenderMonth(1390, jalali.Farvardin, calgrid.Options{Lang: jalali.English})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	// title, header and 5 week rows for a 31 day month starting in
	// column 2.
	if got, want := len(lines), 7; got != want {
		t.Fatalf("got %v lines, want %v", got, want)
	}
	if got, want := lines[0], "   Farvardin 1390   "; got != want {
		t.Errorf("got title %q, want %q", got, want)
	}
	for i, line := range lines {
		if got, want := utf8.RuneCountInString(line), 20; got != want {
			t.Errorf("line %v: got width %v, want %v: %q", i, got, want, line)
		}
	}
	if got, want := lines[6], "27 28 29 30 31      "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFarsiRendering(t *testing.T) {
	out, err := calgrid.RenderMonth(1390, jalali.Farvardin,
		calgrid.Options{Lang: jalali.Farsi, FarsiDigits: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(out, "0123456789") {
		t.Errorf("ASCII digits in Farsi output: %q", out)
	}
	if !strings.Contains(out, "فروردین ۱۳۹۰") {
		t.Errorf("missing title in %q", out)
	}
}

func TestHighlight(t *testing.T) {
	opts := calgrid.Options{
		Lang:      jalali.English,
		Style:     calgrid.Inverse(),
		Highlight: jalali.CalendarDate{Year: 1390, Month: jalali.Farvardin, Day: 17},
	}
	out, err := calgrid.RenderMonth(1390, jalali.Farvardin, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\033[30m\033[47m17\033[0m") {
		t.Errorf("day 17 not highlighted in %q", out)
	}
	// The same day in another month is untouched.
	out, err = calgrid.RenderMonth(1390, jalali.Ordibehesht, opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "\033") {
		t.Errorf("unexpected highlighting in %q", out)
	}
	// A nil style disables highlighting irrespective of Highlight.
	opts.Style = nil
	out, err = calgrid.RenderMonth(1390, jalali.Farvardin, opts)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "\033") {
		t.Errorf("unexpected highlighting in %q", out)
	}
}

func TestRenderMonthsYearWrap(t *testing.T) {
	out, err := calgrid.RenderMonths(1390, jalali.Esfand, 2, 3,
		calgrid.Options{Lang: jalali.English})
	if err != nil {
		t.Fatal(err)
	}
	first := strings.Split(out, "\n")[0]
	if !strings.Contains(first, "Esfand 1390") || !strings.Contains(first, "Farvardin 1391") {
		t.Errorf("unexpected titles: %q", first)
	}
}

func TestRenderThree(t *testing.T) {
	out, err := calgrid.RenderThree(1390, jalali.Farvardin, 3,
		calgrid.Options{Lang: jalali.English})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	for _, want := range []string{"Esfand 1389", "Farvardin 1390", "Ordibehesht 1390"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("missing %q in %q", want, lines[0])
		}
	}
	// Shorter blocks are padded so that every line spans all three
	// months plus the margins.
	for i, line := range lines {
		if got, want := utf8.RuneCountInString(line), 3*20+2*3; got != want {
			t.Errorf("line %v: got width %v, want %v: %q", i, got, want, line)
		}
	}
}

func TestRenderYear(t *testing.T) {
	out, err := calgrid.RenderYear(1390, 3, calgrid.Options{Lang: jalali.English})
	if err != nil {
		t.Fatal(err)
	}
	for m := jalali.Farvardin; m <= jalali.Esfand; m++ {
		if !strings.Contains(out, m.Name(jalali.English)+" 1390") {
			t.Errorf("missing %v", m)
		}
	}
	if got, want := strings.Count(out, "\n\n"), 3; got != want {
		t.Errorf("got %v quarter separators, want %v", got, want)
	}
}

func TestNewInvalidMonth(t *testing.T) {
	if _, err := calgrid.New(1390, jalali.Month(13), calgrid.Saturday); err == nil {
		t.Errorf("expected an error")
	}
}
