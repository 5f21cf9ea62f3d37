// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calgrid renders Jalali months as fixed-width text calendar
// grids, singly or laid out side by side, in the manner of the cal
// utility.
package calgrid

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"cloudeng.io/errors"
	"cloudeng.io/jalali"
)

// WeekStart is the weekday occupying the leftmost column of a grid.
type WeekStart int

const (
	Saturday WeekStart = iota
	Sunday
	Monday
)

// Parse parses one of "sat", "sun" or "mon", or the full weekday name,
// in either case.
func (ws *WeekStart) Parse(val string) error {
	switch strings.ToLower(val) {
	case "sat", "saturday":
		*ws = Saturday
	case "sun", "sunday":
		*ws = Sunday
	case "mon", "monday":
		*ws = Monday
	default:
		return errors.New("invalid week start: expected sat, sun or mon")
	}
	return nil
}

// anchor returns the Jalali weekday occupying column 0.
func (ws WeekStart) anchor() jalali.Weekday {
	switch ws {
	case Sunday:
		return jalali.YekShanbeh
	case Monday:
		return jalali.DoShanbeh
	}
	return jalali.Shanbeh
}

// Style wraps rendered text in some form of highlighting. It is an
// injectable capability so that rendering never depends on global
// styling state; a nil Style in Options disables highlighting entirely.
type Style interface {
	Highlight(text string) string
}

type inverse struct{}

func (inverse) Highlight(text string) string {
	return "\033[30m\033[47m" + text + "\033[0m"
}

// Inverse returns a Style that renders text in inverse video, black on
// white, resetting all attributes afterwards.
func Inverse() Style { return inverse{} }

// Options control the rendering of month grids.
type Options struct {
	Lang        jalali.Language
	FarsiDigits bool
	Start       WeekStart
	// WideHeader selects the 3 character weekday abbreviations for the
	// header row instead of the 2 character forms.
	WideHeader bool
	// Style highlights the cell named by Highlight; nil disables
	// highlighting.
	Style Style
	// Highlight names a single day to highlight. Only a grid whose
	// year and month match is affected, so a multi-month view
	// highlights at most one cell. The zero value matches no grid.
	Highlight jalali.CalendarDate
}

const (
	gridRows   = 6
	gridCols   = 7
	titleWidth = 20
)

// Grid is a month of days placed into a 6x7 matrix. Six rows is the
// most any month can need. Cells are filled in a single pass at
// construction and never mutated afterwards.
type Grid struct {
	Year  int
	Month jalali.Month
	days  [gridRows][gridCols]int
	rows  int
}

// New builds the grid for the given month with days placed left to
// right, top to bottom, anchored so that the week start weekday
// occupies column 0.
func New(year int, month jalali.Month, start WeekStart) (*Grid, error) {
	dm, err := jalali.DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	first := jalali.CalendarDate{Year: year, Month: month, Day: 1}.Weekday()
	col := (int(first) - int(start.anchor()) + gridCols) % gridCols
	g := &Grid{Year: year, Month: month}
	row := 0
	for day := 1; day <= dm; day++ {
		g.days[row][col] = day
		g.rows = row + 1
		col++
		if col == gridCols {
			col = 0
			row++
		}
	}
	return g, nil
}

// Day returns the day number at (row, col) and whether that cell holds
// a day at all.
func (g *Grid) Day(row, col int) (int, bool) {
	d := g.days[row][col]
	return d, d != 0
}

// Rows returns the number of rows actually holding days.
func (g *Grid) Rows() int {
	return g.rows
}

// center pads s with spaces to width runes, splitting the padding as
// evenly as possible with the extra space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func (g *Grid) title(opts Options) string {
	year := strconv.Itoa(g.Year)
	if opts.FarsiDigits && opts.Lang == jalali.Farsi {
		year = jalali.FarsiDigits(year)
	}
	return center(g.Month.Name(opts.Lang)+" "+year, titleWidth)
}

func (g *Grid) header(opts Options) string {
	cells := make([]string, gridCols)
	for col := 0; col < gridCols; col++ {
		wd := jalali.Weekday((int(opts.Start.anchor()) + col) % gridCols)
		if opts.WideHeader || opts.Lang == jalali.FarsiLatin {
			cells[col] = center(wd.Abbrev(opts.Lang), 2)
		} else {
			cells[col] = center(wd.Short(opts.Lang), 2)
		}
	}
	return strings.Join(cells, " ")
}

func (g *Grid) cell(day int, opts Options) string {
	if day == 0 {
		return "  "
	}
	text := " " + strconv.Itoa(day)
	if day >= 10 {
		text = strconv.Itoa(day)
	}
	if opts.FarsiDigits && opts.Lang == jalali.Farsi {
		text = jalali.FarsiDigits(text)
	}
	hl := opts.Highlight
	if opts.Style != nil && hl.Year == g.Year && hl.Month == g.Month && hl.Day == day {
		text = opts.Style.Highlight(text)
	}
	return text
}

// Render returns the grid as a text block: a centered "month year"
// title, a weekday header row and one line per occupied grid row with
// 2 character right-aligned day cells. Highlighting only alters the
// rendered text, never the stored day numbers.
func (g *Grid) Render(opts Options) string {
	lines := make([]string, 0, g.rows+2)
	lines = append(lines, g.title(opts), g.header(opts))
	for row := 0; row < g.rows; row++ {
		cells := make([]string, gridCols)
		for col := 0; col < gridCols; col++ {
			cells[col] = g.cell(g.days[row][col], opts)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// RenderMonth renders a single month.
func RenderMonth(year int, month jalali.Month, opts Options) (string, error) {
	g, err := New(year, month, opts.Start)
	if err != nil {
		return "", err
	}
	return g.Render(opts), nil
}

// RenderMonths renders count consecutive months starting at the given
// one, left to right with margin spaces between blocks. Month overflow
// wraps into the following year. Blocks are first normalized to a
// common line count by padding shorter blocks at the bottom and then
// joined line by line.
func RenderMonths(year int, month jalali.Month, count, margin int, opts Options) (string, error) {
	errs := &errors.M{}
	blocks := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		idx := int(month) - 1 + i
		y, m := year+idx/12, jalali.Month(idx%12+1)
		block, err := RenderMonth(y, m, opts)
		if err != nil {
			errs.Append(err)
			continue
		}
		blocks = append(blocks, strings.Split(block, "\n"))
	}
	if err := errs.Err(); err != nil {
		return "", err
	}
	return joinBlocks(blocks, margin), nil
}

// RenderThree renders the month before, the month itself and the month
// after, side by side.
func RenderThree(year int, month jalali.Month, margin int, opts Options) (string, error) {
	if month == jalali.Farvardin {
		return RenderMonths(year-1, jalali.Esfand, 3, margin, opts)
	}
	return RenderMonths(year, month-1, 3, margin, opts)
}

// RenderYear renders all twelve months of the year as four rows of
// three months with a blank line between rows.
func RenderYear(year, margin int, opts Options) (string, error) {
	quarters := make([]string, 0, 4)
	for q := 0; q < 4; q++ {
		block, err := RenderMonths(year, jalali.Month(q*3+1), 3, margin, opts)
		if err != nil {
			return "", err
		}
		quarters = append(quarters, block)
	}
	return strings.Join(quarters, "\n\n"), nil
}

func joinBlocks(blocks [][]string, margin int) string {
	height := 0
	for _, b := range blocks {
		if len(b) > height {
			height = len(b)
		}
	}
	blank := strings.Repeat(" ", titleWidth)
	space := strings.Repeat(" ", margin)
	lines := make([]string, height)
	parts := make([]string, len(blocks))
	for i := 0; i < height; i++ {
		for j, b := range blocks {
			if i < len(b) {
				parts[j] = b[i]
			} else {
				parts[j] = blank
			}
		}
		lines[i] = strings.Join(parts, space)
	}
	return strings.Join(lines, "\n")
}
