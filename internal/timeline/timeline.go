// Package timeline groups recent listing items into (year, month) periods
// for chronological display.
package timeline

import (
	"slices"
	"time"

	"github.com/goliatone/go-folio/internal/content"
)

// DefaultWindowSize is the number of most recent items a timeline shows.
const DefaultWindowSize = 10

// Mode orders the windowed items before grouping.
type Mode int

const (
	// Natural keeps the newest first order of the input.
	Natural Mode = iota
	// Reversed shows the window oldest first.
	Reversed
)

func (m Mode) String() string {
	if m == Reversed {
		return "reversed"
	}
	return "natural"
}

// Axis is the direction a timeline is laid out along.
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// ModeForAxis returns the ordering used on an axis: horizontal timelines
// read oldest to newest, vertical ones newest first.
func ModeForAxis(axis Axis) Mode {
	if axis == Horizontal {
		return Reversed
	}
	return Natural
}

// Placement tells the renderer which side of the axis an entry sits on.
type Placement string

const (
	Above Placement = "above"
	Below Placement = "below"
)

// Entry is one item on the timeline. Index is the position of the item in
// the windowed sequence, counted across groups.
type Entry struct {
	Item      content.ListingItem `json:"item" yaml:"item"`
	Placement Placement           `json:"placement" yaml:"placement"`
	Index     int                 `json:"index" yaml:"index"`
}

// PeriodGroup collects the entries of one calendar month.
type PeriodGroup struct {
	Year       int        `json:"year" yaml:"year"`
	Month      time.Month `json:"month" yaml:"month"`
	StartsYear bool       `json:"startsYear" yaml:"startsYear"`
	Entries    []Entry    `json:"entries" yaml:"entries"`
}

// Options configure Group.
type Options struct {
	// WindowSize caps the items taken from the head of the input. Zero
	// selects DefaultWindowSize.
	WindowSize int
	Mode       Mode
}

// Window returns the first size items of a newest first listing, oldest
// first when mode is Reversed. The input is not modified.
func Window(items []content.ListingItem, size int, mode Mode) []content.ListingItem {
	if size <= 0 {
		size = DefaultWindowSize
	}
	window := slices.Clone(items[:min(size, len(items))])
	if mode == Reversed {
		slices.Reverse(window)
	}
	return window
}

// Group windows items and splits them into month periods, in the order the
// first member of each period is met. Members of a month always join the
// group first created for it, even when the window is not date sorted.
// Index and Placement follow the position of an entry when the groups are
// read in order, so Above and Below alternate along the rendered axis.
func Group(items []content.ListingItem, opts Options) []PeriodGroup {
	window := Window(items, opts.WindowSize, opts.Mode)

	type key struct {
		year  int
		month time.Month
	}
	index := map[key]int{}
	groups := make([]PeriodGroup, 0)

	for _, item := range window {
		date := item.Date.UTC()
		k := key{year: date.Year(), month: date.Month()}
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, PeriodGroup{
				Year:       k.year,
				Month:      k.month,
				StartsYear: pos == 0 || groups[pos-1].Year != k.year,
			})
		}
		groups[pos].Entries = append(groups[pos].Entries, Entry{Item: item})
	}

	position := 0
	for g := range groups {
		for e := range groups[g].Entries {
			groups[g].Entries[e].Index = position
			groups[g].Entries[e].Placement = placementFor(position)
			position++
		}
	}
	return groups
}

// Len reports the total number of entries across groups.
func Len(groups []PeriodGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Entries)
	}
	return total
}

func placementFor(index int) Placement {
	if index%2 == 0 {
		return Above
	}
	return Below
}
