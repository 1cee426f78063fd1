package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative and absolute date/time phrases in free text.
// All arithmetic is naive local-calendar math anchored to a caller-supplied
// reference date; the parser never consults the wall clock.
type Parser struct {
	dayMonth     *regexp.Regexp // "12-Jul", "12/July"
	monthDay     *regexp.Regexp // "July 12"
	updateRange  *regexp.Regexp // "from 9:30 am to 10 am" — target is the SECOND time
	updateSingle *regexp.Regexp // "to 3 pm", "at 3 pm"
	clockRange   *regexp.Regexp // "4 pm to 5 pm", "4:15 pm - 5:45 pm"
	clockSingle  *regexp.Regexp // "2 pm", "9:30 am"
}

// monthNames maps every accepted month spelling to its calendar month.
// Longer spellings are listed first in the alternation so "july" wins over "jul".
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

func monthAlternation() string {
	names := make([]string, 0, len(monthNames))
	for name := range monthNames {
		names = append(names, name)
	}
	// Longest-first keeps full names from being shadowed by their abbreviations.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if len(names[j]) > len(names[i]) {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	return strings.Join(names, "|")
}

// NewParser compiles the temporal patterns once.
func NewParser() *Parser {
	months := monthAlternation()
	return &Parser{
		dayMonth:     regexp.MustCompile(`(?i)\b(\d{1,2})[-/](` + months + `)\b`),
		monthDay:     regexp.MustCompile(`(?i)\b(` + months + `)\s+(\d{1,2})\b`),
		updateRange:  regexp.MustCompile(`(?i)from\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s+to\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
		updateSingle: regexp.MustCompile(`(?i)(?:to|at)\s+(\d{1,2})\s*(am|pm)`),
		clockRange:   regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*(?:to|until|-)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
		clockSingle:  regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
	}
}

// ParseDate resolves a calendar date from text, anchored to ref.
// Keyword anchors run first and short-circuit the pattern search:
// "today" is ref's own date, "tomorrow" is ref+1 day.
// Absolute forms accept "<day>-<month>" and "<month> <day>"; the year
// defaults to ref's year and the day must exist in that month.
func (p *Parser) ParseDate(text string, ref time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "today") {
		return startOfDay(ref), true
	}
	if strings.Contains(lower, "tomorrow") {
		return startOfDay(ref.AddDate(0, 0, 1)), true
	}

	if m := p.dayMonth.FindStringSubmatch(lower); m != nil {
		return makeDate(ref, monthNames[m[2]], m[1])
	}
	if m := p.monthDay.FindStringSubmatch(lower); m != nil {
		return makeDate(ref, monthNames[m[1]], m[2])
	}

	return time.Time{}, false
}

// ParseUpdateClock extracts the TARGET start time of a reschedule phrase.
// "from X to Y" names the old and new start times; only Y matters, X is
// discarded. Returns the confidence weight of whichever pattern matched.
func (p *Parser) ParseUpdateClock(text string) (Clock, int, bool) {
	if m := p.updateRange.FindStringSubmatch(text); m != nil {
		c, ok := makeClock(m[4], m[5], m[6])
		if ok {
			return c, WeightUpdateRange, true
		}
	}

	if m := p.updateSingle.FindStringSubmatch(text); m != nil {
		c, ok := makeClock(m[1], "", m[2])
		if ok {
			return c, WeightUpdateSingle, true
		}
	}

	return Clock{}, 0, false
}

// ParseRangeClock extracts an explicit start-to-end time range.
func (p *Parser) ParseRangeClock(text string) (start, end Clock, ok bool) {
	m := p.clockRange.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, Clock{}, false
	}

	start, okStart := makeClock(m[1], m[2], m[3])
	end, okEnd := makeClock(m[4], m[5], m[6])
	if !okStart || !okEnd {
		return Clock{}, Clock{}, false
	}
	return start, end, true
}

// ParseSingleClock extracts a lone time mention.
func (p *Parser) ParseSingleClock(text string) (Clock, bool) {
	m := p.clockSingle.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, false
	}
	return makeClock(m[1], m[2], m[3])
}

// makeClock normalizes a 12-hour reading to 24-hour form.
// 12 AM is midnight, 12 PM stays noon, other PM hours gain 12.
func makeClock(hourStr, minuteStr, meridiem string) (Clock, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return Clock{}, false
	}

	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return Clock{}, false
		}
	}

	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return Clock{Hour: hour, Minute: minute}, true
}

// makeDate builds day/month in ref's year, rejecting days that do not
// exist in that month (time.Date would silently normalize them).
func makeDate(ref time.Time, month time.Month, dayStr string) (time.Time, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the given day, for full-day range lookups.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return startOfDay(t)
}
