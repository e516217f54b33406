package gexf

import (
	"fmt"
	"strconv"
	"time"
)

// Format is one of the four time formats a GEXF document can declare via
// graph/@timeformat. An empty attribute is treated as [FormatInteger].
type Format string

const (
	FormatDate     Format = "date"
	FormatDateTime Format = "dateTime"
	FormatInteger  Format = "integer"
	FormatDouble   Format = "double"
)

// Representation is one of the two ways a GEXF document can attach time
// to an element via graph/@timerepresentation. An empty attribute is
// treated as [RepresentationInterval].
type Representation string

const (
	RepresentationInterval  Representation = "interval"
	RepresentationTimestamp Representation = "timestamp"
)

// ParseFormat validates and normalizes a raw timeformat attribute value.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "":
		return FormatInteger, nil
	case FormatDate, FormatDateTime, FormatInteger, FormatDouble:
		return Format(raw), nil
	default:
		return "", ErrUnsupportedTimeFormat
	}
}

// ParseRepresentation validates and normalizes a raw timerepresentation
// attribute value.
func ParseRepresentation(raw string) (Representation, error) {
	switch Representation(raw) {
	case "":
		return RepresentationInterval, nil
	case RepresentationInterval, RepresentationTimestamp:
		return Representation(raw), nil
	default:
		return "", ErrUnsupportedTimeRepresentation
	}
}

// ParseTime normalizes a raw time string under format into the scalar
// used internally: milliseconds since the epoch for [FormatDate] and
// [FormatDateTime], the raw number for [FormatInteger] and [FormatDouble].
func ParseTime(raw string, format Format) (float64, error) {
	switch format {
	case FormatDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return 0, fmt.Errorf("parse date %q: %w", raw, err)
		}
		return float64(t.UnixMilli()), nil
	case FormatDateTime:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return 0, fmt.Errorf("parse dateTime %q: %w", raw, err)
		}
		return float64(t.UnixMilli()), nil
	case FormatInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse integer %q: %w", raw, err)
		}
		return float64(v), nil
	case FormatDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("parse double %q: %w", raw, err)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("unknown time format %q", format)
	}
}

// FormatTime renders a normalized scalar back into the input format's
// textual convention, for logging and reporting.
func FormatTime(v float64, format Format) string {
	switch format {
	case FormatDate:
		return time.UnixMilli(int64(v)).UTC().Format("2006-01-02")
	case FormatDateTime:
		return time.UnixMilli(int64(v)).UTC().Format(time.RFC3339)
	case FormatInteger:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// IsDateLike reports whether format uses wall-clock time, which changes
// the slicer's default window size (spec §4.2).
func IsDateLike(format Format) bool {
	return format == FormatDate || format == FormatDateTime
}
