package slicer

import "github.com/fieldtrace/dynagraph/pkg/gexf"

// Default window sizes in the document's normalized time scalar (spec
// §4.2). Date-like formats (date/dateTime) are already in milliseconds;
// other formats use small dimensionless defaults.
const (
	dateLikeDefaultRangeMs = 7 * 24 * 60 * 60 * 1000
	dateLikeDefaultStepMs  = 24 * 60 * 60 * 1000

	scalarDefaultRange = 1
	scalarDefaultStep  = 0.1
)

// Options configures one Slice call. A nil Range or Step means "use the
// format-appropriate default"; an explicit pointer to 0 is a real zero,
// not a request for the default (the boundary case spec.md §9 names: a
// zero range yields zero snapshots).
type Options struct {
	Range *float64
	Step  *float64
}

// resolved holds Range/Step after defaulting, as the concrete values
// windows() operates on.
type resolved struct {
	Range, Step float64
}

// resolve fills in Range/Step defaults for the given time format.
//
// The source implementation has a known bug where the step option falls
// back to range instead of step (spec §9's Open Questions). This
// implementation reads the step value as given — the corrected
// behavior — rather than reproducing the bug; see DESIGN.md.
func (o Options) resolve(format gexf.Format) resolved {
	var out resolved
	if o.Range != nil {
		out.Range = *o.Range
	} else if gexf.IsDateLike(format) {
		out.Range = dateLikeDefaultRangeMs
	} else {
		out.Range = scalarDefaultRange
	}
	if o.Step != nil {
		out.Step = *o.Step
	} else if gexf.IsDateLike(format) {
		out.Step = dateLikeDefaultStepMs
	} else {
		out.Step = scalarDefaultStep
	}
	return out
}

// Window is the half-open [Start, End) interval of one snapshot, in the
// document's normalized time scalar.
type Window struct {
	Start, End float64
}

// windows enumerates Sk = [dateMin+k·step, dateMin+k·step+range) for
// k = 0, 1, … while Sk.End <= dateMax.
func windows(dateMin, dateMax float64, opts resolved) []Window {
	if opts.Range <= 0 {
		return nil
	}
	var out []Window
	for k := 0; ; k++ {
		start := dateMin + float64(k)*opts.Step
		end := start + opts.Range
		if end > dateMax {
			break
		}
		out = append(out, Window{Start: start, End: end})
		if opts.Step <= 0 {
			// A non-positive step never advances start; stop after one
			// window to avoid looping forever.
			break
		}
	}
	return out
}
