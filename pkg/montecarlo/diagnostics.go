package montecarlo

import "go-hep.org/x/hep/hbook"

// Histogram bins the retained integrand values into a 1-D histogram for
// diagnostics. It returns nil when the request did not keep samples.
func (r Result) Histogram(bins int, lo, hi float64) *hbook.H1D {
	if r.Values == nil {
		return nil
	}
	h := hbook.NewH1D(bins, lo, hi)
	for _, v := range r.Values {
		h.Fill(v, 1)
	}
	return h
}
