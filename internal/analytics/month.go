// Package analytics derives monthly financial aggregates, trend series and
// ratio metrics from raw transaction and revenue records. Every function in
// this package is pure: inputs are never mutated, there is no I/O, and results
// are deterministic for fixed inputs. Callers that want memoization wrap these
// functions themselves (see the http server's report cache).
package analytics

// AddMonths walks delta calendar months from (year, month) and returns the
// resulting (year, month). Month is 1-12 and delta may be negative; year
// rollover uses integer floor arithmetic instead of time.Time normalization so
// the package stays free of locale and timezone behavior.
func AddMonths(year, month, delta int) (int, int) {
	idx := year*12 + (month - 1) + delta
	y := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m + 1
}
