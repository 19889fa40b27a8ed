package fcusum

import "math"

// criticalValueTable holds the simulated critical values of the test
// statistic, indexed by [p_adj-1][k_adj-1] for p_adj in 1..4 regressors and
// k_adj in 1..3 frequency bounds. Values are from the originating
// simulation study and are process-lifetime constants; never mutate.
var criticalValueTable = [4][3]CriticalValues{
	{ // p = 1
		{OnePct: 1.648, FivePct: 1.431, TenPct: 1.326},
		{OnePct: 1.571, FivePct: 1.362, TenPct: 1.258},
		{OnePct: 1.532, FivePct: 1.327, TenPct: 1.224},
	},
	{ // p = 2
		{OnePct: 1.689, FivePct: 1.465, TenPct: 1.357},
		{OnePct: 1.612, FivePct: 1.394, TenPct: 1.288},
		{OnePct: 1.569, FivePct: 1.358, TenPct: 1.253},
	},
	{ // p = 3
		{OnePct: 1.726, FivePct: 1.496, TenPct: 1.386},
		{OnePct: 1.648, FivePct: 1.424, TenPct: 1.316},
		{OnePct: 1.603, FivePct: 1.388, TenPct: 1.281},
	},
	{ // p = 4
		{OnePct: 1.761, FivePct: 1.525, TenPct: 1.412},
		{OnePct: 1.681, FivePct: 1.453, TenPct: 1.342},
		{OnePct: 1.635, FivePct: 1.416, TenPct: 1.307},
	},
}

// LookupCriticalValues maps a regressor count and frequency bound to the
// critical value triple and the adjusted indices actually used.
//
// p is clamped to 4. kstar is clamped to 3 and then matched against the
// integer keys 1..3 by exact equality: a fractional kstar (say 2.7) has no
// table entry and falls back to the (1, 1) triple with a non-nil warning,
// mirroring the reference implementation, which clamps without flooring.
// The fallback is conservative, not fatal.
func LookupCriticalValues(p int, kstar float64) (CriticalValues, int, int, *CriticalValueLookupWarning) {
	pAdj := p
	if pAdj > 4 {
		pAdj = 4
	}

	kc := math.Min(kstar, 3)
	if pAdj >= 1 && kc == math.Trunc(kc) && kc >= 1 {
		kAdj := int(kc)
		return criticalValueTable[pAdj-1][kAdj-1], pAdj, kAdj, nil
	}

	warn := &CriticalValueLookupWarning{P: p, KStar: kstar}
	return criticalValueTable[0][0], 1, 1, warn
}
