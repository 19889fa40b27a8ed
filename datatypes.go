package fcusum

// DefaultKStar is the default upper bound of the frequency grid.
const DefaultKStar = 3.0

// Decision labels produced by the test, in decreasing order of significance.
const (
	DecisionReject1      = "Reject H0 at 1% level"
	DecisionReject5      = "Reject H0 at 5% level"
	DecisionReject10     = "Reject H0 at 10% level"
	DecisionFailToReject = "Fail to reject H0"
)

// CriticalValues is one (1%, 5%, 10%) threshold triple from the table.
type CriticalValues struct {
	OnePct  float64
	FivePct float64
	TenPct  float64
}

// FittedModel holds one OLS fit of y on [intercept, x columns, cos, sin].
type FittedModel struct {
	// Coefficient vector: intercept first, then the x columns in order,
	// then the cosine and sine terms
	Coefficients []float64
	// Residual vector, one entry per observation
	Residuals []float64
	// Residual sum of squares
	RSS float64
	// Number of estimated parameters, including intercept and trig terms
	NParams int
	// Residual degrees of freedom, n - NParams
	DF int
}

// SelectionResult is the winner of the frequency grid search.
// Immutable once returned.
type SelectionResult struct {
	// The selected model's fit
	Model *FittedModel
	// Frequency that produced the minimal corrected-AIC score
	Frequency float64
	// The corrected-AIC score of the selected model
	Score float64
}

// TestResult is the full outcome of one cointegration test invocation.
// Created once per Run call; callers must treat it as read-only.
type TestResult struct {
	// The CUSUM test statistic
	Statistic float64
	// Critical values used for the decision
	CriticalValues CriticalValues
	// Adjusted regressor count used for the table lookup (1-4)
	PAdj int
	// Adjusted frequency bound used for the table lookup (1-3)
	KAdj int
	// The caller's original frequency bound
	KStar float64
	// Grid frequency selected by the corrected-AIC search
	BestFrequency float64
	// One of the Decision* labels
	Decision string
	// Significance marker: "***", "**", "*", or ""
	Marker string
	// The selected model, kept for inspection and printing
	Model *FittedModel
	// Non-nil when the critical value lookup fell back to the (1, 1) entry
	Warning *CriticalValueLookupWarning
}
