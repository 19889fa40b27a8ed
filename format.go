package fcusum

import (
	"fmt"
	"strings"
)

// Summary renders a TestResult as a human-readable report. It is a pure
// function over the result's public fields; nothing in the core pipeline
// depends on it.
func Summary(r *TestResult) string {
	if r == nil {
		return "test result is nil\n"
	}

	var b strings.Builder

	b.WriteString("    Fourier CUSUM Cointegration Test    \n")
	b.WriteString("========================================\n")
	b.WriteString("Null Hypothesis: the series are cointegrated (stable long-run relation)\n\n")

	fmt.Fprintf(&b, "CUSUM statistic:       %.6f %s\n", r.Statistic, r.Marker)
	fmt.Fprintf(&b, "Best frequency:        %.2f\n", r.BestFrequency)
	fmt.Fprintf(&b, "Frequency bound k*:    %v (table entry k=%d)\n", r.KStar, r.KAdj)
	fmt.Fprintf(&b, "Regressors p:          table entry p=%d\n", r.PAdj)
	b.WriteString("\n")

	b.WriteString("Critical values:\n")
	fmt.Fprintf(&b, "   1%%: %8.3f\n", r.CriticalValues.OnePct)
	fmt.Fprintf(&b, "   5%%: %8.3f\n", r.CriticalValues.FivePct)
	fmt.Fprintf(&b, "  10%%: %8.3f\n", r.CriticalValues.TenPct)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Decision: %s\n", r.Decision)

	if r.Warning != nil {
		fmt.Fprintf(&b, "Warning: %s\n", r.Warning.Error())
	}

	if m := r.Model; m != nil {
		b.WriteString("\nSelected model:\n")
		fmt.Fprintf(&b, "  Observations:        %d\n", len(m.Residuals))
		fmt.Fprintf(&b, "  Parameters:          %d\n", m.NParams)
		fmt.Fprintf(&b, "  Residual DF:         %d\n", m.DF)
		fmt.Fprintf(&b, "  Residual SSQ:        %.6f\n", m.RSS)
		b.WriteString("  Coefficients:        ")
		for i, c := range m.Coefficients {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%.4f", coefficientName(i, m.NParams), c)
		}
		b.WriteString("\n")
	}

	b.WriteString("========================================\n")
	return b.String()
}

// coefficientName labels the i-th coefficient of the [intercept, x...,
// cos, sin] design.
func coefficientName(i, nparams int) string {
	switch {
	case i == 0:
		return "const"
	case i == nparams-2:
		return "cos"
	case i == nparams-1:
		return "sin"
	default:
		return fmt.Sprintf("x%d", i)
	}
}
