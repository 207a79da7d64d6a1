package pricing

import (
	"fmt"
	"strings"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func describe(table model.ServicePricing, opts model.QuoteOptions, hours, travelFee float64) string {
	var b strings.Builder

	b.WriteString("Professional ")
	b.WriteString(table.DisplayName)
	if v := opts.Vehicle; v != nil {
		fmt.Fprintf(&b, " for %d %s %s", v.Year, v.Make, v.Model)
	}
	fmt.Fprintf(&b, " including comprehensive inspection, %s, and expert recommendations.",
		strings.ToLower(opts.Description))

	if d := opts.AIDiagnosis; d != nil {
		if len(d.LikelyCauses) > 0 {
			fmt.Fprintf(&b, " AI analysis indicates: %s.", d.LikelyCauses[0])
		}
		if len(d.DiagnosticSteps) > 0 {
			fmt.Fprintf(&b, " Diagnostic approach: %s.", d.DiagnosticSteps[0])
		}
		if d.Confidence == model.ConfidenceHigh {
			b.WriteString(" High-confidence diagnosis allows for efficient service delivery.")
		}
	}

	plural := "s"
	if hours == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, " Estimated completion time: %.1f hour%s.", hours, plural)

	if travelFee > 0 {
		b.WriteString(" Includes mobile service travel fee for on-location convenience.")
	}

	return b.String()
}
