// Package report formats baseline plans and sensitivity outcomes as a
// plain-text analysis summary. It computes nothing: every number printed
// here was produced by the productmix and sensitivity packages.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/prodmix/productmix"
	"github.com/katalvlaran/prodmix/sensitivity"
)

// money groups dollar amounts with thousands separators ($66,100.00).
var money = message.NewPrinter(language.English)

// Strategy names the breakpoint-detection policy an Analysis was produced
// with, so the summary can phrase its finding appropriately.
type Strategy int

const (
	// ConstantMarginalScan: the analysis used sensitivity.FindBreakpoint.
	ConstantMarginalScan Strategy = iota
	// FirstChangeScan: the analysis used sensitivity.FirstChange.
	FirstChangeScan
)

// Analysis pairs one sweep's identity with its computed outcome.
type Analysis struct {
	// Dimension is the swept resource.
	Dimension sensitivity.Dimension
	// Unit is the singular unit name for prose, e.g. "pump", "hour", "foot".
	Unit string
	// Units is the plural unit name, e.g. "pumps", "hours", "feet".
	Units string
	// Strategy selects the phrasing for the finding.
	Strategy Strategy
	// Result is the breakpoint scan outcome for the sweep.
	Result sensitivity.Result
}

// Write renders the baseline plan followed by one summary block per
// analysis. The only returned errors are writer failures.
func Write(w io.Writer, baseline productmix.Plan, analyses []Analysis) error {
	if err := writeBaseline(w, baseline); err != nil {
		return err
	}
	for _, a := range analyses {
		if err := writeAnalysis(w, a); err != nil {
			return err
		}
	}
	return nil
}

func writeBaseline(w io.Writer, plan productmix.Plan) error {
	_, err := fmt.Fprintf(w,
		"Baseline optimal production plan:\n"+
			"  Aqua-Spas   = %.2f\n"+
			"  Hydro-Luxes = %.2f\n"+
			"  Maximum profit = %s\n",
		plan.AquaSpas, plan.HydroLuxes, dollars(plan.Profit))
	if err != nil {
		return err
	}

	var r productmix.Resource
	for _, r = range productmix.Resources() {
		_, err = fmt.Fprintf(w, "  %-7s used = %9.2f, slack = %8.2f\n",
			r, plan.Used[r], plan.Slack[r])
		if err != nil {
			return err
		}
	}
	return nil
}

func writeAnalysis(w io.Writer, a Analysis) error {
	if _, err := fmt.Fprintf(w, "\n%s sensitivity\n", title(a.Dimension)); err != nil {
		return err
	}

	switch a.Strategy {
	case FirstChangeScan:
		return writeFirstChange(w, a)
	default:
		return writeConstantMarginal(w, a)
	}
}

// writeConstantMarginal phrases a FindBreakpoint outcome: the marginal
// value of the initial binding region and where it ends.
func writeConstantMarginal(w io.Writer, a Analysis) error {
	_, err := fmt.Fprintf(w, "  Marginal profit per additional %s: %s\n",
		a.Unit, dollars(a.Result.FirstMarginal))
	if err != nil {
		return err
	}

	if a.Result.Found {
		_, err = fmt.Fprintf(w, "  Breakpoint (calculated): ~%.0f %s\n",
			a.Result.Breakpoint, a.Units)
	} else {
		_, err = fmt.Fprintf(w,
			"  Constant marginal value in tested range; no breakpoint detected.\n")
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "  Highest profit in tested range: %s at %.0f %s\n",
		dollars(a.Result.MaxProfit), a.Result.MaxAt, a.Units)
	return err
}

// writeFirstChange phrases a FirstChange outcome: whether the resource is
// binding anywhere in the tested region.
func writeFirstChange(w io.Writer, a Analysis) error {
	var err error
	if a.Result.Found {
		_, err = fmt.Fprintf(w,
			"  At %.0f %s, profit changes by %s (%s becomes binding).\n",
			a.Result.Breakpoint, a.Units, dollars(a.Result.FirstMarginal), a.Dimension)
	} else {
		_, err = fmt.Fprintf(w,
			"  Profit does not change in the tested region (%s is non-binding).\n",
			a.Dimension)
	}
	return err
}

// dollars formats an amount as $1,234.56.
func dollars(v float64) string {
	return money.Sprintf("$%.2f", v)
}

// title capitalizes the dimension name for headings.
func title(d sensitivity.Dimension) string {
	name := d.String()
	if name == "" {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}
