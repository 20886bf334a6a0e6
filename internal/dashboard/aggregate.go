// Package dashboard computes the derived figures rendered on the admin
// dashboard and models the chart instances that display them.
package dashboard

import (
	"time"

	"github.com/gymms/portal/internal/models"
)

// activeWindowDays is the approximation used for the active/inactive split: a
// member counts as active while fewer than this many days have elapsed since
// their start date. It is not derived from attendance or billing activity.
const activeWindowDays = 30

// Fallback revenue estimates per plan label, used when a member record
// carries no explicit billed amount.
var packageEstimates = map[string]float64{
	"Basic":  500,
	"Silver": 1000,
	"Gold":   1500,
}

const defaultEstimate = 500

// RevenueByPackage sums each member's billed amount grouped by plan label.
// Members without a recorded amount contribute a package-based estimate;
// members without a package are grouped under "Other".
func RevenueByPackage(members []models.Member) map[string]float64 {
	revenue := make(map[string]float64)
	for _, m := range members {
		pkg := m.Package
		if pkg == "" {
			pkg = "Other"
		}
		amount := m.Amount
		if amount == 0 {
			amount = estimateAmount(pkg)
		}
		revenue[pkg] += amount
	}
	return revenue
}

func estimateAmount(pkg string) float64 {
	if v, ok := packageEstimates[pkg]; ok {
		return v
	}
	return defaultEstimate
}

// Activity is the active/inactive member split.
type Activity struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ActivitySplit counts members as active when fewer than 30 days have
// elapsed between their start date and today. Unparseable start dates count
// as inactive.
func ActivitySplit(members []models.Member, today time.Time) Activity {
	var split Activity
	for _, m := range members {
		start, err := time.Parse("2006-01-02", m.StartDate)
		if err != nil {
			split.Inactive++
			continue
		}
		days := today.Sub(start).Hours() / 24
		if days < activeWindowDays {
			split.Active++
		} else {
			split.Inactive++
		}
	}
	return split
}
