package upgrade

import "time"

// DiagnosticNonPositiveCycle marks an assessment whose cycle could not be used.
const DiagnosticNonPositiveCycle = "non_positive_cycle"

// Input holds the fields of a product the classifier looks at.
type Input struct {
	ReleaseDate  *time.Time
	ExpectedDate *time.Time
	AvgCycle     *float64
}

// Assessment is the derived, display-ready view of one product at a point in time.
type Assessment struct {
	ReleasedDaysAgo       int      `json:"released_days_ago"`
	ExpectedUpgradeInDays *int     `json:"expected_upgrade_in_days"`
	CycleDays             float64  `json:"cycle_days"`
	Percentage            *float64 `json:"percentage"`
	Status                Status   `json:"status"`
	Diagnostics           []string `json:"diagnostics,omitempty"`
}

// Assess derives days-ago, days-until and the status for in at now.
// A missing cycle is treated as zero.
func Assess(in Input, now time.Time) Assessment {
	a := Assessment{
		ReleasedDaysAgo:       DaysSince(in.ReleaseDate, now),
		ExpectedUpgradeInDays: DaysUntil(in.ExpectedDate, now),
	}
	if in.AvgCycle != nil {
		a.CycleDays = *in.AvgCycle
	}

	p, err := Percentage(a.ReleasedDaysAgo, a.CycleDays, a.ExpectedUpgradeInDays)
	if err != nil {
		a.Status = DontBuy
		a.Diagnostics = append(a.Diagnostics, DiagnosticNonPositiveCycle)
		return a
	}

	a.Percentage = &p
	a.Status = bucket(p)
	return a
}

// HasDiagnostic reports whether the assessment carries the given diagnostic.
func (a Assessment) HasDiagnostic(d string) bool {
	for _, x := range a.Diagnostics {
		if x == d {
			return true
		}
	}
	return false
}
