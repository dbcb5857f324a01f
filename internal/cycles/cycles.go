// Package cycles derives upgrade intervals for a product group from the
// release dates of its generations.
package cycles

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

const day = 24 * time.Hour

// Release is one generation of a product line.
type Release struct {
	ID          int64
	ReleaseDate *time.Time
}

// GroupCycles is the derived cycle data for one group.
type GroupCycles struct {
	// UpgradedAfter maps a product id to the days until its successor shipped.
	UpgradedAfter map[int64]int64
	// AvgCycle is the mean of UpgradedAfter, nil with fewer than two dated releases.
	AvgCycle *float64
	// LatestID is the most recent dated release, 0 when there is none.
	LatestID int64
}

// Compute orders the dated releases and measures the gap between each
// release and the next. Undated releases are ignored.
func Compute(releases []Release) GroupCycles {
	dated := make([]Release, 0, len(releases))
	for _, r := range releases {
		if r.ReleaseDate != nil {
			dated = append(dated, r)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].ReleaseDate.Before(*dated[j].ReleaseDate)
	})

	gc := GroupCycles{UpgradedAfter: map[int64]int64{}}
	if len(dated) == 0 {
		return gc
	}
	gc.LatestID = dated[len(dated)-1].ID

	gaps := make([]float64, 0, len(dated)-1)
	for i := 0; i < len(dated)-1; i++ {
		days := int64(dated[i+1].ReleaseDate.Sub(*dated[i].ReleaseDate) / day)
		gc.UpgradedAfter[dated[i].ID] = days
		gaps = append(gaps, float64(days))
	}

	mean, err := stats.Mean(gaps)
	if err != nil || mean <= 0 {
		return gc
	}
	// avg_cycle must stay positive after rounding
	mean, err = stats.Round(mean, 1)
	if err != nil || mean <= 0 {
		return gc
	}
	gc.AvgCycle = &mean
	return gc
}
