package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func on(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCompute(t *testing.T) {
	releases := []Release{
		{ID: 3, ReleaseDate: on(2023, time.January, 1)},
		{ID: 1, ReleaseDate: on(2021, time.January, 1)},
		{ID: 2, ReleaseDate: on(2022, time.January, 1)},
		{ID: 9},
	}

	gc := Compute(releases)

	assert.Equal(t, int64(3), gc.LatestID)
	assert.Equal(t, map[int64]int64{1: 365, 2: 365}, gc.UpgradedAfter)
	require.NotNil(t, gc.AvgCycle)
	assert.Equal(t, 365.0, *gc.AvgCycle)
}

func TestCompute_UnevenGaps(t *testing.T) {
	gc := Compute([]Release{
		{ID: 1, ReleaseDate: on(2020, time.March, 1)},
		{ID: 2, ReleaseDate: on(2020, time.September, 1)},
		{ID: 3, ReleaseDate: on(2021, time.December, 1)},
	})

	assert.Equal(t, int64(184), gc.UpgradedAfter[1])
	assert.Equal(t, int64(456), gc.UpgradedAfter[2])
	require.NotNil(t, gc.AvgCycle)
	assert.Equal(t, 320.0, *gc.AvgCycle)
}

func TestCompute_NotEnoughReleases(t *testing.T) {
	gc := Compute([]Release{{ID: 5, ReleaseDate: on(2024, time.May, 1)}, {ID: 6}})
	assert.Equal(t, int64(5), gc.LatestID)
	assert.Empty(t, gc.UpgradedAfter)
	assert.Nil(t, gc.AvgCycle)

	gc = Compute(nil)
	assert.Zero(t, gc.LatestID)
	assert.Nil(t, gc.AvgCycle)
}

func TestCompute_SameDayReleases(t *testing.T) {
	gc := Compute([]Release{
		{ID: 1, ReleaseDate: on(2024, time.May, 1)},
		{ID: 2, ReleaseDate: on(2024, time.May, 1)},
	})
	assert.Equal(t, int64(0), gc.UpgradedAfter[1])
	assert.Nil(t, gc.AvgCycle, "a zero cycle is never stored")
}

func TestCompute_MeanRoundingToZeroHasNoCycle(t *testing.T) {
	releases := make([]Release, 0, 22)
	for id := int64(1); id <= 21; id++ {
		releases = append(releases, Release{ID: id, ReleaseDate: on(2024, time.May, 1)})
	}
	releases = append(releases, Release{ID: 22, ReleaseDate: on(2024, time.May, 2)})

	gc := Compute(releases)
	assert.Equal(t, int64(22), gc.LatestID)
	assert.Len(t, gc.UpgradedAfter, 21)
	assert.Nil(t, gc.AvgCycle, "a mean of 1/21 day rounds to zero")
}
