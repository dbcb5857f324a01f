package upgrade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		released int
		cycle    float64
		expected *int
		want     Status
	}{
		{"just_released", 0, 100, nil, BuyNow},
		{"quarter_in", 20, 100, nil, BuyNow},
		{"forty_percent_left", 60, 100, nil, Wait},
		{"cycle_complete", 100, 100, nil, DontBuy},
		{"overdue", 250, 100, nil, DontBuy},
		{"expected_far_off", 90, 100, intPtr(80), BuyNow},
		{"expected_mid", 10, 100, intPtr(60), OkayBuy},
		{"expected_close", 10, 100, intPtr(30), Wait},
		{"expected_today", 10, 100, intPtr(0), DontBuy},
		{"future_release", -30, 100, nil, BuyNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.released, tt.cycle, tt.expected))
		})
	}
}

func TestClassify_ThresholdsAreExclusive(t *testing.T) {
	// percentage exactly on a threshold falls into the lower bucket
	assert.Equal(t, OkayBuy, Classify(25, 100, nil), "0.75")
	assert.Equal(t, Wait, Classify(50, 100, nil), "0.50")
	assert.Equal(t, DontBuy, Classify(75, 100, nil), "0.25")

	assert.Equal(t, OkayBuy, Classify(0, 100, intPtr(75)))
	assert.Equal(t, Wait, Classify(0, 100, intPtr(50)))
	assert.Equal(t, DontBuy, Classify(0, 100, intPtr(25)))
}

func TestClassify_NonPositiveCycle(t *testing.T) {
	for _, cycle := range []float64{0, -1, -365, math.NaN()} {
		assert.Equal(t, DontBuy, Classify(0, cycle, nil))
		assert.Equal(t, DontBuy, Classify(0, cycle, intPtr(500)))
	}
}

func TestClassify_Total(t *testing.T) {
	for _, cycle := range []float64{1, 7.5, 100, 365.25, 1000} {
		for released := -400; released <= 1500; released += 13 {
			s := Classify(released, cycle, nil)
			assert.Contains(t, Statuses, s, "released=%d cycle=%v", released, cycle)
		}
	}
}

func TestClassify_MonotonicInElapsedTime(t *testing.T) {
	for _, cycle := range []float64{30, 100, 412.5} {
		prev := Classify(0, cycle, nil)
		for released := 1; released <= 600; released++ {
			cur := Classify(released, cycle, nil)
			require.LessOrEqual(t, cur.Rank(), prev.Rank(),
				"rank went up at released=%d cycle=%v", released, cycle)
			prev = cur
		}
	}
}

func TestPercentage(t *testing.T) {
	p, err := Percentage(0, 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)

	p, err = Percentage(60, 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.40, p, 1e-9)

	p, err = Percentage(90, 100, intPtr(80))
	require.NoError(t, err)
	assert.InDelta(t, 0.80, p, 1e-9)

	_, err = Percentage(10, 0, nil)
	assert.ErrorIs(t, err, ErrNonPositiveCycle)
}

func TestStatus_RankAndColor(t *testing.T) {
	assert.Greater(t, BuyNow.Rank(), OkayBuy.Rank())
	assert.Greater(t, OkayBuy.Rank(), Wait.Rank())
	assert.Greater(t, Wait.Rank(), DontBuy.Rank())
	assert.Equal(t, -1, Status("Buy That Today").Rank())

	assert.Equal(t, "#39b54a", BuyNow.Color())
	assert.Equal(t, "#ed1c24", DontBuy.Color())
	assert.Equal(t, "#333", Status("").Color())
}
