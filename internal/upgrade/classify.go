package upgrade

import "math"

const (
	buyNowAbove  = 0.75
	okayBuyAbove = 0.50
	waitAbove    = 0.25
)

// Percentage computes the score the classifier buckets. With a known
// upcoming release it is the days until that release over the average
// cycle; otherwise it is the share of the cycle still remaining.
func Percentage(releasedDaysAgo int, avgCycle float64, expectedUpgradeInDays *int) (float64, error) {
	if math.IsNaN(avgCycle) || avgCycle <= 0 {
		return 0, ErrNonPositiveCycle
	}
	if expectedUpgradeInDays != nil {
		return float64(*expectedUpgradeInDays) / avgCycle, nil
	}
	return (avgCycle - float64(releasedDaysAgo)) / avgCycle, nil
}

// Classify maps release recency and cycle data to a Status. A non-positive
// cycle always classifies as DontBuy.
func Classify(releasedDaysAgo int, avgCycle float64, expectedUpgradeInDays *int) Status {
	p, err := Percentage(releasedDaysAgo, avgCycle, expectedUpgradeInDays)
	if err != nil {
		return DontBuy
	}
	return bucket(p)
}

func bucket(p float64) Status {
	switch {
	case p > buyNowAbove:
		return BuyNow
	case p > okayBuyAbove:
		return OkayBuy
	case p > waitAbove:
		return Wait
	default:
		return DontBuy
	}
}
