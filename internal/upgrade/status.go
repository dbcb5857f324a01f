package upgrade

// Status is the purchase-timing recommendation shown for a product.
type Status string

const (
	BuyNow  Status = "Buy Now"
	OkayBuy Status = "Okay Buy"
	Wait    Status = "Wait"
	DontBuy Status = "Don't Buy"
)

// Statuses lists every status from best to worst.
var Statuses = []Status{BuyNow, OkayBuy, Wait, DontBuy}

// Rank orders statuses so that a higher rank is a better time to buy.
// Unknown values rank below DontBuy.
func (s Status) Rank() int {
	switch s {
	case BuyNow:
		return 3
	case OkayBuy:
		return 2
	case Wait:
		return 1
	case DontBuy:
		return 0
	default:
		return -1
	}
}

// Color returns the badge colour for the status.
func (s Status) Color() string {
	switch s {
	case BuyNow:
		return "#39b54a"
	case OkayBuy:
		return "#b6d957"
	case Wait:
		return "#f7941d"
	case DontBuy:
		return "#ed1c24"
	default:
		return "#333"
	}
}

func (s Status) String() string {
	return string(s)
}
