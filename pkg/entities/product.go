package entities

import (
	"github.com/shopspring/decimal"
)

// AdRewardCredits is granted for watching one reward video
const AdRewardCredits int64 = 5

// AdRewardProductID identifies the reward video grant
const AdRewardProductID = "reward_ad"

// Product is a credit package sold in the crystal store
type Product struct {
	ID      string
	Base    int64
	Bonus   int64
	Price   decimal.Decimal
	Popular bool
}

// Total is the number of credits granted on purchase
func (p Product) Total() int64 {
	return p.Base + p.Bonus
}

// DisplayPrice formats the price in dollars
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}
