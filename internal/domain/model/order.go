package model

// OrderReceipt summarizes a placed order: the points credited and whether the
// new balance crossed the free-reward threshold.
type OrderReceipt struct {
	OrderID          string `json:"order_id"`
	PointsEarned     int    `json:"points_earned"`
	Balance          int    `json:"balance"`
	FreeRewardEarned bool   `json:"free_reward_earned"`
}

// RedemptionResult summarizes a reward redemption: the debited balance and
// the cart state after the lowest-priced line was zeroed.
type RedemptionResult struct {
	Balance int       `json:"balance"`
	Cart    CartState `json:"cart"`
}
