package config

// LoyaltyConfig contains loyalty program tuning.
type LoyaltyConfig struct {
	// PointsPerUnit is the number of points credited per ordered unit.
	PointsPerUnit int `env:"LOYALTY_POINTS_PER_UNIT" envDefault:"100"`

	// RewardThreshold is the balance at which a free reward unlocks, and the
	// amount debited when it is redeemed.
	RewardThreshold int `env:"LOYALTY_REWARD_THRESHOLD" envDefault:"1000"`
}

// Sanitize applies guardrails to loyalty configuration values.
func (l *LoyaltyConfig) Sanitize() {
	if l.PointsPerUnit < 1 {
		l.PointsPerUnit = 100
	}
	if l.RewardThreshold < 1 {
		l.RewardThreshold = 1000
	}
}
