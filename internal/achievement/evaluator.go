// Package achievement evaluates game-end statistics against a fixed
// medal catalog and emits tier upgrades.
package achievement

import "github.com/mirela/brainplay/internal/models"

// Upgrade is one medal whose tier should be raised.
type Upgrade struct {
	MedalID string `json:"medalId"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
}

// Evaluate returns the medals whose highest currently-satisfied tier
// outranks the tier in currentlyEarned (medal id -> tier, absent means
// not earned). Predicates are checked gold first so only the top tier is
// reported. Evaluation is idempotent: with unchanged inputs a second
// call returns nothing new, because the first call's upgrades are
// assumed persisted into currentlyEarned by the caller.
func Evaluate(ctx Context, currentlyEarned map[string]string) []Upgrade {
	var upgrades []Upgrade
	for _, medal := range Catalog {
		tier := highestTier(medal, ctx)
		if tier == "" {
			continue
		}
		if models.TierRank(tier) > models.TierRank(currentlyEarned[medal.ID]) {
			upgrades = append(upgrades, Upgrade{MedalID: medal.ID, Name: medal.Name, Tier: tier})
		}
	}
	return upgrades
}

func highestTier(medal Medal, ctx Context) string {
	switch {
	case medal.Gold != nil && medal.Gold(ctx):
		return models.TierGold
	case medal.Silver != nil && medal.Silver(ctx):
		return models.TierSilver
	case medal.Bronze != nil && medal.Bronze(ctx):
		return models.TierBronze
	default:
		return ""
	}
}
