package models

// PricingPlan describes one tier on the pricing page. Prices are
// monthly USD. The catalog is static; no billing is wired behind it.
type PricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

var PricingPlans = []PricingPlan{
	{
		ID:          PlanStarter,
		Name:        "Starter",
		Price:       29,
		Description: "Perfect for small businesses",
		Features: []string{
			"5,000 Messages/month",
			"3 Platform Integrations",
			"Basic Analytics",
			"Email Support",
			"Template Library",
		},
	},
	{
		ID:          PlanProfessional,
		Name:        "Professional",
		Price:       99,
		Description: "For growing businesses",
		Features: []string{
			"25,000 Messages/month",
			"All Platform Integrations",
			"Advanced Analytics",
			"Priority Support",
			"A/B Testing",
			"Custom Automations",
			"Team Collaboration",
		},
		Popular: true,
	},
	{
		ID:          PlanEnterprise,
		Name:        "Enterprise",
		Price:       299,
		Description: "For large organizations",
		Features: []string{
			"Unlimited Messages",
			"All Platforms + API Access",
			"Custom Analytics",
			"24/7 Phone Support",
			"Advanced Automations",
			"White-label Options",
			"Dedicated Manager",
		},
	},
}
