package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// GoldScheme describes a jeweller or bank gold savings plan.
type GoldScheme struct {
	Provider     string   `json:"provider"`
	SchemeName   string   `json:"schemeName"`
	MinAmount    int      `json:"minAmount"`
	MaxAmount    int      `json:"maxAmount"`
	Tenure       string   `json:"tenure"`
	Benefits     []string `json:"benefits"`
	InterestRate float64  `json:"interestRate,omitempty"`
	Type         string   `json:"type"`
	City         string   `json:"city,omitempty"`
}

var goldSchemes = []GoldScheme{
	{
		Provider: "Tanishq", SchemeName: "Golden Harvest",
		MinAmount: 2000, MaxAmount: 50000, Tenure: "11 months + 1 month bonus",
		Benefits: []string{"No making charges on select items", "Bonus month contribution"},
		Type:     "Recurring",
	},
	{
		Provider: "Tanishq", SchemeName: "Anushka SIP",
		MinAmount: 1000, MaxAmount: 25000, Tenure: "Flexible (6-24 months)",
		Benefits: []string{"Monthly SIP", "Digital gold accumulation", "Convert to jewellery anytime"},
		Type:     "SIP",
	},
	{
		Provider: "Kalyan Jewellers", SchemeName: "My Kalyan Gold Scheme",
		MinAmount: 1000, MaxAmount: 100000, Tenure: "11 months",
		Benefits: []string{"Extra gold worth 1 month installment", "Flexible payment dates"},
		Type:     "Recurring",
	},
	{
		Provider: "PC Jeweller", SchemeName: "Gold Plus",
		MinAmount: 2000, MaxAmount: 200000, Tenure: "12-36 months",
		Benefits: []string{"Bonus gold on completion", "Insurance coverage", "Flexible withdrawal"},
		Type:     "Flexible",
	},
	{
		Provider: "SBI", SchemeName: "SBI Gold Deposit Scheme",
		MinAmount: 500000, MaxAmount: 10000000, Tenure: "1-3 years",
		Benefits:     []string{"Interest on gold deposits", "Tax benefits", "Loan against deposits"},
		InterestRate: 2.5,
		Type:         "Lump Sum",
	},
	{
		Provider: "HDFC Bank", SchemeName: "HDFC Gold SIP",
		MinAmount: 1000, MaxAmount: 50000, Tenure: "12-60 months",
		Benefits: []string{"Monthly gold accumulation", "Digital gold storage", "No making charges"},
		Type:     "SIP",
	},
	{
		Provider: "Paytm Gold", SchemeName: "Digital Gold SIP",
		MinAmount: 100, MaxAmount: 200000, Tenure: "Flexible",
		Benefits: []string{"Buy from ₹100", "24K pure gold", "Home delivery available"},
		Type:     "SIP",
	},
	{
		Provider: "PhonePe Gold", SchemeName: "Auto-Buy Gold",
		MinAmount: 500, MaxAmount: 100000, Tenure: "Flexible",
		Benefits: []string{"Automated purchases", "No storage issues", "Instant selling"},
		Type:     "SIP",
	},
	{
		Provider: "Joyalukkas", SchemeName: "Joy Gold Plus",
		MinAmount: 3000, MaxAmount: 300000, Tenure: "11 months",
		Benefits: []string{"100% buyback guarantee", "Extra gold worth 75% of 1 month"},
		Type:     "Recurring",
		City:     "Chennai",
	},
}

func schemesTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "find_indian_gold_schemes",
		Description: "Find gold savings schemes, SIPs, and monthly investment plans",
		Parameters: tool.ObjectSchema(map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []string{"SIP", "Recurring", "Lump Sum", "Flexible"},
				"description": "Type of gold investment scheme",
			},
			"city": map[string]any{
				"type":        "string",
				"description": "City for location-specific schemes",
			},
		}),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				Type string `json:"type"`
				City string `json:"city"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("find_indian_gold_schemes: %v", err)
			}

			matches := make([]GoldScheme, 0, len(goldSchemes))
			for _, s := range goldSchemes {
				if in.Type != "" && s.Type != in.Type {
					continue
				}
				if in.City != "" && s.City != "" && !containsFold(s.City, in.City) {
					continue
				}
				matches = append(matches, s)
			}

			return tool.Ok(matches, fmt.Sprintf("Found %d gold investment schemes", len(matches)))
		},
	}
}
