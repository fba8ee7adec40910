package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// BankGoldOption describes a bank-distributed gold investment product.
type BankGoldOption struct {
	Bank        string   `json:"bank"`
	ProductName string   `json:"productName"`
	Type        string   `json:"type"`
	MinAmount   int      `json:"minAmount"`
	Returns     string   `json:"returns"`
	Tenure      string   `json:"tenure"`
	Features    []string `json:"features"`
	TaxBenefit  bool     `json:"taxBenefit"`
}

var bankGoldOptions = []BankGoldOption{
	{
		Bank: "State Bank of India (SBI)", ProductName: "SBI Gold ETF", Type: "ETF",
		MinAmount: 500, Returns: "Tracks gold price movement", Tenure: "Open-ended",
		Features: []string{"Low expense ratio", "High liquidity", "Demat account required"},
	},
	{
		Bank: "State Bank of India (SBI)", ProductName: "Sovereign Gold Bonds", Type: "Bond",
		MinAmount: 5000, Returns: "2.5% annual interest + gold price appreciation",
		Tenure:   "8 years (exit after 5 years)",
		Features: []string{"Government backed", "Tax benefits", "No storage issues"},
		TaxBenefit: true,
	},
	{
		Bank: "HDFC Bank", ProductName: "HDFC Gold ETF", Type: "ETF",
		MinAmount: 1000, Returns: "Tracks domestic gold prices", Tenure: "Open-ended",
		Features: []string{"Easy trading", "No making charges", "Pure gold investment"},
	},
	{
		Bank: "HDFC Bank", ProductName: "HDFC Gold Fund", Type: "SIP",
		MinAmount: 1000, Returns: "Gold price linked returns", Tenure: "Flexible",
		Features: []string{"Monthly SIP option", "Professional management", "Diversified portfolio"},
	},
	{
		Bank: "ICICI Bank", ProductName: "ICICI Prudential Gold ETF", Type: "ETF",
		MinAmount: 1000, Returns: "Gold price movement", Tenure: "Open-ended",
		Features: []string{"Low tracking error", "High liquidity", "Transparent pricing"},
	},
	{
		Bank: "ICICI Bank", ProductName: "iWish Flexible SIP", Type: "SIP",
		MinAmount: 500, Returns: "Market linked", Tenure: "1-30 years",
		Features: []string{"Goal-based investing", "Flexible amounts", "Auto-investment"},
	},
	{
		Bank: "Axis Bank", ProductName: "Axis Gold ETF", Type: "ETF",
		MinAmount: 1000, Returns: "Domestic gold price tracking", Tenure: "Open-ended",
		Features: []string{"Low expense ratio", "Easy liquidity", "Online trading"},
	},
	{
		Bank: "Kotak Mahindra Bank", ProductName: "Kotak Gold ETF", Type: "ETF",
		MinAmount: 500, Returns: "Gold price linked", Tenure: "Open-ended",
		Features: []string{"Fractional gold ownership", "No storage hassles", "Regulated investment"},
	},
	{
		Bank: "Bank of India", ProductName: "BOI AXA Gold ETF", Type: "ETF",
		MinAmount: 1000, Returns: "Tracks gold performance", Tenure: "Open-ended",
		Features: []string{"Backed by physical gold", "Easy redemption", "Cost effective"},
	},
}

func banksTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "get_bank_gold_options",
		Description: "Find gold investment options through Indian banks (SBI, HDFC, etc.)",
		Parameters: tool.ObjectSchema(map[string]any{
			"bank": map[string]any{
				"type":        "string",
				"description": "Specific bank name (optional)",
			},
		}),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				Bank string `json:"bank"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("get_bank_gold_options: %v", err)
			}

			matches := bankGoldOptions
			if in.Bank != "" {
				matches = nil
				for _, opt := range bankGoldOptions {
					if containsFold(opt.Bank, in.Bank) {
						matches = append(matches, opt)
					}
				}
			}

			msg := "All bank gold investment options"
			if in.Bank != "" {
				msg = fmt.Sprintf("Gold investment options from %s", in.Bank)
			}
			return tool.Ok(matches, msg)
		},
	}
}
