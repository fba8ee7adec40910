package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// GoldLoanOption describes a loan-against-gold product.
type GoldLoanOption struct {
	Provider      string   `json:"provider"`
	InterestRate  float64  `json:"interestRate"`
	LoanToValue   int      `json:"loanToValue"`
	ProcessingFee float64  `json:"processingFee"`
	MinLoanAmount int      `json:"minLoanAmount"`
	MaxLoanAmount int      `json:"maxLoanAmount"`
	Tenure        string   `json:"tenure"`
	Features      []string `json:"features"`
}

var goldLoanOptions = []GoldLoanOption{
	{
		Provider: "Muthoot Finance", InterestRate: 12.5, LoanToValue: 75,
		ProcessingFee: 1.5, MinLoanAmount: 1500, MaxLoanAmount: 50000000,
		Tenure:   "4-36 months",
		Features: []string{"Quick approval", "Flexible tenure", "Part payment allowed"},
	},
	{
		Provider: "Manappuram Finance", InterestRate: 12.0, LoanToValue: 80,
		ProcessingFee: 1.0, MinLoanAmount: 2000, MaxLoanAmount: 25000000,
		Tenure:   "3-24 months",
		Features: []string{"Low interest", "High LTV", "Online application"},
	},
	{
		Provider: "HDFC Bank Gold Loan", InterestRate: 10.5, LoanToValue: 70,
		ProcessingFee: 0.5, MinLoanAmount: 25000, MaxLoanAmount: 100000000,
		Tenure:   "6-36 months",
		Features: []string{"Bank credibility", "Competitive rates", "Doorstep service"},
	},
	{
		Provider: "ICICI Bank Gold Loan", InterestRate: 11.0, LoanToValue: 70,
		ProcessingFee: 0.75, MinLoanAmount: 10000, MaxLoanAmount: 50000000,
		Tenure:   "6-24 months",
		Features: []string{"Quick disbursal", "Flexible EMI", "Digital process"},
	},
	{
		Provider: "Federal Bank Gold Loan", InterestRate: 11.5, LoanToValue: 75,
		ProcessingFee: 0.5, MinLoanAmount: 5000, MaxLoanAmount: 20000000,
		Tenure:   "6-36 months",
		Features: []string{"Regional presence", "Personal service", "Quick approval"},
	},
	{
		Provider: "Axis Bank Gold Loan", InterestRate: 11.25, LoanToValue: 75,
		ProcessingFee: 1.0, MinLoanAmount: 25000, MaxLoanAmount: 25000000,
		Tenure:   "12-24 months",
		Features: []string{"Digital application", "Same day approval", "Flexible repayment"},
	},
}

func loansTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "compare_gold_loan_options",
		Description: "Compare gold loan providers and interest rates in India",
		Parameters: tool.ObjectSchema(map[string]any{
			"loanAmount": map[string]any{
				"type":        "number",
				"description": "Desired loan amount in INR",
			},
		}),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				LoanAmount float64 `json:"loanAmount"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("compare_gold_loan_options: %v", err)
			}

			matches := make([]GoldLoanOption, 0, len(goldLoanOptions))
			for _, opt := range goldLoanOptions {
				if in.LoanAmount > 0 &&
					(in.LoanAmount < float64(opt.MinLoanAmount) || in.LoanAmount > float64(opt.MaxLoanAmount)) {
					continue
				}
				matches = append(matches, opt)
			}
			sort.Slice(matches, func(i, j int) bool {
				return matches[i].InterestRate < matches[j].InterestRate
			})

			msg := "All available gold loan options"
			if in.LoanAmount > 0 {
				msg = fmt.Sprintf("Gold loan options for ₹%s", formatINR(in.LoanAmount))
			}
			return tool.Ok(matches, msg)
		},
	}
}
