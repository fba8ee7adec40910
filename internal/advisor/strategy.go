package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// Risk-profile labels shared by the strategy tools.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

var riskLevelSchema = map[string]any{
	"type":        "string",
	"enum":        []string{RiskConservative, RiskModerate, RiskAggressive},
	"description": "Investor risk profile",
}

// Target gold share of a portfolio per risk profile, with a ±5% band.
const (
	goldTargetConservative = 15.0
	goldTargetModerate     = 20.0
	goldTargetAggressive   = 25.0
	goldTargetBand         = 5.0
)

func goldTargetPercent(riskLevel string) float64 {
	switch strings.ToLower(riskLevel) {
	case RiskAggressive:
		return goldTargetAggressive
	case RiskModerate:
		return goldTargetModerate
	default:
		return goldTargetConservative
	}
}

// InvestmentPlan is the personalised strategy produced by
// create_indian_investment_plan.
type InvestmentPlan struct {
	RiskLevel         string   `json:"riskLevel"`
	InvestmentAmount  float64  `json:"investmentAmount"`
	TimeHorizonYears  int      `json:"timeHorizonYears"`
	GoldAllocationPct float64  `json:"goldAllocationPct"`
	GoldAmount        int64    `json:"goldAmount"`
	Vehicles          []string `json:"vehicles"`
	MonthlyBudget     int64    `json:"monthlyBudget,omitempty"`
	Steps             []string `json:"steps"`
}

func planTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "create_indian_investment_plan",
		Description: "Generate personalized gold investment strategies for Indian investors",
		Parameters: tool.ObjectSchema(map[string]any{
			"riskLevel": riskLevelSchema,
			"investmentAmount": map[string]any{
				"type":        "number",
				"description": "Total amount available to invest in INR",
			},
			"timeHorizon": map[string]any{
				"type":        "number",
				"description": "Investment horizon in years",
			},
			"monthlyIncome": map[string]any{
				"type":        "number",
				"description": "Monthly income in INR (optional, enables budget advice)",
			},
		}, "riskLevel", "investmentAmount", "timeHorizon"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				RiskLevel        string  `json:"riskLevel"`
				InvestmentAmount float64 `json:"investmentAmount"`
				TimeHorizon      float64 `json:"timeHorizon"`
				MonthlyIncome    float64 `json:"monthlyIncome"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("create_indian_investment_plan: %v", err)
			}
			if in.InvestmentAmount <= 0 || in.TimeHorizon <= 0 {
				return tool.Fail("investmentAmount and timeHorizon must be positive")
			}

			pct := goldTargetPercent(in.RiskLevel)
			goldAmount := in.InvestmentAmount * pct / 100

			var vehicles []string
			switch strings.ToLower(in.RiskLevel) {
			case RiskAggressive:
				vehicles = []string{"Gold ETFs", "Digital gold SIP", "Gold mutual funds"}
			case RiskModerate:
				vehicles = []string{"Sovereign Gold Bonds", "Gold ETFs", "Digital gold"}
			default:
				vehicles = []string{"Sovereign Gold Bonds", "Bank gold deposit schemes", "Physical coins/bars"}
			}

			plan := InvestmentPlan{
				RiskLevel:         strings.ToLower(in.RiskLevel),
				InvestmentAmount:  in.InvestmentAmount,
				TimeHorizonYears:  int(in.TimeHorizon),
				GoldAllocationPct: pct,
				GoldAmount:        int64(math.Round(goldAmount)),
				Vehicles:          vehicles,
				Steps: []string{
					fmt.Sprintf("Allocate ₹%s (%.0f%%) of the corpus to gold", formatINR(goldAmount), pct),
					"Prefer Sovereign Gold Bonds for any tranche held 5+ years (2.5% interest, tax-free maturity)",
					"Use ETFs or digital gold for the liquid tranche",
					fmt.Sprintf("Review allocation yearly over the %d-year horizon", int(in.TimeHorizon)),
				},
			}
			if in.MonthlyIncome > 0 {
				// Common planner guidance: cap gold SIP at ~10% of income.
				plan.MonthlyBudget = int64(math.Round(in.MonthlyIncome * 0.10))
			}

			return tool.Ok(plan, fmt.Sprintf("Investment plan for a %s profile over %d years",
				plan.RiskLevel, plan.TimeHorizonYears))
		},
	}
}

// PortfolioAdvice is the output of portfolio_allocation_india.
type PortfolioAdvice struct {
	RiskLevel       string  `json:"riskLevel"`
	TargetPct       float64 `json:"targetPct"`
	BandPct         float64 `json:"bandPct"`
	CurrentPct      float64 `json:"currentPct"`
	TargetAmount    int64   `json:"targetAmount"`
	AdjustmentINR   int64   `json:"adjustmentINR"`
	Action          string  `json:"action"`
	Recommendations []string `json:"recommendations"`
}

func portfolioTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "portfolio_allocation_india",
		Description: "Suggest optimal gold allocation considering Indian investment patterns",
		Parameters: tool.ObjectSchema(map[string]any{
			"riskLevel": riskLevelSchema,
			"totalPortfolioValue": map[string]any{
				"type":        "number",
				"description": "Total portfolio value in INR",
			},
			"currentGoldHolding": map[string]any{
				"type":        "number",
				"description": "Current gold holding value in INR (optional)",
			},
		}, "riskLevel", "totalPortfolioValue"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				RiskLevel           string  `json:"riskLevel"`
				TotalPortfolioValue float64 `json:"totalPortfolioValue"`
				CurrentGoldHolding  float64 `json:"currentGoldHolding"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("portfolio_allocation_india: %v", err)
			}
			if in.TotalPortfolioValue <= 0 {
				return tool.Fail("totalPortfolioValue must be positive")
			}

			target := goldTargetPercent(in.RiskLevel)
			targetAmount := in.TotalPortfolioValue * target / 100
			currentPct := in.CurrentGoldHolding / in.TotalPortfolioValue * 100
			diff := targetAmount - in.CurrentGoldHolding

			action := "hold"
			switch {
			case currentPct < target-goldTargetBand:
				action = "buy"
			case currentPct > target+goldTargetBand:
				action = "sell"
			}

			advice := PortfolioAdvice{
				RiskLevel:     strings.ToLower(in.RiskLevel),
				TargetPct:     target,
				BandPct:       goldTargetBand,
				CurrentPct:    math.Round(currentPct*100) / 100,
				TargetAmount:  int64(math.Round(targetAmount)),
				AdjustmentINR: int64(math.Round(diff)),
				Action:        action,
				Recommendations: []string{
					fmt.Sprintf("Target gold allocation: %.0f%% (±%.0f%%) of portfolio", target, goldTargetBand),
					"Split between Sovereign Gold Bonds (long term) and ETFs (liquidity)",
					"Rebalance when allocation drifts outside the band",
				},
			}
			return tool.Ok(advice, fmt.Sprintf("Recommended action: %s", action))
		},
	}
}

// RiskAssessment is the scored outcome of risk_assessment_indian. Score
// range is 0-15: <=7 conservative, <=11 moderate, above that aggressive.
type RiskAssessment struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	RiskLevel   string   `json:"riskLevel"`
	Factors     []string `json:"factors"`
	Suggestions []string `json:"suggestions"`
}

func riskTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "risk_assessment_indian",
		Description: "Assess user's risk tolerance specific to Indian market conditions",
		Parameters: tool.ObjectSchema(map[string]any{
			"age": map[string]any{
				"type":        "number",
				"description": "Investor age in years",
			},
			"monthlyIncome": map[string]any{
				"type":        "number",
				"description": "Monthly income in INR",
			},
			"investmentExperience": map[string]any{
				"type":        "string",
				"enum":        []string{"none", "beginner", "intermediate", "advanced"},
				"description": "Prior investment experience",
			},
			"investmentGoal": map[string]any{
				"type":        "string",
				"enum":        []string{"preservation", "balanced", "growth"},
				"description": "Primary investment goal",
			},
			"liquidityNeeds": map[string]any{
				"type":        "string",
				"enum":        []string{"high", "medium", "low"},
				"description": "How soon the money may be needed",
			},
		}, "age", "monthlyIncome", "investmentExperience", "investmentGoal", "liquidityNeeds"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				Age                  float64 `json:"age"`
				MonthlyIncome        float64 `json:"monthlyIncome"`
				InvestmentExperience string  `json:"investmentExperience"`
				InvestmentGoal       string  `json:"investmentGoal"`
				LiquidityNeeds       string  `json:"liquidityNeeds"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("risk_assessment_indian: %v", err)
			}
			if in.Age <= 0 {
				return tool.Fail("age must be positive")
			}

			score := 0
			var factors []string

			switch {
			case in.Age < 30:
				score += 3
				factors = append(factors, "Young investor: long runway to absorb volatility")
			case in.Age < 45:
				score += 2
				factors = append(factors, "Mid-career: moderate runway")
			case in.Age < 60:
				score++
				factors = append(factors, "Approaching retirement: shorter runway")
			default:
				factors = append(factors, "Retirement age: capital preservation matters most")
			}

			switch {
			case in.MonthlyIncome > 100000:
				score += 3
				factors = append(factors, "High income: strong capacity for risk")
			case in.MonthlyIncome > 50000:
				score += 2
				factors = append(factors, "Comfortable income")
			case in.MonthlyIncome > 25000:
				score++
				factors = append(factors, "Modest income: limited risk capacity")
			default:
				factors = append(factors, "Low income: prioritise safety and liquidity")
			}

			switch strings.ToLower(in.InvestmentExperience) {
			case "advanced":
				score += 3
			case "intermediate":
				score += 2
			case "beginner":
				score++
			}

			switch strings.ToLower(in.InvestmentGoal) {
			case "growth":
				score += 3
			case "balanced":
				score += 2
			case "preservation":
				score++
			}

			switch strings.ToLower(in.LiquidityNeeds) {
			case "low":
				score += 3
			case "medium":
				score += 2
			case "high":
				score++
			}

			level := RiskAggressive
			switch {
			case score <= 7:
				level = RiskConservative
			case score <= 11:
				level = RiskModerate
			}

			suggestions := map[string][]string{
				RiskConservative: {
					"Sovereign Gold Bonds and bank gold deposits",
					fmt.Sprintf("Keep gold near %.0f%% of the portfolio", goldTargetConservative),
				},
				RiskModerate: {
					"Mix of Sovereign Gold Bonds and Gold ETFs",
					fmt.Sprintf("Keep gold near %.0f%% of the portfolio", goldTargetModerate),
				},
				RiskAggressive: {
					"Gold ETFs and digital gold SIPs for flexibility",
					fmt.Sprintf("Gold up to %.0f%% of the portfolio", goldTargetAggressive),
				},
			}[level]

			return tool.Ok(RiskAssessment{
				Score:       score,
				MaxScore:    15,
				RiskLevel:   level,
				Factors:     factors,
				Suggestions: suggestions,
			}, fmt.Sprintf("Risk profile: %s (%d/15)", level, score))
		},
	}
}

// TaxRule describes Indian tax treatment of one gold investment form.
type TaxRule struct {
	InvestmentType string   `json:"investmentType"`
	ShortTerm      string   `json:"shortTerm"`
	LongTerm       string   `json:"longTerm"`
	GST            string   `json:"gst"`
	Notes          []string `json:"notes"`
}

var taxRules = []TaxRule{
	{
		InvestmentType: "physical",
		ShortTerm:      "Gains within 3 years taxed at slab rate",
		LongTerm:       "After 3 years: 20% LTCG with indexation benefit",
		GST:            "3% GST on purchase value plus making charges",
		Notes: []string{
			"Keep purchase invoices for cost-basis proof",
			"Wealth disclosures apply above prescribed holdings",
		},
	},
	{
		InvestmentType: "etf",
		ShortTerm:      "Gains within 3 years taxed at slab rate",
		LongTerm:       "After 3 years: 20% LTCG with indexation benefit",
		GST:            "No GST; brokerage and expense ratio apply",
		Notes: []string{
			"Held in demat form, no purity or storage risk",
		},
	},
	{
		InvestmentType: "sgb",
		ShortTerm:      "2.5% annual interest taxed at slab rate",
		LongTerm:       "Capital gains tax-free if held to 8-year maturity",
		GST:            "No GST",
		Notes: []string{
			"Early exit after year 5 via RBI buyback window",
			"Secondary-market sale before maturity attracts capital gains tax",
		},
	},
	{
		InvestmentType: "digital",
		ShortTerm:      "Gains within 3 years taxed at slab rate",
		LongTerm:       "After 3 years: 20% LTCG with indexation benefit",
		GST:            "3% GST on purchase",
		Notes: []string{
			"Platform storage terms vary; check custody period limits",
		},
	},
}

func taxTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "indian_tax_implications",
		Description: "Provide detailed information about Indian tax implications of gold investments",
		Parameters: tool.ObjectSchema(map[string]any{
			"investmentType": map[string]any{
				"type":        "string",
				"enum":        []string{"physical", "etf", "sgb", "digital"},
				"description": "Gold investment form (optional, all forms if omitted)",
			},
		}),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				InvestmentType string `json:"investmentType"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("indian_tax_implications: %v", err)
			}

			if in.InvestmentType == "" {
				return tool.Ok(taxRules, "Tax treatment of all gold investment forms")
			}
			for _, rule := range taxRules {
				if rule.InvestmentType == strings.ToLower(in.InvestmentType) {
					return tool.Ok([]TaxRule{rule}, fmt.Sprintf("Tax treatment for %s gold", rule.InvestmentType))
				}
			}
			return tool.Fail("unknown investment type %q", in.InvestmentType)
		},
	}
}

// SIPPlan is the projection produced by sip_gold_planning. Expected value
// assumes a 10% annual gold appreciation, compounded yearly.
type SIPPlan struct {
	RiskLevel     string   `json:"riskLevel"`
	MonthlyAmount float64  `json:"monthlyAmount"`
	DurationMonths int     `json:"durationMonths"`
	StartDate     string   `json:"startDate,omitempty"`
	TotalInvested int64    `json:"totalInvested"`
	ExpectedValue int64    `json:"expectedValue"`
	Platforms     []string `json:"platforms"`
}

const sipAnnualGrowth = 0.10

func sipTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "sip_gold_planning",
		Description: "Set up systematic investment plans for gold in India",
		Parameters: tool.ObjectSchema(map[string]any{
			"riskLevel": riskLevelSchema,
			"monthlyAmount": map[string]any{
				"type":        "number",
				"description": "Monthly SIP amount in INR",
			},
			"duration": map[string]any{
				"type":        "number",
				"description": "SIP duration in months",
			},
			"startDate": map[string]any{
				"type":        "string",
				"description": "Planned start date (optional)",
			},
		}, "riskLevel", "monthlyAmount", "duration"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				RiskLevel     string  `json:"riskLevel"`
				MonthlyAmount float64 `json:"monthlyAmount"`
				Duration      float64 `json:"duration"`
				StartDate     string  `json:"startDate"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("sip_gold_planning: %v", err)
			}
			if in.MonthlyAmount <= 0 || in.Duration <= 0 {
				return tool.Fail("monthlyAmount and duration must be positive")
			}

			months := int(in.Duration)
			total := in.MonthlyAmount * float64(months)
			years := float64(months) / 12
			expected := total * math.Pow(1+sipAnnualGrowth, years)

			var platforms []string
			switch strings.ToLower(in.RiskLevel) {
			case RiskAggressive:
				platforms = []string{"Paytm Gold", "PhonePe Gold", "Gold ETF SIP via broker"}
			case RiskModerate:
				platforms = []string{"HDFC Gold SIP", "Tanishq Anushka SIP", "Gold ETF SIP"}
			default:
				platforms = []string{"Tanishq Golden Harvest", "Kalyan My Kalyan Gold Scheme", "SGB tranches"}
			}

			return tool.Ok(SIPPlan{
				RiskLevel:      strings.ToLower(in.RiskLevel),
				MonthlyAmount:  in.MonthlyAmount,
				DurationMonths: months,
				StartDate:      in.StartDate,
				TotalInvested:  int64(math.Round(total)),
				ExpectedValue:  int64(math.Round(expected)),
				Platforms:      platforms,
			}, fmt.Sprintf("SIP of ₹%s/month for %d months", formatINR(in.MonthlyAmount), months))
		},
	}
}
