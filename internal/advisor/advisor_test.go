package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/metals"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

type staticQuotes struct {
	quote metals.Quote
	err   error
}

func (s staticQuotes) SpotINR(context.Context) (metals.Quote, error) {
	return s.quote, s.err
}

func invoke(t *testing.T, d tool.Descriptor, args string) tool.Result {
	t.Helper()
	return d.Handler(context.Background(), json.RawMessage(args))
}

func findTool(t *testing.T, name string) tool.Descriptor {
	t.Helper()
	for _, d := range Catalog(Deps{Quotes: staticQuotes{}}) {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("tool %q not in catalog", name)
	return tool.Descriptor{}
}

func TestCatalogComplete(t *testing.T) {
	want := []string{
		"get_indian_gold_price",
		"recommend_indian_jewellers",
		"find_indian_gold_schemes",
		"locate_local_jewellers",
		"compare_gold_loan_options",
		"check_hallmark_certification",
		"get_bank_gold_options",
		"calculate_indian_fees_costs",
		"create_indian_investment_plan",
		"portfolio_allocation_india",
		"risk_assessment_indian",
		"indian_tax_implications",
		"sip_gold_planning",
	}

	catalog := Catalog(Deps{Quotes: staticQuotes{}})
	if len(catalog) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(catalog), len(want))
	}
	seen := map[string]bool{}
	for _, d := range catalog {
		seen[d.Name] = true
		if d.Handler == nil {
			t.Errorf("tool %q has nil handler", d.Name)
		}
		if d.Parameters == nil {
			t.Errorf("tool %q has no parameter schema", d.Name)
		}
	}
	for _, name := range want {
		if !seen[name] {
			t.Errorf("catalog missing %q", name)
		}
	}
}

func TestPriceToolComputesCityTable(t *testing.T) {
	// 311035 INR/oz makes the per-gram 24k price exactly 10000.
	quotes := staticQuotes{quote: metals.Quote{
		INRPerOunce: 311035,
		FetchedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}

	var priceTool tool.Descriptor
	for _, d := range Catalog(Deps{Quotes: quotes}) {
		if d.Name == "get_indian_gold_price" {
			priceTool = d
		}
	}

	res := invoke(t, priceTool, `{}`)
	if !res.Success {
		t.Fatalf("price tool failed: %s", res.Message)
	}
	prices, ok := res.Data.([]CityPrice)
	if !ok {
		t.Fatalf("data type = %T", res.Data)
	}
	if len(prices) != 6 {
		t.Fatalf("cities = %d, want 6", len(prices))
	}

	delhi := prices[0]
	if delhi.City != "Delhi" {
		t.Fatalf("first city = %s", delhi.City)
	}
	// Delhi premium 2%: 10000 * 1.02 = 10200.
	if delhi.Gold24K != 10200 {
		t.Errorf("Delhi 24k = %d, want 10200", delhi.Gold24K)
	}
	if want := int64(math.Round(10200 * 0.916)); delhi.Gold22K != want {
		t.Errorf("Delhi 22k = %d, want %d", delhi.Gold22K, want)
	}
	if delhi.Silver != 125 {
		t.Errorf("Delhi silver = %d, want 125", delhi.Silver)
	}
}

func TestPriceToolSurfacesSourceFailure(t *testing.T) {
	quotes := staticQuotes{err: errors.New("upstream down")}
	var priceTool tool.Descriptor
	for _, d := range Catalog(Deps{Quotes: quotes}) {
		if d.Name == "get_indian_gold_price" {
			priceTool = d
		}
	}

	res := invoke(t, priceTool, `{}`)
	if res.Success {
		t.Fatal("success = true, want degraded failure result")
	}
	if res.Message == "" {
		t.Error("expected a failure message")
	}
}

func TestJewellersCityFilterKeepsNationalChains(t *testing.T) {
	res := invoke(t, findTool(t, "recommend_indian_jewellers"), `{"city":"Mumbai"}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	jewellers := res.Data.([]Jeweller)
	for _, j := range jewellers {
		if j.City != "Pan India" && !containsFold(j.City, "Mumbai") {
			t.Errorf("unexpected jeweller city %q", j.City)
		}
	}
	var panIndia bool
	for _, j := range jewellers {
		if j.City == "Pan India" {
			panIndia = true
		}
	}
	if !panIndia {
		t.Error("national chains should survive a city filter")
	}
}

func TestLocateLocalJewellersUnknownCity(t *testing.T) {
	res := invoke(t, findTool(t, "locate_local_jewellers"), `{"city":"Pune"}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if got := res.Data.([]Jeweller); len(got) != 0 {
		t.Errorf("jewellers = %d, want 0 for unknown city", len(got))
	}
}

func TestSchemesTypeFilter(t *testing.T) {
	res := invoke(t, findTool(t, "find_indian_gold_schemes"), `{"type":"SIP"}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	for _, s := range res.Data.([]GoldScheme) {
		if s.Type != "SIP" {
			t.Errorf("scheme %s type = %s, want SIP", s.SchemeName, s.Type)
		}
	}
}

func TestLoansFilteredAndSortedByRate(t *testing.T) {
	res := invoke(t, findTool(t, "compare_gold_loan_options"), `{"loanAmount":20000}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	opts := res.Data.([]GoldLoanOption)
	if len(opts) == 0 {
		t.Fatal("no loan options for 20000")
	}
	for i, opt := range opts {
		if 20000 < float64(opt.MinLoanAmount) || 20000 > float64(opt.MaxLoanAmount) {
			t.Errorf("%s does not cover 20000", opt.Provider)
		}
		if i > 0 && opts[i-1].InterestRate > opt.InterestRate {
			t.Error("options not sorted by interest rate")
		}
	}
}

func TestHallmarkVerification(t *testing.T) {
	d := findTool(t, "check_hallmark_certification")

	res := invoke(t, d, `{"certificationNumber":"AB1234CD567890"}`)
	info := res.Data.(HallmarkInfo)
	if !info.IsValid {
		t.Errorf("valid-format number rejected: %s", info.Message)
	}

	res = invoke(t, d, `{"certificationNumber":"bogus"}`)
	info = res.Data.(HallmarkInfo)
	if info.IsValid {
		t.Error("malformed number accepted")
	}

	// No number at all returns guidelines, still a success result.
	res = invoke(t, d, `{}`)
	if !res.Success {
		t.Fatalf("guideline path failed: %s", res.Message)
	}
}

func TestFeesCalculation(t *testing.T) {
	res := invoke(t, findTool(t, "calculate_indian_fees_costs"),
		`{"goldPrice":10000,"quantity":2,"itemType":"coin"}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	calc := res.Data.(CostCalculation)

	// base 20000, making 2% = 400, GST 3% of 20400 = 612, other 200 (<=10g).
	if calc.BaseAmount != 20000 {
		t.Errorf("base = %d, want 20000", calc.BaseAmount)
	}
	if calc.MakingCharges != 400 {
		t.Errorf("making = %d, want 400", calc.MakingCharges)
	}
	if calc.GST != 612 {
		t.Errorf("gst = %d, want 612", calc.GST)
	}
	if calc.OtherCharges != 200 {
		t.Errorf("other = %d, want 200", calc.OtherCharges)
	}
	if calc.TotalAmount != 21212 {
		t.Errorf("total = %d, want 21212", calc.TotalAmount)
	}
}

func TestFeesLargeQuantitySurcharge(t *testing.T) {
	res := invoke(t, findTool(t, "calculate_indian_fees_costs"),
		`{"goldPrice":10000,"quantity":12,"itemType":"bar"}`)
	calc := res.Data.(CostCalculation)
	if calc.OtherCharges != 500 {
		t.Errorf("other = %d, want 500 above 10g", calc.OtherCharges)
	}
}

func TestFeesRejectsNonPositiveInputs(t *testing.T) {
	res := invoke(t, findTool(t, "calculate_indian_fees_costs"),
		`{"goldPrice":0,"quantity":2}`)
	if res.Success {
		t.Fatal("zero goldPrice accepted")
	}
}

func TestRiskAssessmentBoundaries(t *testing.T) {
	d := findTool(t, "risk_assessment_indian")

	// Max everything: 3+3+3+3+3 = 15, aggressive.
	res := invoke(t, d, `{"age":25,"monthlyIncome":150000,"investmentExperience":"advanced","investmentGoal":"growth","liquidityNeeds":"low"}`)
	ra := res.Data.(RiskAssessment)
	if ra.Score != 15 || ra.RiskLevel != RiskAggressive {
		t.Errorf("score=%d level=%s, want 15/aggressive", ra.Score, ra.RiskLevel)
	}

	// Min everything: 0+0+0 experience none + preservation 1 + high 1 = 2.
	res = invoke(t, d, `{"age":65,"monthlyIncome":20000,"investmentExperience":"none","investmentGoal":"preservation","liquidityNeeds":"high"}`)
	ra = res.Data.(RiskAssessment)
	if ra.Score != 2 || ra.RiskLevel != RiskConservative {
		t.Errorf("score=%d level=%s, want 2/conservative", ra.Score, ra.RiskLevel)
	}
}

func TestPortfolioAllocationActions(t *testing.T) {
	d := findTool(t, "portfolio_allocation_india")

	// Moderate target 20%; holding 5% of 1L -> buy.
	res := invoke(t, d, `{"riskLevel":"moderate","totalPortfolioValue":100000,"currentGoldHolding":5000}`)
	advice := res.Data.(PortfolioAdvice)
	if advice.Action != "buy" {
		t.Errorf("action = %s, want buy", advice.Action)
	}
	if advice.TargetAmount != 20000 {
		t.Errorf("target = %d, want 20000", advice.TargetAmount)
	}

	// Holding 40% -> sell.
	res = invoke(t, d, `{"riskLevel":"moderate","totalPortfolioValue":100000,"currentGoldHolding":40000}`)
	if advice := res.Data.(PortfolioAdvice); advice.Action != "sell" {
		t.Errorf("action = %s, want sell", advice.Action)
	}

	// Holding 18% is inside the ±5 band -> hold.
	res = invoke(t, d, `{"riskLevel":"moderate","totalPortfolioValue":100000,"currentGoldHolding":18000}`)
	if advice := res.Data.(PortfolioAdvice); advice.Action != "hold" {
		t.Errorf("action = %s, want hold", advice.Action)
	}
}

func TestSIPProjection(t *testing.T) {
	res := invoke(t, findTool(t, "sip_gold_planning"),
		`{"riskLevel":"moderate","monthlyAmount":5000,"duration":24}`)
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	plan := res.Data.(SIPPlan)
	if plan.TotalInvested != 120000 {
		t.Errorf("total = %d, want 120000", plan.TotalInvested)
	}
	// 120000 * 1.1^2 = 145200.
	if plan.ExpectedValue != 145200 {
		t.Errorf("expected = %d, want 145200", plan.ExpectedValue)
	}
}

func TestTaxRulesLookup(t *testing.T) {
	d := findTool(t, "indian_tax_implications")

	res := invoke(t, d, `{}`)
	if rules := res.Data.([]TaxRule); len(rules) != 4 {
		t.Errorf("rules = %d, want 4", len(rules))
	}

	res = invoke(t, d, `{"investmentType":"sgb"}`)
	rules := res.Data.([]TaxRule)
	if len(rules) != 1 || rules[0].InvestmentType != "sgb" {
		t.Errorf("sgb lookup returned %v", rules)
	}

	res = invoke(t, d, `{"investmentType":"crypto"}`)
	if res.Success {
		t.Error("unknown investment type accepted")
	}
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{100000, "1,00,000"},
		{12345678, "1,23,45,678"},
		{-52000, "-52,000"},
	}
	for _, tc := range cases {
		if got := formatINR(tc.in); got != tc.want {
			t.Errorf("formatINR(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
