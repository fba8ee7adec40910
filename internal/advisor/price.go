package advisor

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/metals"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// CityPrice is the per-city quote row returned by get_indian_gold_price.
type CityPrice struct {
	City        string `json:"city"`
	Gold24K     int64  `json:"gold_24k"`
	Gold22K     int64  `json:"gold_22k"`
	Gold18K     int64  `json:"gold_18k"`
	Silver      int64  `json:"silver"`
	LastUpdated string `json:"last_updated"`
}

// Purity and market-adjustment factors for retail prices in Indian cities.
const (
	purity22K         = 0.916
	purity18K         = 0.75
	silverGoldDivisor = 80
)

var cityPremiums = []struct {
	City    string
	Premium float64
}{
	{"Delhi", 0.02},
	{"Mumbai", 0.025},
	{"Chennai", 0.015},
	{"Kolkata", 0.02},
	{"Bangalore", 0.03},
	{"Hyderabad", 0.025},
}

func priceTool(quotes metals.Source) tool.Descriptor {
	return tool.Descriptor{
		Name:        "get_indian_gold_price",
		Description: "Get the current gold prices in major Indian cities in INR",
		Parameters:  tool.ObjectSchema(map[string]any{}),
		Handler: func(ctx context.Context, _ json.RawMessage) tool.Result {
			quote, err := quotes.SpotINR(ctx)
			if err != nil {
				return tool.Fail("failed to fetch current gold prices: %v", err)
			}
			return tool.Ok(cityPrices(quote), "Current gold prices across major Indian cities")
		},
	}
}

func cityPrices(quote metals.Quote) []CityPrice {
	perGram := quote.GramPrice24K()
	updated := quote.FetchedAt.UTC().Format(time.RFC3339)

	prices := make([]CityPrice, 0, len(cityPremiums))
	for _, cp := range cityPremiums {
		base := perGram * (1 + cp.Premium)
		prices = append(prices, CityPrice{
			City:        cp.City,
			Gold24K:     int64(math.Round(base)),
			Gold22K:     int64(math.Round(base * purity22K)),
			Gold18K:     int64(math.Round(base * purity18K)),
			Silver:      int64(math.Round(perGram / silverGoldDivisor)),
			LastUpdated: updated,
		})
	}
	return prices
}
