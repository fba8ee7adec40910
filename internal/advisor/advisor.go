// Package advisor holds the SwarnaMitra tool catalog: thirteen gold-advisory
// tools built over static reference tables, plus the live spot-price tool
// backed by the metals adapter. Handlers are pure functions of their
// arguments except for the price tool.
package advisor

import (
	"strings"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/metals"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// Deps carries the external dependencies the catalog needs.
type Deps struct {
	// Quotes feeds the live gold price tool. May be a cached source.
	Quotes metals.Source
}

// Catalog returns the full tool set in registration order.
func Catalog(deps Deps) []tool.Descriptor {
	return []tool.Descriptor{
		priceTool(deps.Quotes),
		jewellersTool(),
		schemesTool(),
		localJewellersTool(),
		loansTool(),
		hallmarkTool(),
		banksTool(),
		feesTool(),
		planTool(),
		portfolioTool(),
		riskTool(),
		taxTool(),
		sipTool(),
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
