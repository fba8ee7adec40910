package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// Retail cost components for physical gold purchases.
const (
	makingChargeJewellery = 8.0
	makingChargeCoin      = 2.0
	makingChargeBar       = 1.0
	gstRatePercent        = 3.0

	// Flat hallmarking/handling charge, stepped at 10 grams.
	otherChargesLarge     = 500
	otherChargesSmall     = 200
	otherChargesThreshold = 10.0
)

// CostCalculation is the itemized purchase cost breakdown.
type CostCalculation struct {
	GoldPrice     float64  `json:"goldPrice"`
	Quantity      float64  `json:"quantity"`
	BaseAmount    int64    `json:"baseAmount"`
	MakingCharges int64    `json:"makingCharges"`
	GST           int64    `json:"gst"`
	OtherCharges  int64    `json:"otherCharges"`
	TotalAmount   int64    `json:"totalAmount"`
	Breakdown     []string `json:"breakdown"`
}

func feesTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "calculate_indian_fees_costs",
		Description: "Calculate total costs including making charges, GST, and premiums",
		Parameters: tool.ObjectSchema(map[string]any{
			"goldPrice": map[string]any{
				"type":        "number",
				"description": "Gold price per gram in INR",
			},
			"quantity": map[string]any{
				"type":        "number",
				"description": "Quantity in grams",
			},
			"makingChargeRate": map[string]any{
				"type":        "number",
				"description": "Making charge percentage (default: 8%)",
			},
			"itemType": map[string]any{
				"type":        "string",
				"enum":        []string{"jewellery", "coin", "bar"},
				"description": "Type of gold item (affects making charges)",
			},
		}, "goldPrice", "quantity"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				GoldPrice        float64 `json:"goldPrice"`
				Quantity         float64 `json:"quantity"`
				MakingChargeRate float64 `json:"makingChargeRate"`
				ItemType         string  `json:"itemType"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("calculate_indian_fees_costs: %v", err)
			}
			if in.GoldPrice <= 0 || in.Quantity <= 0 {
				return tool.Fail("goldPrice and quantity must be positive")
			}
			if in.ItemType == "" {
				in.ItemType = "jewellery"
			}

			calc := calculateFees(in.GoldPrice, in.Quantity, in.MakingChargeRate, in.ItemType)
			return tool.Ok(calc, fmt.Sprintf("Total cost calculated for %gg of %s", in.Quantity, in.ItemType))
		},
	}
}

func calculateFees(goldPrice, quantity, makingRate float64, itemType string) CostCalculation {
	if makingRate <= 0 {
		switch itemType {
		case "coin":
			makingRate = makingChargeCoin
		case "bar":
			makingRate = makingChargeBar
		default:
			makingRate = makingChargeJewellery
		}
	}

	base := goldPrice * quantity
	making := base * makingRate / 100
	gst := (base + making) * gstRatePercent / 100
	other := float64(otherChargesSmall)
	if quantity > otherChargesThreshold {
		other = otherChargesLarge
	}
	total := base + making + gst + other

	breakdown := []string{
		fmt.Sprintf("Gold cost: ₹%s × %gg = ₹%s", formatINR(goldPrice), quantity, formatINR(base)),
		fmt.Sprintf("Making charges (%g%%): ₹%s", makingRate, formatINR(making)),
		fmt.Sprintf("GST (%g%%): ₹%s", gstRatePercent, formatINR(gst)),
		fmt.Sprintf("Other charges: ₹%s", formatINR(other)),
		fmt.Sprintf("Total Amount: ₹%s", formatINR(total)),
	}

	return CostCalculation{
		GoldPrice:     goldPrice,
		Quantity:      quantity,
		BaseAmount:    int64(math.Round(base)),
		MakingCharges: int64(math.Round(making)),
		GST:           int64(math.Round(gst)),
		OtherCharges:  int64(other),
		TotalAmount:   int64(math.Round(total)),
		Breakdown:     breakdown,
	}
}

// formatINR renders an amount with Indian digit grouping (1,23,45,678),
// rounded to the nearest rupee.
func formatINR(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return s
}
