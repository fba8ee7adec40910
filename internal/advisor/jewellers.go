package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// Jeweller describes a gold dealer recommendation.
type Jeweller struct {
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Rating       float64  `json:"rating"`
	Specialties  []string `json:"specialties"`
	BISCertified bool     `json:"biscertified"`
	Website      string   `json:"website,omitempty"`
	Established  int      `json:"established"`
}

var nationalJewellers = []Jeweller{
	{
		Name: "Tanishq", City: "Pan India",
		Address: "Multiple locations across India", Phone: "1800-266-0123",
		Rating:      4.5,
		Specialties: []string{"Wedding Jewellery", "Gold Coins", "Investment Gold"},
		BISCertified: true, Website: "https://www.tanishq.co.in", Established: 1994,
	},
	{
		Name: "Kalyan Jewellers", City: "Pan India",
		Address: "Multiple locations across India", Phone: "1800-425-5969",
		Rating:      4.4,
		Specialties: []string{"Traditional Designs", "Gold Bars", "Coins"},
		BISCertified: true, Website: "https://www.kalyanjewellers.net", Established: 1993,
	},
	{
		Name: "PC Jeweller", City: "Pan India",
		Address: "Multiple locations across India", Phone: "1800-103-0916",
		Rating:      4.2,
		Specialties: []string{"Gold Investment Plans", "Coins", "Bars"},
		BISCertified: true, Website: "https://www.pcjeweller.com", Established: 2005,
	},
	{
		Name: "Damas Jewellery", City: "Delhi",
		Address: "Connaught Place, New Delhi", Phone: "+91-11-4155-0000",
		Rating:      4.3,
		Specialties: []string{"Premium Gold", "Investment Grade Gold"},
		BISCertified: true, Established: 1907,
	},
	{
		Name: "Senco Gold & Diamonds", City: "Delhi",
		Address: "Select City Walk, Saket", Phone: "+91-11-4717-8000",
		Rating:      4.2,
		Specialties: []string{"Gold Coins", "Bars", "Traditional Jewellery"},
		BISCertified: true, Established: 1994,
	},
	{
		Name: "Tribhovandas Bhimji Zaveri (TBZ)", City: "Mumbai",
		Address: "Zaveri Bazaar, Mumbai", Phone: "+91-22-2342-5001",
		Rating:      4.4,
		Specialties: []string{"Investment Gold", "Coins", "Traditional Designs"},
		BISCertified: true, Website: "https://www.tbzoriginal.com", Established: 1864,
	},
	{
		Name: "Popley & Sons", City: "Mumbai",
		Address: "Opera House, Mumbai", Phone: "+91-22-2367-4747",
		Rating:      4.3,
		Specialties: []string{"Gold Bars", "Coins", "Custom Jewellery"},
		BISCertified: true, Established: 1927,
	},
	{
		Name: "Joyalukkas", City: "Chennai",
		Address: "T. Nagar, Chennai", Phone: "+91-44-2834-7777",
		Rating:      4.3,
		Specialties: []string{"South Indian Gold", "Coins", "Investment Plans"},
		BISCertified: true, Website: "https://www.joyalukkas.com", Established: 1987,
	},
	{
		Name: "Prince Jewellery", City: "Chennai",
		Address: "T. Nagar, Chennai", Phone: "+91-44-2834-5678",
		Rating:      4.1,
		Specialties: []string{"Traditional Tamil Designs", "Gold Bars"},
		BISCertified: true, Established: 1960,
	},
	{
		Name: "Senco Gold & Diamonds", City: "Kolkata",
		Address: "Park Street, Kolkata", Phone: "+91-33-4602-8000",
		Rating:      4.2,
		Specialties: []string{"Bengali Traditional", "Investment Gold"},
		BISCertified: true, Established: 1994,
	},
}

var localJewellers = map[string][]Jeweller{
	"delhi": {
		{
			Name: "Karol Bagh Jewellers", City: "Delhi",
			Address: "Karol Bagh Market, New Delhi", Phone: "+91-11-2575-8899",
			Rating:      4.1,
			Specialties: []string{"Gold Coins", "Investment Bars", "Traditional Designs"},
			BISCertified: true, Established: 1985,
		},
		{
			Name: "Chandni Chowk Gold House", City: "Delhi",
			Address: "Dariba Kalan, Chandni Chowk", Phone: "+91-11-2326-4455",
			Rating:      4.0,
			Specialties: []string{"Wholesale Gold", "Bullion Trading"},
			BISCertified: true, Established: 1960,
		},
	},
	"mumbai": {
		{
			Name: "Zaveri Bazaar Traders", City: "Mumbai",
			Address: "Zaveri Bazaar, Mumbai", Phone: "+91-22-2342-7890",
			Rating:      4.2,
			Specialties: []string{"Bullion Trading", "Gold Bars", "Coins"},
			BISCertified: true, Established: 1970,
		},
		{
			Name: "Borivali Gold Centre", City: "Mumbai",
			Address: "Station Road, Borivali West", Phone: "+91-22-2892-3456",
			Rating:      3.9,
			Specialties: []string{"Local Gold Sales", "Custom Jewellery"},
			BISCertified: true, Established: 1995,
		},
	},
	"bangalore": {
		{
			Name: "Commercial Street Jewellers", City: "Bangalore",
			Address: "Commercial Street, Bangalore", Phone: "+91-80-2558-7890",
			Rating:      4.0,
			Specialties: []string{"South Indian Gold", "Modern Designs"},
			BISCertified: true, Established: 1988,
		},
	},
}

func jewellersTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "recommend_indian_jewellers",
		Description: "Suggest reputable gold jewellers and dealers across Indian cities",
		Parameters: tool.ObjectSchema(map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name (optional, if not provided shows top jewellers across India)",
			},
		}),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				City string `json:"city"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("recommend_indian_jewellers: %v", err)
			}

			matches := nationalJewellers
			if in.City != "" {
				matches = nil
				for _, j := range nationalJewellers {
					if j.City == "Pan India" || containsFold(j.City, in.City) {
						matches = append(matches, j)
					}
				}
			}
			if len(matches) > 10 {
				matches = matches[:10]
			}

			msg := "Top jewellers across India"
			if in.City != "" {
				msg = fmt.Sprintf("Top jewellers in %s", in.City)
			}
			return tool.Ok(matches, msg)
		},
	}
}

func localJewellersTool() tool.Descriptor {
	return tool.Descriptor{
		Name:        "locate_local_jewellers",
		Description: "Find trusted local jewellers and bullion dealers by city/area",
		Parameters: tool.ObjectSchema(map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name (required)",
			},
			"area": map[string]any{
				"type":        "string",
				"description": "Specific area or locality within the city",
			},
		}, "city"),
		Handler: func(_ context.Context, args json.RawMessage) tool.Result {
			var in struct {
				City string `json:"city"`
				Area string `json:"area"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return tool.Fail("locate_local_jewellers: %v", err)
			}

			matches := localJewellers[strings.ToLower(in.City)]
			if in.Area != "" {
				filtered := matches[:0:0]
				for _, j := range matches {
					if containsFold(j.Address, in.Area) {
						filtered = append(filtered, j)
					}
				}
				matches = filtered
			}

			msg := fmt.Sprintf("No local jewellers found in %s. Showing nearby options.", in.City)
			if len(matches) > 0 {
				msg = fmt.Sprintf("Found %d local jewellers in %s", len(matches), in.City)
			}
			if matches == nil {
				matches = []Jeweller{}
			}
			return tool.Ok(matches, msg)
		},
	}
}
