package coin

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// RiskFlag is a caveat attached to a valuation summary.
type RiskFlag struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// keyValueDrivers is the static explainer shown with every valuation.
var keyValueDrivers = []string{
	"Date/mint and rarity (key dates matter most).",
	"Grade and surface preservation (wear, marks, luster).",
	"Originality (cleaning, tooling, damage lowers value).",
	"Eye appeal (toning, strike, color).",
	"Market demand and recent sold comps.",
}

// ExplainHandler renders a fixed-template valuation summary. Inputs are
// checked for presence only; no numeric validation happens here.
func (s *CoinService) ExplainHandler(c fiber.Ctx) error {
	var body struct {
		Coin struct {
			Country      string `json:"country"`
			Denomination string `json:"denomination"`
			Year         any    `json:"year"`
			Grade        string `json:"grade"`
		} `json:"coin"`
		Valuation struct {
			AuctionValue   *float64 `json:"auction_value"`
			RetailValue    *float64 `json:"retail_value"`
			InsuranceValue *float64 `json:"insurance_value"`
			Confidence     string   `json:"confidence"`
		} `json:"valuation"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if body.Coin.Country == "" || body.Coin.Denomination == "" || !yearPresent(body.Coin.Year) || body.Coin.Grade == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing coin fields (country, denomination, year, grade)",
		})
	}

	if body.Valuation.AuctionValue == nil || body.Valuation.RetailValue == nil ||
		body.Valuation.InsuranceValue == nil || body.Valuation.Confidence == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing valuation fields"})
	}

	summary, flags := Explain(body.Coin.Country, body.Coin.Denomination, body.Coin.Grade, body.Coin.Year)

	return c.JSON(fiber.Map{
		"summary":           summary,
		"key_value_drivers": keyValueDrivers,
		"risk_flags":        flags,
	})
}

// Explain fills the valuation template and derives the risk flags. It is
// deterministic and does no I/O.
func Explain(country, denomination, grade string, year any) (string, []RiskFlag) {
	summary := fmt.Sprintf(
		"Estimated values for a %v %s %s (%s). Auction vs retail vs insurance can vary based on eye appeal, originality, and demand.",
		formatYear(year), country, denomination, grade)

	flags := []RiskFlag{}
	if strings.Contains(strings.ToLower(grade), "details") {
		flags = append(flags, RiskFlag{
			Severity: "high",
			Message:  "Details/problem coins can sell far below straight-grade examples.",
		})
	}

	return summary, flags
}

func yearPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func formatYear(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}
