package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Megallm/megallm-docs/internal/domain/model"
)

const (
	// NotApplicable is shown for unknown limits and unpublished prices.
	NotApplicable = "N/A"

	// DiscountBadge labels every discounted price.
	DiscountBadge = "95% OFF"
)

var discountMultiplier = decimal.RequireFromString("0.05")

// FormatTokens renders a token count: whole millions with "M", whole
// thousands with "K", smaller counts verbatim. Zero and negative counts are
// unknown and render as N/A.
func FormatTokens(n int64) string {
	switch {
	case n <= 0:
		return NotApplicable
	case n >= 1_000_000:
		return strconv.FormatInt((n+500_000)/1_000_000, 10) + "M"
	case n >= 1_000:
		return strconv.FormatInt((n+500)/1_000, 10) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Price is a display-ready discounted price.
type Price struct {
	Available  bool   `json:"available"`
	Original   string `json:"original"`
	Discounted string `json:"discounted"`
	Badge      string `json:"badge,omitempty"`
}

// String renders the price as plain text.
func (p Price) String() string {
	if !p.Available {
		return NotApplicable
	}
	return "$" + p.Original + " " + p.Badge + " $" + p.Discounted
}

// DiscountPrice rounds the list price to cents, applies the 95% discount and
// prints both with at most three decimals. Nil and zero prices are N/A.
func DiscountPrice(p *float64) Price {
	if p == nil || *p == 0 {
		return Price{Original: NotApplicable, Discounted: NotApplicable}
	}

	original := decimal.NewFromFloat(*p).Round(2)
	discounted := original.Mul(discountMultiplier)
	return Price{
		Available:  true,
		Original:   formatDecimal(original),
		Discounted: formatDecimal(discounted),
		Badge:      DiscountBadge,
	}
}

func formatDecimal(d decimal.Decimal) string {
	return d.Round(3).String()
}

// Feature is one capability flag with its icon.
type Feature struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Features lists every capability in display order; it doubles as the legend.
var Features = []Feature{
	{Icon: "🎯", Label: "Function Calling"},
	{Icon: "🖼️", Label: "Vision"},
	{Icon: "📡", Label: "Streaming"},
	{Icon: "🔧", Label: "Structured Output"},
}

// FeatureIcons concatenates the icons of the supported capabilities.
func FeatureIcons(caps model.Capabilities) string {
	flags := [...]bool{
		caps.SupportsFunctionCalling,
		caps.SupportsVision,
		caps.SupportsStreaming,
		caps.SupportsStructuredOutput,
	}
	var b strings.Builder
	for i, on := range flags {
		if on {
			b.WriteString(Features[i].Icon)
		}
	}
	return b.String()
}

// Legend renders Features as "🎯 Function Calling | 🖼️ Vision | ...".
func Legend() string {
	parts := make([]string, 0, len(Features))
	for _, f := range Features {
		parts = append(parts, f.Icon+" "+f.Label)
	}
	return strings.Join(parts, " | ")
}
