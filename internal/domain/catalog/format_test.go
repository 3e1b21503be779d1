package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Megallm/megallm-docs/internal/domain/model"
)

func ptr(v float64) *float64 { return &v }

func TestFormatTokens(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1_500_000, "2M"},
		{1_000_000, "1M"},
		{128_000, "128K"},
		{750_000, "750K"},
		{999_499, "999K"},
		{1_500, "2K"},
		{500, "500"},
		{1, "1"},
		{0, "N/A"},
		{-10, "N/A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTokens(tc.in), "FormatTokens(%d)", tc.in)
	}
}

func TestFormatTokensIsIdempotent(t *testing.T) {
	for _, n := range []int64{0, 42, 4096, 200_000, 2_000_000} {
		assert.Equal(t, FormatTokens(n), FormatTokens(n))
	}
}

func TestDiscountPrice(t *testing.T) {
	cases := []struct {
		name       string
		in         *float64
		original   string
		discounted string
	}{
		{"whole", ptr(30), "30", "1.5"},
		{"sub-dollar", ptr(0.15), "0.15", "0.008"},
		{"rounds to cents", ptr(1.005), "1.01", "0.051"},
		{"trailing zeros", ptr(2.50), "2.5", "0.125"},
		{"large", ptr(75), "75", "3.75"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountPrice(tc.in)
			assert.True(t, got.Available)
			assert.Equal(t, tc.original, got.Original)
			assert.Equal(t, tc.discounted, got.Discounted)
			assert.Equal(t, DiscountBadge, got.Badge)
		})
	}
}

func TestDiscountPriceNotApplicable(t *testing.T) {
	for _, in := range []*float64{nil, ptr(0)} {
		got := DiscountPrice(in)
		assert.False(t, got.Available)
		assert.Equal(t, NotApplicable, got.Original)
		assert.Equal(t, NotApplicable, got.String())
		assert.Empty(t, got.Badge)
	}
}

func TestDiscountPriceString(t *testing.T) {
	assert.Equal(t, "$30 95% OFF $1.5", DiscountPrice(ptr(30)).String())
	assert.Equal(t, DiscountPrice(ptr(0.15)), DiscountPrice(ptr(0.15)))
}

func TestFeatureIcons(t *testing.T) {
	assert.Equal(t, "", FeatureIcons(model.Capabilities{}))
	assert.Equal(t, "🎯🖼️📡🔧", FeatureIcons(model.Capabilities{
		SupportsFunctionCalling:  true,
		SupportsVision:           true,
		SupportsStreaming:        true,
		SupportsStructuredOutput: true,
	}))
	assert.Equal(t, "🎯📡", FeatureIcons(model.Capabilities{
		SupportsFunctionCalling: true,
		SupportsStreaming:       true,
	}))
}

func TestLegend(t *testing.T) {
	assert.Equal(t, "🎯 Function Calling | 🖼️ Vision | 📡 Streaming | 🔧 Structured Output", Legend())
}
