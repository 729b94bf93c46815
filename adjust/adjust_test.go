package adjust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velistar/pixurl/adjust"
	"github.com/velistar/pixurl/param"
)

func TestEncode_Empty(t *testing.T) {
	assert.Nil(t, adjust.Encode(nil))
}

func TestEncode_Knobs(t *testing.T) {
	cases := []struct {
		name string
		opt  adjust.Option
		want param.Pair
	}{
		{"Brightness", adjust.Brightness(15), param.Pair{Key: "bri", Value: "15"}},
		{"NegativeBrightness", adjust.Brightness(-40), param.Pair{Key: "bri", Value: "-40"}},
		{"Contrast", adjust.Contrast(10), param.Pair{Key: "con", Value: "10"}},
		{"Saturation", adjust.Saturation(-100), param.Pair{Key: "sat", Value: "-100"}},
		{"Hue", adjust.Hue(180), param.Pair{Key: "hue", Value: "180"}},
		{"Gamma", adjust.Gamma(20), param.Pair{Key: "gam", Value: "20"}},
		{"Sharpen", adjust.Sharpen(35), param.Pair{Key: "sharp", Value: "35"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []param.Pair{tc.want}, adjust.Encode([]adjust.Option{tc.opt}))
		})
	}
}

// TestEncode_MixedKnobs verifies same-key joining alongside distinct keys.
func TestEncode_MixedKnobs(t *testing.T) {
	got := adjust.Encode([]adjust.Option{
		adjust.Brightness(10),
		adjust.Contrast(5),
		adjust.Brightness(20),
	})
	want := []param.Pair{
		{Key: "bri", Value: "10,20"},
		{Key: "con", Value: "5"},
	}
	assert.Equal(t, want, got)
}
