// Package adjust defines the color and levels adjustment family: brightness,
// contrast, saturation, hue shift, gamma and sharpening.
//
// List-merge family: values for the same knob comma-join under that knob's
// key in application order; distinct knobs each get their own pair.
// Magnitudes are signed and pass through unvalidated; range policy belongs to
// the delivery service, not this builder.
package adjust

import (
	"strconv"

	"github.com/velistar/pixurl/param"
)

const (
	keyBrightness = "bri"
	keyContrast   = "con"
	keySaturation = "sat"
	keyHue        = "hue"
	keyGamma      = "gam"
	keySharpen    = "sharp"
)

// Option is a single adjustment instruction, sealed to this package.
type Option interface {
	pair() param.Pair
}

type option param.Pair

func (o option) pair() param.Pair { return param.Pair(o) }

func numeric(key string, n int) Option {
	return option{Key: key, Value: strconv.Itoa(n)}
}

// Brightness shifts luminance by n (negative darkens).
func Brightness(n int) Option { return numeric(keyBrightness, n) }

// Contrast shifts contrast by n (negative flattens).
func Contrast(n int) Option { return numeric(keyContrast, n) }

// Saturation shifts color saturation by n (negative desaturates).
func Saturation(n int) Option { return numeric(keySaturation, n) }

// Hue rotates the hue wheel by deg degrees.
func Hue(deg int) Option { return numeric(keyHue, deg) }

// Gamma applies a gamma correction of n.
func Gamma(n int) Option { return numeric(keyGamma, n) }

// Sharpen applies an unsharp-mask strength of n.
func Sharpen(n int) Option { return numeric(keySharpen, n) }

// Encode maps applied adjustment values to query pairs under the family's
// list-merge rule. Zero values yield zero pairs. Total and side-effect-free.
func Encode(opts []Option) []param.Pair {
	if len(opts) == 0 {
		return nil
	}
	pairs := make([]param.Pair, 0, len(opts))
	for _, o := range opts {
		pairs = append(pairs, o.pair())
	}

	return param.MergeByKey(pairs)
}
