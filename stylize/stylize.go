// Package stylize defines the stylization-effect family: blur, sepia,
// pixelation and monochrome tinting.
//
// List-merge family: values for the same effect comma-join under that
// effect's key in application order; distinct effects each get their own
// pair.
package stylize

import (
	"strconv"

	"github.com/velistar/pixurl/param"
)

const (
	keyBlur       = "blur"
	keySepia      = "sepia"
	keyPixelate   = "px"
	keyMonochrome = "mono"
)

// Option is a single stylization instruction, sealed to this package.
type Option interface {
	pair() param.Pair
}

type option param.Pair

func (o option) pair() param.Pair { return param.Pair(o) }

// Blur applies a Gaussian blur of the given radius.
func Blur(radius int) Option {
	return option{Key: keyBlur, Value: strconv.Itoa(radius)}
}

// Sepia applies a sepia tone at the given percentage.
func Sepia(percent int) Option {
	return option{Key: keySepia, Value: strconv.Itoa(percent)}
}

// Pixelate renders the image as cells of the given size in pixels.
func Pixelate(cell int) Option {
	return option{Key: keyPixelate, Value: strconv.Itoa(cell)}
}

// Monochrome tints the image with the given color, e.g. "#b08c6a".
// The leading "#" may be omitted; the value passes through verbatim and is
// escaped at serialization time.
func Monochrome(hex string) Option {
	return option{Key: keyMonochrome, Value: hex}
}

// Encode maps applied stylization values to query pairs under the family's
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
