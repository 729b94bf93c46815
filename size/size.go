// Package size defines the size option family: width, height, device pixel
// ratio, and fit mode for the delivered image.
//
// The family is a closed vocabulary: values are built only through the typed
// constructors below. Multiple values targeting the same key (two widths, two
// fit modes, ...) are comma-joined under that key by Encode, in the order the
// caller supplies them; values targeting different keys each become their own
// query pair.
package size

import (
	"strconv"

	"github.com/velistar/pixurl/param"
)

// Query keys produced by this family.
const (
	keyWidth  = "w"
	keyHeight = "h"
	keyDPR    = "dpr"
	keyFit    = "fit"
)

// Fit selects how the image is resized into the requested box.
type Fit int

const (
	// FitClip scales the image to fit inside the box, preserving aspect ratio.
	FitClip Fit = iota
	// FitCrop fills the box exactly, cropping overflow.
	FitCrop
	// FitMax behaves like FitClip but never upscales.
	FitMax
	// FitScale stretches to the box, ignoring aspect ratio.
	FitScale
)

// token returns the wire token for the fit mode.
// Panics on an out-of-range Fit; the enum is closed.
func (f Fit) token() string {
	switch f {
	case FitClip:
		return "clip"
	case FitCrop:
		return "crop"
	case FitMax:
		return "max"
	case FitScale:
		return "scale"
	default:
		panic("size: unknown Fit value")
	}
}

// Option is a single size instruction. Implementations are sealed to this
// package; construct values with Width, Height, DevicePixelRatio or FitMode.
type Option interface {
	pair() param.Pair
}

type option param.Pair

func (o option) pair() param.Pair { return param.Pair(o) }

// Width constrains the delivered width to px pixels.
func Width(px int) Option {
	return option{Key: keyWidth, Value: strconv.Itoa(px)}
}

// Height constrains the delivered height to px pixels.
func Height(px int) Option {
	return option{Key: keyHeight, Value: strconv.Itoa(px)}
}

// DevicePixelRatio scales the requested dimensions for high-density displays.
// The ratio renders in its shortest decimal form (2, 1.5, 2.625).
func DevicePixelRatio(r float64) Option {
	return option{Key: keyDPR, Value: strconv.FormatFloat(r, 'f', -1, 64)}
}

// FitMode selects the resize strategy.
func FitMode(f Fit) Option {
	return option{Key: keyFit, Value: f.token()}
}

// Encode maps applied size values to query pairs under the family's
// list-merge rule. Zero values yield zero pairs (the family is omitted).
// Total and side-effect-free.
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
