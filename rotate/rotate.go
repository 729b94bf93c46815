// Package rotate defines the rotation option family: quarter-turn angles and
// horizontal/vertical flips.
//
// Unlike the list-merge families, rotation is a single-key array: every
// applied value collapses into exactly one "rotation" pair whose value is the
// comma-joined token list, preserving application order. With no applied
// values the family contributes nothing.
package rotate

import (
	"strings"

	"github.com/velistar/pixurl/param"
)

// Key is the single query key produced by this family.
const Key = "rotation"

// Degrees is a clockwise quarter-turn angle.
type Degrees int

const (
	Deg90  Degrees = 90
	Deg180 Degrees = 180
	Deg270 Degrees = 270
)

// token returns the wire token for the angle.
// Panics on an angle outside the closed enum.
func (d Degrees) token() string {
	switch d {
	case Deg90:
		return "90"
	case Deg180:
		return "180"
	case Deg270:
		return "270"
	default:
		panic("rotate: unknown Degrees value")
	}
}

// Option is a single rotation instruction, sealed to this package.
type Option interface {
	token() string
}

type option string

func (o option) token() string { return string(o) }

// Angle rotates the image clockwise by d.
func Angle(d Degrees) Option { return option(d.token()) }

// FlipHorizontal mirrors the image across its vertical axis.
func FlipHorizontal() Option { return option("flip-h") }

// FlipVertical mirrors the image across its horizontal axis.
func FlipVertical() Option { return option("flip-v") }

// Encode collapses all applied rotation values into at most one pair under
// Key, tokens comma-joined in input order. Zero values yield zero pairs.
// Total and side-effect-free.
func Encode(opts []Option) []param.Pair {
	if len(opts) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(opts))
	for _, o := range opts {
		tokens = append(tokens, o.token())
	}

	return []param.Pair{{Key: Key, Value: strings.Join(tokens, param.Separator)}}
}
