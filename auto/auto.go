// Package auto defines the automatic-optimization family: flags that let the
// delivery service pick format, compression and enhancement settings itself.
//
// Singleton family with an always-emit contract: Encode returns exactly one
// "auto" pair regardless of how many values were applied — including zero, in
// which case the pair's value is empty. Callers relying on the query string
// never being empty depend on this.
package auto

import (
	"strings"

	"github.com/velistar/pixurl/param"
)

// Key is the single query key produced by this family.
const Key = "auto"

// Option is one optimization flag. The zero Option is inert: it contributes
// no token. The vocabulary is closed to the package-level values below.
type Option struct {
	token string
}

var (
	// Format lets the service negotiate the best output format per client.
	Format = Option{token: "format"}
	// Compress lets the service pick compression parameters.
	Compress = Option{token: "compress"}
	// Enhance applies automatic visual enhancement.
	Enhance = Option{token: "enhance"}
	// Redeye applies automatic red-eye removal.
	Redeye = Option{token: "redeye"}
)

// Encode collapses applied optimization flags into exactly one pair under
// Key, tokens comma-joined in input order. Encode is the one encoder that
// emits with zero applied values: the pair is still produced, with an empty
// value. Total and side-effect-free.
func Encode(opts []Option) []param.Pair {
	tokens := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.token == "" {
			continue
		}
		tokens = append(tokens, o.token)
	}

	return []param.Pair{{Key: Key, Value: strings.Join(tokens, param.Separator)}}
}
