// Package pixurl builds image-transformation URLs for query-parameter image
// delivery services.
//
// A Target starts from a base image URL (its original query and fragment are
// discarded) and accumulates typed option values across five independent
// families, serialized deterministically in the fixed family order
//
//	size → rotation → adjustment → automatic → stylize
//
// Why pixurl?
//
//   - Typed, closed vocabularies — invalid option kinds fail at compile time,
//     not in production URLs.
//   - Value semantics — every mutator returns a new Target; share one base
//     template across goroutines and derive variants freely.
//   - Deterministic output — same applied state, byte-identical URL,
//     regardless of which order families were touched.
//
// Everything is organized under flat subpackages:
//
//	param/    — query pairs, list-merge, query-string encoding
//	size/     — width, height, device pixel ratio, fit mode
//	rotate/   — quarter-turn angles and flips (single-key array)
//	adjust/   — brightness, contrast, saturation, hue, gamma, sharpen
//	auto/     — automatic optimization flags (always emits its key)
//	stylize/  — blur, sepia, pixelate, monochrome
//	target/   — the Target accumulator and serializer
//	render/   — templ <img> components
//
// Quick start:
//
//	tgt, err := target.ParseString("https://assets.example.com/photo.png")
//	if err != nil {
//		// not an absolute URL
//	}
//	tgt = tgt.
//		SizeAll(size.Width(300), size.Height(200)).
//		Rotate(rotate.FlipHorizontal()).
//		Auto(auto.Format)
//	fmt.Println(tgt)
//	// https://assets.example.com/photo.png?w=300&h=200&rotation=flip-h&auto=format
package pixurl
