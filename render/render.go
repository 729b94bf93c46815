// Package render places a serialized target into an <img> element as a templ
// component, ready to compose into any templ page or to render standalone.
package render

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/velistar/pixurl/target"
)

// Attr is one extra HTML attribute for the rendered element.
type Attr struct {
	Name  string
	Value string
}

// Img renders an <img> whose src is exactly t.String().
func Img(t target.Target) templ.Component {
	return ImgAttrs(t)
}

// ImgAttrs renders an <img> with src set to t.String() followed by the given
// attributes in listing order. src always comes first and always reflects
// the target: a caller-supplied "src" is ignored. When a name repeats, the
// first listed occurrence wins. Attribute values are HTML-escaped.
func ImgAttrs(t target.Target, attrs ...Attr) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<img src="`+html.EscapeString(t.String())+`"`); err != nil {
			return err
		}

		seen := map[string]bool{"src": true}
		for _, a := range attrs {
			if a.Name == "" || seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			if _, err := io.WriteString(w, ` `+a.Name+`="`+html.EscapeString(a.Value)+`"`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `>`)

		return err
	})
}
