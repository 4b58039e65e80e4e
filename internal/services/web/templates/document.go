package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/foodgram/foodgram/internal/services/web/i18n"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
)

// Document renders a full HTML document around the templ children in ctx.
func Document(meta Meta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return h.Doctype(
			h.HTML(h.Lang(i18n.Lang.String()),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					MetaTags(meta),
					h.Link(h.Rel("stylesheet"), h.Href(routepath.Stylesheet)),
				),
				h.Body(children(ctx)),
			),
		).Render(w)
	})
}

// Fragment renders the templ children in ctx preceded by a title element,
// for partial navigation responses that swap the main region.
func Fragment(meta Meta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if meta.Title != "" {
			if err := h.TitleEl(g.Text(meta.Title)).Render(w); err != nil {
				return err
			}
		}
		return children(ctx).Render(w)
	})
}
