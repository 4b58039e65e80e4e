package technologies

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/foodgram/foodgram/internal/services/web/i18n"
	"github.com/foodgram/foodgram/internal/services/web/templates"
)

// Meta returns the document head metadata of the page.
func Meta() templates.Meta {
	loc := i18n.Printer()
	title := i18n.T(loc, "technologies.meta.title")
	return templates.Meta{
		Title:       title,
		Description: i18n.T(loc, "technologies.meta.description"),
		OGTitle:     title,
	}
}

// Page renders the main region of the page. Output depends only on the
// badge table and the copy catalog.
func Page() templ.Component {
	return templates.Component(pageNode(i18n.Printer()))
}

func pageNode(loc i18n.Localizer) g.Node {
	return templates.Main(
		templates.Container(
			templates.Title(i18n.T(loc, "technologies.heading")),
			h.Div(h.Class(templates.Styles.Content),
				h.Div(
					h.H2(h.Class(templates.Styles.Subtitle), g.Text(i18n.T(loc, "technologies.subtitle"))),
					h.Div(h.Class(templates.Styles.Text),
						h.Ul(h.Class(templates.Styles.TextItem),
							g.Map(badges, badgeItem),
						),
					),
				),
			),
		),
	)
}

func badgeItem(badge Badge) g.Node {
	return h.Li(h.Class(templates.Styles.TextItem),
		h.Img(h.Src(badge.ImageURL), h.Alt(badge.AltText)),
	)
}
