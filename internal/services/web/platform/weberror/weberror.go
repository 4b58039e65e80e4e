// Package weberror renders shared error pages for web modules.
package weberror

import (
	"net/http"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/foodgram/foodgram/internal/platform/logging"
	"github.com/foodgram/foodgram/internal/services/web/i18n"
	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
	"github.com/foodgram/foodgram/internal/services/web/platform/pagerender"
	"github.com/foodgram/foodgram/internal/services/web/templates"
)

// WriteNotFound writes the localized 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	loc := i18n.Printer()
	page := pagerender.Page{
		Meta:       templates.Meta{Title: i18n.T(loc, "notfound.meta.title")},
		StatusCode: http.StatusNotFound,
		Fragment: templates.Component(templates.Main(
			templates.Container(
				templates.Title(i18n.T(loc, "notfound.heading")),
				h.P(h.Class(templates.Styles.Text), g.Text(i18n.T(loc, "notfound.body"))),
			),
		)),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		logging.Error(httpx.RequestContext(r), "render not found page", zap.Error(err))
	}
}

// NotFoundHandler returns a handler that writes the 404 page.
func NotFoundHandler() http.HandlerFunc {
	return WriteNotFound
}
