package technologies

import (
	"net/http"

	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
	"github.com/foodgram/foodgram/internal/services/web/platform/weberror"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	// GET patterns also match HEAD.
	mux.HandleFunc(http.MethodGet+" "+routepath.Technologies, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.TechnologiesPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.TechnologiesPrefix+"{rest...}", weberror.NotFoundHandler())
	mux.HandleFunc(routepath.Technologies, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	mux.HandleFunc(routepath.TechnologiesPrefix+"{rest...}", httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
}
