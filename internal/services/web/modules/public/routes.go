package public

import (
	"net/http"

	"github.com/foodgram/foodgram/internal/services/web/platform/weberror"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" /{rest...}", weberror.NotFoundHandler())
}
