// Package public serves unauthenticated service routes: the root redirect,
// the health check and the fallback not-found page.
package public

import (
	"net/http"

	module "github.com/foodgram/foodgram/internal/services/web/module"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
)

// Module provides root-level public routes.
type Module struct {
	landing string
}

// New returns the public module redirecting the root path to the
// technologies page.
func New() Module {
	return Module{landing: routepath.Technologies}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires root-level routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{landing: m.landing})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
