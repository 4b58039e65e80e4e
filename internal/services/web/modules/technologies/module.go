// Package technologies serves the page listing the technologies the
// Foodgram project is built with.
package technologies

import (
	"net/http"

	module "github.com/foodgram/foodgram/internal/services/web/module"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
)

// Module provides the technologies page routes.
type Module struct{}

// New returns the technologies module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "technologies" }

// Mount wires the page routes under the technologies prefix.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{})
	return module.Mount{Prefix: routepath.TechnologiesPrefix, Handler: mux}, nil
}
