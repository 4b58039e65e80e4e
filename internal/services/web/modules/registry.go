package modules

import (
	"github.com/foodgram/foodgram/internal/services/web/modules/public"
	"github.com/foodgram/foodgram/internal/services/web/modules/technologies"
)

// DefaultModules returns the modules mounted by the web service.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		technologies.New(),
	}
}
