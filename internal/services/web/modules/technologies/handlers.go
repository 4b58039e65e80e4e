package technologies

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/foodgram/foodgram/internal/platform/logging"
	"github.com/foodgram/foodgram/internal/services/web/platform/pagerender"
)

type handlers struct{}

func (handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	if err := pagerender.WritePage(w, r, pagerender.Page{
		Meta:     Meta(),
		Fragment: Page(),
	}); err != nil {
		logging.Error(r.Context(), "render technologies page", zap.Error(err))
	}
}
