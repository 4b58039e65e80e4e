package public

import (
	"net/http"

	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
)

type handlers struct {
	landing string
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.landing, http.StatusFound)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}
