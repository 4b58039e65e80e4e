// Package pagerender centralizes page rendering behavior for web modules.
package pagerender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
	"github.com/foodgram/foodgram/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Meta       templates.Meta
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a page inside the document shell, or only its fragment
// when the request came from HTMX. Both variants carry Vary: HX-Request.
// The page is rendered before any header is sent; a render failure answers
// 500 and returns the error.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	// Both variants share a URL, so caches must key on the HTMX header.
	w.Header().Add("Vary", "HX-Request")
	shell := templates.Document(page.Meta)
	if httpx.IsHTMXRequest(r) {
		shell = templates.Fragment(page.Meta)
	}

	var body bytes.Buffer
	if err := shell.Render(ctx, &body); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("render page: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(statusCode)
	_, err := body.WriteTo(w)
	return err
}
