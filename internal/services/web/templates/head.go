package templates

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Meta carries document head metadata for a page.
type Meta struct {
	Title       string
	Description string
	// OGTitle is the social-preview title; empty falls back to Title.
	OGTitle string
}

// MetaTags renders the title, description and og:title head elements.
// Empty values are omitted.
func MetaTags(meta Meta) g.Node {
	title := strings.TrimSpace(meta.Title)
	description := strings.TrimSpace(meta.Description)
	ogTitle := strings.TrimSpace(meta.OGTitle)
	if ogTitle == "" {
		ogTitle = title
	}
	var tags g.Group
	if title != "" {
		tags = append(tags, h.TitleEl(g.Text(title)))
	}
	if description != "" {
		tags = append(tags, h.Meta(h.Name("description"), h.Content(description)))
	}
	if ogTitle != "" {
		tags = append(tags, h.Meta(g.Attr("property", "og:title"), h.Content(ogTitle)))
	}
	return tags
}
