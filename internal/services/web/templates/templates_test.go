package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func TestDocumentRendersHeadMetadataAndBody(t *testing.T) {
	t.Parallel()

	body := renderWithChildren(t, Document(Meta{
		Title:       "О проекте",
		Description: "Фудграм - Технологии",
	}), textComponent(`<section id="fragment-root">ok</section>`))

	if !strings.HasPrefix(strings.ToLower(body), "<!doctype html>") {
		t.Fatalf("expected doctype prefix: %q", body)
	}
	doc := parseHTML(t, body)

	htmlNodes := findAll(doc, "html")
	if len(htmlNodes) != 1 || attr(htmlNodes[0], "lang") != "ru" {
		t.Fatalf("expected one html element with lang=ru")
	}
	titles := findAll(doc, "title")
	if len(titles) != 1 || textContent(titles[0]) != "О проекте" {
		t.Fatalf("expected title %q", "О проекте")
	}
	if got := metaContent(doc, "name", "description"); got != "Фудграм - Технологии" {
		t.Fatalf("description = %q", got)
	}
	if got := metaContent(doc, "property", "og:title"); got != "О проекте" {
		t.Fatalf("og:title = %q", got)
	}
	links := findAll(doc, "link")
	if len(links) != 1 || attr(links[0], "href") != "/static/styles.css" {
		t.Fatalf("expected stylesheet link")
	}
	bodies := findAll(doc, "body")
	if len(bodies) != 1 || len(findAll(bodies[0], "section")) != 1 {
		t.Fatalf("expected fragment inside body: %q", body)
	}
}

func TestMetaTagsOmitsEmptyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := MetaTags(Meta{}).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no tags, got %q", buf.String())
	}
}

func TestMetaTagsUsesExplicitOGTitle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := MetaTags(Meta{Title: "Главная", OGTitle: "Фудграм"}).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := parseHTML(t, "<html><head>"+buf.String()+"</head></html>")
	if got := metaContent(doc, "property", "og:title"); got != "Фудграм" {
		t.Fatalf("og:title = %q, want %q", got, "Фудграм")
	}
	if metaContent(doc, "name", "description") != "" {
		t.Fatal("expected description to be omitted")
	}
}

func TestLayoutNodesCarryStyleClasses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Main(Container(Title("Технологии"))).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<main id="main" class="main"><div class="container"><h1 class="title">Технологии</h1></div></main>`
	if buf.String() != want {
		t.Fatalf("markup = %q, want %q", buf.String(), want)
	}
}

func TestFragmentRendersTitleWithoutDocumentShell(t *testing.T) {
	t.Parallel()

	body := renderWithChildren(t, Fragment(Meta{Title: "О проекте"}), textComponent(`<main id="main">ok</main>`))
	if strings.Contains(strings.ToLower(body), "<html") || strings.Contains(strings.ToLower(body), "<!doctype") {
		t.Fatalf("expected fragment without document wrapper: %q", body)
	}
	if !strings.HasPrefix(body, "<title>О проекте</title>") {
		t.Fatalf("expected leading title: %q", body)
	}
}

func TestComponentRendersNilNodeAsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Component(nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
	if err := Component(g.Text("ok")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "ok" {
		t.Fatalf("output = %q, want %q", buf.String(), "ok")
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func renderWithChildren(t *testing.T, parent templ.Component, child templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := parent.Render(templ.WithChildren(context.Background(), child), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func metaContent(doc *html.Node, key, value string) string {
	for _, meta := range findAll(doc, "meta") {
		if attr(meta, key) == value {
			return attr(meta, "content")
		}
	}
	return ""
}
