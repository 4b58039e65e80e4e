package templates

// Styles maps page elements to class names defined in static/styles.css.
var Styles = struct {
	Main      string
	Container string
	Title     string
	Subtitle  string
	Content   string
	Text      string
	TextItem  string
}{
	Main:      "main",
	Container: "container",
	Title:     "title",
	Subtitle:  "subtitle",
	Content:   "content",
	Text:      "text",
	TextItem:  "textItem",
}
