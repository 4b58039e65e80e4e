// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root               = "/"
	Health             = "/up"
	Metrics            = "/metrics"
	StaticPrefix       = "/static/"
	Stylesheet         = StaticPrefix + "styles.css"
	Technologies       = "/technologies"
	TechnologiesPrefix = Technologies + "/"
)
