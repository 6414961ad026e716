package configs

// Configurable marks a provided value as settable from woof.cue. ConfigExpr
// names the value in config-related output.
type Configurable interface {
	ConfigExpr() string
}
