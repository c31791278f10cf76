// Package style renders pypath output.
//
// Three output formats are supported: styled terminal output, plain text
// and JSON. The "auto" format picks terminal output when writing to a
// color-capable terminal and plain text otherwise (pipes, redirects,
// NO_COLOR).
//
// Terminal styles are declared in the embedded styles.yaml with semantic
// names and adaptive light/dark colors:
//
//	colors:
//	  path: {light: "#0369A1", dark: "#7DD3FC"}
//	styles:
//	  Path: {foreground: path}
package style
