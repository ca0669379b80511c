// Package textenc maps encoding labels to golang.org/x/text transforms and
// performs the whole-buffer decode and re-encode steps of a conversion.
package textenc
