// Package match finds the closest known spelling for a misspelled document
// key or type tag, so diagnostics can say what was probably meant.
package match
