// Package match suggests known names close to a misspelled one.
package match
