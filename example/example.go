// Package example provides a fixed string used by smoke checks to confirm
// the module builds and its packages import cleanly.
package example

// Example returns the string "example".
func Example() string {
	return "example"
}
