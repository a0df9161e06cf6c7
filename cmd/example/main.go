// Command example prints the example string.
package main

import (
	"fmt"

	"github.com/YuminosukeSato/simplereg/example"
)

func main() {
	fmt.Println(example.Example())
}
