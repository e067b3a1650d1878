// Command csscolor parses, inspects and transforms CSS colors.
package main

import "github.com/gogpu/csscolor/internal/cli"

func main() {
	cli.Execute()
}
