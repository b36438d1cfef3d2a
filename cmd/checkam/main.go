// Command checkam lists OCRopus sources and headers that Makefile.am or
// ocroscript/Makefile.am do not mention. It must be run from the project root.
package main

import "github.com/iupr/ocroam/internal/cli"

func main() {
	cli.ExecuteCheck()
}
