// Command genam prints the OCRopus top-level Makefile.am, derived from the source tree.
//
// Run it from the project root and redirect the output:
//
//	genam > Makefile.am
package main

import "github.com/iupr/ocroam/internal/cli"

func main() {
	cli.ExecuteGenerate()
}
