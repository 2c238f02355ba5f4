// Command specsheet extracts structured data from compressor specification
// sheet PDFs and writes it as JSON.
//
// Usage:
//
//	specsheet dimensions sheet.pdf
//	specsheet techspec --layout frequency sheet.pdf
//	specsheet all --stdout sheet.pdf
package main

import (
	"os"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
