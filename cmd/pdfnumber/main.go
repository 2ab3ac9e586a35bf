// Command pdfnumber stamps page numbers onto PDF documents.
package main

import "github.com/digitorus/pdfnumber/cli"

func main() {
	cli.Execute()
}
