// Package main provides the CLI entrypoint for beanpath.
//
// beanpath navigates YAML and JSON documents with property paths such as
// "order.items[0].price" and checks Go packages for accessor conflicts:
//   - get / set / names: read, write and list properties of a document
//   - inspect: report getter and setter bindings of Go types
package main

import (
	"os"

	"beanpath/cmd/beanpath/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
