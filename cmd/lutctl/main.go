// Command lutctl builds lutgrid lookup tables from YAML documents and
// evaluates them from the command line.
//
//	lutctl check -t table.yaml
//	lutctl eval -t table.yaml -p 1,5 [--closed]
//	lutctl metrics -t table.yaml -p 1,5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
