// Command collect loads a JSON array of records and runs one collection
// operation on it, printing the result as JSON.
//
//	collect --input pets.json count-by animal
//	cat pets.json | collect sort name
//	collect -i pets.json pull id 3 7
//
// Configuration is read from flags, then from COLLECT_* environment
// variables, which may be provided through .env and .env.local files.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.OnInitialize(loadEnvFiles)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
