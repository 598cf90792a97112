// Command etdoc converts, formats and checks energy-model documents.
package main

import (
	"os"

	"github.com/reoring/etdoc/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
