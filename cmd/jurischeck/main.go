package main

import (
	"os"

	"github.com/nexconsult/juris-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
