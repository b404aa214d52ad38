package main

import (
	"os"

	"github.com/viant/uuidb64/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
