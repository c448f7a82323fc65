package main

import (
	"os"

	"github.com/redpen/redpen/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
