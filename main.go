package main

import (
	"os"

	"github.com/ceto-project/ceto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
