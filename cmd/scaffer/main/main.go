package main

import (
	"os"

	"github.com/arthur-debert/scaffer/cmd/scaffer"
)

func main() {
	os.Exit(scaffer.Execute(scaffer.NewRootCmd()))
}
