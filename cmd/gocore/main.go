package main

import (
	"os"

	"github.com/corelang/gocore/cmd/gocore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
