package main

import (
	"github.com/consensys/go-slisp/pkg/cmd"
)

func main() {
	cmd.Execute()
}
