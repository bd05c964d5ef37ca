package main

import (
	"fmt"
	"os"

	cmd "github.com/stackplan/stackplan/cmd/stackplan"
)

func main() {
	err := cmd.Stackplan.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
