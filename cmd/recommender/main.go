package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Getenv)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
