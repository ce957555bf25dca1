package main

import (
	"os"

	"github.com/gorilla-tactics/cookieconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
