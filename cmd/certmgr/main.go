package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newConsole(rootCmd).Fail(err)
		os.Exit(1)
	}
}
