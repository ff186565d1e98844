// Command calc is a keypad calculator for the terminal.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
