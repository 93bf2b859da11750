// Command treectl is a command-line front end over store.Store: create
// named containers of any of the three kinds and drive them through
// insert/search/remove/enumerate/snapshot, or start a debug HTTP server
// exposing the same containers read-only.
package main

import (
	"log"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("treectl: %v", err)
	}
}
