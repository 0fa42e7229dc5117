package main

import (
	"log"

	"github.com/thorvi/playtrack/cmd/playtrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
