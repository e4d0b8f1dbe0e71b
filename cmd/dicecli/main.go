package main

import (
	"os"

	"github.com/tgrante/dicegame-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
