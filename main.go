package main

import (
	"os"

	"github.com/GoNanoID/GoNanoID/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
