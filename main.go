package main

import (
	"os"

	"github.com/Lucalangella/FiletxtKPI/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
