package main

import (
	"os"

	"github.com/charmbracelet/log"

	"ipinspect/internal/app"
)

func main() {
	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatal("ipinspect failed", "error", err)
	}
}
