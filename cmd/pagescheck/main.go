package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/owasp-blt/pagescheck/pkg/app"
)

func main() {
	// values exported by the workflow win over a local .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Can't load .env: %s", err)
	}

	app.NewApp().RunOnce()
}
