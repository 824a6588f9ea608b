package main

import (
	"github.com/shoal-project/shoal/cmd/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
