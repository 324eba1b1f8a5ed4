package main

import "github.com/lagersmit/aishub-api-public/internal/cli"

func main() {
	cli.Execute()
}
