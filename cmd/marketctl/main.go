package main

import "github.com/jhoicas/Marketplace-api/internal/cli"

func main() {
	cli.Execute()
}
