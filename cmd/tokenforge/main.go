package main

import "github.com/tokenforge/tokenforge/internal/cli"

func main() {
	cli.Execute()
}
