package main

import "devctl/internal/cli"

func main() {
	cli.Execute()
}
