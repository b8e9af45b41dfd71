package main

import "github.com/pfrederiksen/rcja-events/internal/cli"

func main() {
	cli.Execute()
}
