package main

import "github.com/mvanholt/croon/internal/cli"

func main() {
	cli.Execute()
}
