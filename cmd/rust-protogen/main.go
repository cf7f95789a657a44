package main

import "rust-protogen/internal/cli"

func main() {
	cli.Execute()
}
