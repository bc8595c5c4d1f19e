package main

import "github.com/nfrund/demosite/cmd/demosite-cli/cmd"

func main() {
	cmd.Execute()
}
