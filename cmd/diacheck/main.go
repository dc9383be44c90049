package main

import "github.com/emiliopalmerini/diacheck/internal/cli"

func main() {
	cli.Execute()
}
