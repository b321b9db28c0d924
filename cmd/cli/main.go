package main

import "github.com/satriahrh/codeswitch/internal/cli"

func main() {
	cli.Execute()
}
