package main

import "github.com/eslsoft/drillnet/cmd"

func main() {
	cmd.Execute()
}
