package main

import "table-compare/cmd"

func main() {
	cmd.Execute()
}
