package main

import "github.com/adam-mcdaniel/wisp/cmd"

func main() {
	cmd.Execute()
}
