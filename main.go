package main

import "github.com/theirongolddev/steady/cmd"

func main() {
	cmd.Execute()
}
