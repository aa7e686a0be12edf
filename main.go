package main

import "github.com/streamgit/streamgit/cmd"

func main() {
	cmd.Execute()
}
