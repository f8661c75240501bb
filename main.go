package main

import "github.com/rushsh/rush/cmd"

func main() {
	cmd.Execute()
}
