package main

import "github.com/arefin-khan/loglens/internal/cmd"

func main() {
	cmd.Execute()
}
