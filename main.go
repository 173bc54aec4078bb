package main

import "github.com/kpob/nctl/cmd"

func main() {
	cmd.Execute()
}
