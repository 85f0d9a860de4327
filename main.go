package main

import "github.com/collabhq/roster/cmd"

func main() {
	cmd.Execute()
}
