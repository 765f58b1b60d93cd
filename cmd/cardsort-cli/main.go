package main

import "cardsort/cmd/cardsort-cli/cmd"

func main() {
	cmd.Execute()
}
