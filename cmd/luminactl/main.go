package main

import "github.com/luminachain/lumina-wallet/cmd/luminactl/commands"

func main() {
	commands.Execute()
}
