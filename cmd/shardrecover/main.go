package main

import "github.com/strangelove-ventures/shardrecover/cmd/shardrecover/cmd"

func main() {
	cmd.Execute()
}
