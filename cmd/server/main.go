package main

import "github.com/hiresync/hubspot-bridge/cmd"

func main() {
	cmd.Execute()
}
