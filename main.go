package main

import "adaptctl/cmd"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
