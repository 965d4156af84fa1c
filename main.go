package main

import (
	"unityrand/cmd"
)

func main() {
	cmd.Execute()
}
