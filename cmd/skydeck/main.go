package main

import "github.com/skydeck-dev/skydeck/internal/cmd"

func main() {
	cmd.Execute()
}
