package main

import "github.com/MeKo-Tech/colorlab/internal/cmd"

func main() {
	cmd.Execute()
}
