package main

import "github.com/RonSheely/circe/cmd/circe/cmd"

func main() {
	cmd.Execute()
}
