package main

import "github.com/alexiusacademia/gogate/cmd"

func main() {
	cmd.Execute()
}
