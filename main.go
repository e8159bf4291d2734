package main

import "github.com/hvasconcelos/horas/cmd"

func main() {
	cmd.Execute()
}
