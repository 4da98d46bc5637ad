package main

import "github.com/projectpulse/dashboard-services/cmd"

func main() {
	cmd.Execute()
}
