package main

import "github.com/frahmantamala/hotel-management/cmd"

func main() {
	cmd.Execute()
}
