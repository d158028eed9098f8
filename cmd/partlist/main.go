package main

import "github.com/dbsmedya/partlist/cmd/partlist/cmd"

func main() {
	cmd.Execute()
}
