package main

import "github.com/angrycuban13/TPDbCollectionMaker/internal/cmd"

func main() {
	cmd.Execute()
}
