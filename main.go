package main

import "github.com/geomodels/goreinject/cmd"

func main() {
	cmd.Execute()
}
