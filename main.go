/*
	Copyright 2025 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/f1-qualifying-loader/cmd"

func main() {
	cmd.Execute()
}
