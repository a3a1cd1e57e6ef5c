/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/ftlsave/cmd/ftlsave/cmd"

func main() {
	cmd.Execute()
}
