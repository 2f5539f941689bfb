// Package main is the entry point for the sensorq CLI application.
// It provides a terminal client for asking questions about sensor data.
package main

import (
	"sensorq/cli/cmd"
)

// main is the entry point for the sensorq CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
