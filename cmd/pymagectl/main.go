// Command pymagectl is a command-line client for the pymaged REST API.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
