package main

import "cancer_api/internal/cli"

func main() {
	cli.Execute()
}
