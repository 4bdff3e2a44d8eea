package main

import "github.com/AtRiskMedia/tractpage-go/internal/presentation/cli"

func main() {
	cli.Execute()
}
