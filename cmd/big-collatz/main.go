// cmd/big-collatz/main.go
package main

import (
	"github.com/lologar1/big-collatz/internal/app"
	"github.com/lologar1/big-collatz/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
