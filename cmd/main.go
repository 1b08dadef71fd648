// cmd/main.go
package main

import (
	"go-atm-ledger/app"
)

func main() {
	app.Run()
}
