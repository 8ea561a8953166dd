package main

import "github.com/Lead-Coder/api-rate-limit/internal/app"

func main() {
	app.Run()
}
