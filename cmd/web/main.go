package main

import "careerpilot_backend/internal/app"

func main() {
	app.Run()
}
