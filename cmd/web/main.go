package main

import (
	"booklyn_backend/internal/app"
	"booklyn_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
