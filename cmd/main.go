package main

import (
	"os"

	"metalwatch/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Metalwatch API
// @version 1.0
// @description WhatsApp metal price parser: webhook ingestion plus last-known-value queries
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application exited with error")
		os.Exit(1)
	}
}
