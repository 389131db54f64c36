package main

import (
	"os"

	"github.com/Ejo3h9612/currencyDemo/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Forex Rates API
// @version 1.0
// @description Daily USD/NTD exchange rate ingestion and history service
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application exited with error")
		os.Exit(1)
	}
}
