package main

import (
	"context"
	"log"

	"campomarket/internal/pkg"

	"github.com/sirupsen/logrus"
)

func main() {
	log.Println("App start")

	app, err := pkg.NewApp(context.Background())
	if err != nil {
		logrus.Fatal(err)
	}
	app.RunApp()

	log.Println("App terminated")
}
