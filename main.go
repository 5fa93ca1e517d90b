package main

import (
	"context"

	"github.com/mrdkprj/supported/cmd"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		logrus.Fatal(err)
	}
}
