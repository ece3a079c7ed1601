package main

import (
	"go-mrf/internal/app"
	"go-mrf/internal/bootstrap"
)

func main() {
	bootstrap.Run("worker", app.RunWorker)
}
