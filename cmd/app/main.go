package main

import (
	"github.com/cinetalk/backend/internal/app"
	"github.com/cinetalk/backend/internal/config"
)

func main() {
	app.Go(config.Load())
}
