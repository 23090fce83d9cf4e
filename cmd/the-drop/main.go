package main

import (
	"github.com/r8slab/the-drop/cmd/handlers"
	"github.com/r8slab/the-drop/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	handlers.Execute()
}
