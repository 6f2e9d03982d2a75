package main

import (
	"github.com/joho/godotenv"

	"studyquest/cmd/sq/root"
)

func main() {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()
	root.Execute()
}
