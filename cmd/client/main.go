package main

import (
	"flag"
	"fmt"
	"os"

	"taskboard/internal/client/api"
	"taskboard/internal/client/state"
	"taskboard/internal/client/tui"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	serverURL := flag.String("server", serverURLFromEnv(), "base URL of the todo service")
	flag.Parse()

	client := api.New(*serverURL)

	if err := tui.Run(state.New(client)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serverURLFromEnv() string {
	if url := os.Getenv("TASKBOARD_SERVER_URL"); url != "" {
		return url
	}

	return defaultServerURL
}
