package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/healthmate/healthmate/internal/cli"
)

func main() {
	apiURL := getEnv("HEALTHMATE_API_URL", "http://localhost:8080")
	statePath := getEnv("HEALTHMATE_STATE_DB", filepath.Join("data", "healthmate-session.db"))
	userID := getEnv("HEALTHMATE_USER_ID", "")
	devDBPath := getEnv("HEALTHMATE_DEV_DB", filepath.Join("data", "healthmate-dev.db"))
	port := getEnv("PORT", "8080")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "serve":
		err = cli.RunServeCommand(devDBPath, port)
	case "fetch":
		flags := flag.NewFlagSet("fetch", flag.ExitOnError)
		date := flags.String("date", "", "selected date override (YYYY-MM-DD)")
		if err = flags.Parse(os.Args[2:]); err == nil {
			err = cli.RunFetchCommand(ctx, apiURL, statePath, userID, flags.Arg(0), *date)
		}
	case "whoami":
		err = cli.RunWhoamiCommand(ctx, apiURL, userID)
	case "reset":
		err = cli.RunResetCommand(apiURL, statePath)
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: healthmate <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  serve                      run the local dev backend")
	fmt.Fprintln(os.Stderr, "  fetch [-date D] <domain>   sync one domain for the configured user")
	fmt.Fprintln(os.Stderr, "  whoami                     print the configured user's profile")
	fmt.Fprintln(os.Stderr, "  reset                      clear all cached state")
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
