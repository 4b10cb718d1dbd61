package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Nabil-Bkz/boutique/internal/client"
	"github.com/Nabil-Bkz/boutique/internal/endpoints"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)
	api := fs.String("api", os.Getenv(endpoints.EnvAPIURL), "Backend base URL (default from API_URL or "+endpoints.DefaultBaseURL+")")
	format := fs.String("format", "env", "Output format: env or json")
	check := fs.Bool("check", false, "Fail unless the backend answers on the API base")
	timeout := fs.Duration("timeout", 5*time.Second, "Timeout for -check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ep := endpoints.New(*api)
	switch *format {
	case "env":
		fmt.Fprintf(out, "API_URL=%s\nAPI_BASE=%s\nADMIN_BASE_URL=%s\n", ep.BaseURL, ep.APIBase, ep.AdminBaseURL)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]string{
			"baseUrl":      ep.BaseURL,
			"apiBase":      ep.APIBase,
			"adminBaseUrl": ep.AdminBaseURL,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	if *check {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		if err := client.New(ep, client.WithTimeout(*timeout)).Ping(ctx); err != nil {
			return fmt.Errorf("backend check failed: %w", err)
		}
	}
	return nil
}
