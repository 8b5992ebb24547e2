package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-appmanifest"
	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/render"
	"github.com/goliatone/go-appmanifest/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "webapp.json", "manifest path or URL")
	output := flag.String("output", "", "output file for collected bindings (stdout if empty)")
	format := flag.String("format", "json", "output format: json or pretty")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	m, err := appmanifest.Load(ctx, src, manifest.LoaderOptions{AllowHTTPFallback: true})
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	renderer, err := tui.New(tui.WithOutputFormat(outputFormat(*format)))
	if err != nil {
		log.Fatalf("Failed to configure prompt session: %v", err)
	}

	bindings, err := renderer.Render(ctx, m, render.RenderOptions{})
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}
		log.Fatalf("Failed to collect bindings: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, bindings, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Bindings written to %s\n", *output)
	} else {
		fmt.Println(string(bindings))
	}
}

func outputFormat(raw string) tui.OutputFormat {
	if strings.EqualFold(strings.TrimSpace(raw), "pretty") {
		return tui.OutputFormatPrettyText
	}
	return tui.OutputFormatJSON
}

func parseSource(raw string) manifest.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return manifest.SourceFromURL(path)
	}
	return manifest.SourceFromFile(path)
}
