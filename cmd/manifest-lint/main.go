package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-appmanifest"
	"github.com/goliatone/go-appmanifest/pkg/manifest"
)

func main() {
	strict := flag.Bool("strict", false, "treat lint findings as errors")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [sources...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nValidate and lint webapp manifest documents (paths or URLs).\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	sources := flag.Args()
	if len(sources) == 0 {
		sources = []string{"webapp.json"}
	}

	ctx := context.Background()
	loader := appmanifest.NewLoader(manifest.LoaderOptions{AllowHTTPFallback: true})

	failed := false
	findings := 0
	for _, raw := range sources {
		src := parseSource(raw)
		if src == nil {
			fmt.Fprintf(os.Stderr, "%s: invalid source\n", raw)
			failed = true
			continue
		}

		m, err := loader.Load(ctx, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", raw, err)
			failed = true
			continue
		}

		for _, finding := range appmanifest.Lint(&m) {
			findings++
			if finding.Param != "" {
				fmt.Fprintf(os.Stderr, "%s: %s: %s\n", raw, finding.Param, finding.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %s\n", raw, finding.Message)
			}
		}
	}

	if failed || (*strict && findings > 0) {
		os.Exit(1)
	}
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
