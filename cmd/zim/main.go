// Command zim loads a .zim program image and runs its main export,
// grounded on cmd/barn/main.go's flag-based CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"zimvm/diag"
	"zimvm/host"
	"zimvm/image"
	"zimvm/interp"
	"zimvm/value"
)

func main() {
	imagePath := flag.String("image", "", "Path to a .zim program image")
	entry := flag.String("entry", "main", "Exported function to run")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, comma-separated)")

	flag.Parse()

	if *imagePath == "" {
		log.Fatal("Usage: zim -image path/to/program.zim [-entry main]")
	}

	pkg, err := image.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	registry := host.NewRegistry()
	registry.SetLoader(loadRelativeTo(*imagePath))

	it := interp.New()
	it.Importer = registry.Import

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		it.Tracer = diag.NewTracer(true, filters, os.Stderr)
	}

	result, err := interp.CallExportFn(it, pkg, *entry, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(result.String())
}

// loadRelativeTo returns a package loader for IMPORT that resolves
// logical names as <dir>/<name>.zim next to the entry image, since the
// core leaves the on-disk layout of imported packages to the host.
func loadRelativeTo(entryPath string) func(name string) (*value.Object, error) {
	dir := entryPath[:strings.LastIndex(entryPath, "/")+1]
	return func(name string) (*value.Object, error) {
		return image.Load(dir + name + ".zim")
	}
}
