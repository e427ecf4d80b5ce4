// Command capmap reports which concrete types in a Go module satisfy which
// interfaces, as a table, a Mermaid class diagram, or YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/oopconcepts/internal/capability"
	"github.com/olehluchkiv/oopconcepts/internal/logging"
	"github.com/olehluchkiv/oopconcepts/internal/render"
)

func main() {
	// flag.Parse stops at the first positional argument, so "capmap ./repo
	// -format yaml" needs the flags moved to the front first.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("capmap", flag.ExitOnError)
	pathFlag := fs.String("path", "", "module directory to analyze (alternative to positional argument)")
	filter := fs.String("filter", "", "package path prefix filter")
	includeStdlib := fs.Bool("include-stdlib", false, "include standard library interfaces")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported types and interfaces")
	format := fs.String("format", "table", "output format (table, mermaid, yaml)")
	output := fs.String("output", "", "write the report to file instead of stdout")
	logFile := fs.String("log-file", "logs/capmap.log", "log file path")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	dir := *pathFlag
	if len(positional) > 0 {
		dir = positional[0]
	}
	if dir == "" {
		dir = "."
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	if err := validFormat(*format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := capability.Options{
		Filter:            *filter,
		IncludeStdlib:     *includeStdlib,
		IncludeUnexported: *includeUnexported,
	}
	report, err := capability.Analyze(ctx, dir, opts, logger)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error analyzing packages: %v\n", err)
		os.Exit(1)
	}
	report = capability.Filter(report, opts)
	logger.Info("report filtered",
		"capabilities", len(report.Capabilities),
		"variants", len(report.Variants),
		"bindings", len(report.Bindings))

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("failed to create output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := write(w, report, *format); err != nil {
		logger.Error("failed to write report", "error", err)
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
	if *output != "" {
		fmt.Printf("Wrote %s report to %s\n", *format, *output)
	}
}

func validFormat(format string) error {
	switch format {
	case "table", "mermaid", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (valid: table, mermaid, yaml)", format)
}

// write renders report in the given format to w.
func write(w io.Writer, report *capability.Report, format string) error {
	switch format {
	case "table":
		return render.Table(w, report)
	case "mermaid":
		_, err := fmt.Fprintln(w, render.Mermaid(report, render.DefaultMermaidOptions()))
		return err
	case "yaml":
		data, err := render.YAML(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return validFormat(format)
}

// reorderArgs separates flags from positional arguments so that flags may
// appear on either side of the path. Value flags written without "=" consume
// the next argument.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlags := map[string]bool{
		"-path": true, "-filter": true, "-format": true,
		"-output": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
		name := "-" + strings.TrimLeft(arg, "-")
		if !strings.Contains(arg, "=") && valueFlags[name] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positional
}
