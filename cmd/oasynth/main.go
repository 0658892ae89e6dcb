package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/davrho/oasynth"
	"github.com/davrho/oasynth/internal/mcpserver"
	"github.com/davrho/oasynth/synth"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasynth v%s\n", oasynth.Version())
	case "help", "-h", "--help":
		printUsage()
	case "resolve":
		if err := handleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "example":
		if err := handleExample(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "body":
		if err := handleBody(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// resolveFlags contains flags for the resolve command
type resolveFlags struct {
	ref      string
	format   string
	maxDepth int
}

func setupResolveFlags() (*flag.FlagSet, *resolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &resolveFlags{}

	fs.StringVar(&flags.ref, "r", "", "the $ref pointer to resolve, e.g. '#/components/schemas/Pet' (required)")
	fs.StringVar(&flags.ref, "ref", "", "the $ref pointer to resolve, e.g. '#/components/schemas/Pet' (required)")
	fs.StringVar(&flags.format, "format", "json", "output format (json or yaml)")
	fs.IntVar(&flags.maxDepth, "max-depth", synth.MaxRefDepth, "maximum reference resolution depth")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasynth resolve [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve a $ref pointer against an OpenAPI document and print the\n")
		_, _ = fmt.Fprintf(output, "fully resolved schema. Unresolvable or circular references are\n")
		_, _ = fmt.Fprintf(output, "printed as reference stubs and reported on stderr.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasynth resolve -r '#/components/schemas/Pet' openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasynth resolve -r '#/components/schemas/Order' --format yaml openapi.yaml\n")
	}

	return fs, flags
}

func handleResolve(args []string) error {
	fs, flags := setupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one file path")
	}
	if flags.ref == "" {
		fs.Usage()
		return fmt.Errorf("a $ref pointer is required (use -r or --ref)")
	}
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	doc, err := synth.LoadDocumentFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	r := synth.NewResolver(synth.WithMaxRefDepth(flags.maxDepth))
	schema := r.ResolveReference(&synth.Schema{Ref: flags.ref}, doc)
	printWarnings(r.Warnings())

	return outputStructured(schema, flags.format)
}

// exampleFlags contains flags for the example command
type exampleFlags struct {
	ref      string
	format   string
	maxDepth int
}

func setupExampleFlags() (*flag.FlagSet, *exampleFlags) {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	flags := &exampleFlags{}

	fs.StringVar(&flags.ref, "r", "", "the $ref pointer of the schema to synthesize (required)")
	fs.StringVar(&flags.ref, "ref", "", "the $ref pointer of the schema to synthesize (required)")
	fs.StringVar(&flags.format, "format", "json", "output format (json or yaml)")
	fs.IntVar(&flags.maxDepth, "max-depth", synth.MaxRefDepth, "maximum reference resolution depth")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasynth example [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Synthesize a representative placeholder value for a schema in an\n")
		_, _ = fmt.Fprintf(output, "OpenAPI document. Values are structurally plausible, not business-\n")
		_, _ = fmt.Fprintf(output, "meaningful.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasynth example -r '#/components/schemas/Pet' openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasynth example -r '#/components/schemas/User' --format yaml openapi.yaml\n")
	}

	return fs, flags
}

func handleExample(args []string) error {
	fs, flags := setupExampleFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("example command requires exactly one file path")
	}
	if flags.ref == "" {
		fs.Usage()
		return fmt.Errorf("a $ref pointer is required (use -r or --ref)")
	}
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	doc, err := synth.LoadDocumentFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	r := synth.NewResolver(synth.WithMaxRefDepth(flags.maxDepth))
	schema := r.ResolveReference(&synth.Schema{Ref: flags.ref}, doc)
	printWarnings(r.Warnings())

	example := synth.NewSynthesizer().Synthesize(schema)
	return outputStructured(example, flags.format)
}

// bodyFlags contains flags for the body command
type bodyFlags struct {
	path     string
	method   string
	output   string
	maxDepth int
}

func setupBodyFlags() (*flag.FlagSet, *bodyFlags) {
	fs := flag.NewFlagSet("body", flag.ContinueOnError)
	flags := &bodyFlags{}

	fs.StringVar(&flags.path, "p", "", "the operation path, e.g. /pets (required)")
	fs.StringVar(&flags.path, "path", "", "the operation path, e.g. /pets (required)")
	fs.StringVar(&flags.method, "m", "", "the HTTP method, e.g. post (required)")
	fs.StringVar(&flags.method, "method", "", "the HTTP method, e.g. post (required)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.maxDepth, "max-depth", synth.MaxRefDepth, "maximum reference resolution depth")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasynth body [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Build the request-body example for one operation: the selected\n")
		_, _ = fmt.Fprintf(output, "content type and a pretty-printed placeholder body ready to paste\n")
		_, _ = fmt.Fprintf(output, "into an HTTP client. Prefers application/json, else the\n")
		_, _ = fmt.Fprintf(output, "lexicographically first declared content type.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasynth body -p /pets -m post openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasynth body -p /users/{id} -m put -o body.json openapi.yaml\n")
	}

	return fs, flags
}

func handleBody(args []string) error {
	fs, flags := setupBodyFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("body command requires exactly one file path")
	}
	if flags.path == "" || flags.method == "" {
		fs.Usage()
		return fmt.Errorf("both an operation path and a method are required (use -p and -m)")
	}

	doc, err := synth.LoadDocumentFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	rb := synth.RequestBodyAt(doc, flags.path, flags.method)
	if rb == nil {
		return fmt.Errorf("no request body declared for %s %s", flags.method, flags.path)
	}

	desc := synth.BuildRequestBody(rb, doc, synth.WithMaxRefDepth(flags.maxDepth))
	if desc == nil {
		return fmt.Errorf("request body for %s %s has no content", flags.method, flags.path)
	}

	fmt.Fprintf(os.Stderr, "Content-Type: %s\n", desc.ContentType)
	if desc.Required {
		fmt.Fprintln(os.Stderr, "Required: true")
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(desc.Example+"\n"), 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", flags.output)
		return nil
	}
	fmt.Println(desc.Example)
	return nil
}

func setupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasynth mcp\n\n")
		_, _ = fmt.Fprintf(output, "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		_, _ = fmt.Fprintf(output, "resolve_ref, synthesize_example, and request_body tools.\n\n")
		_, _ = fmt.Fprintf(output, "Configuration (environment variables):\n")
		_, _ = fmt.Fprintf(output, "  OASYNTH_MAX_REF_DEPTH    maximum $ref resolution depth (default: 100)\n")
		_, _ = fmt.Fprintf(output, "  OASYNTH_MAX_INLINE_SIZE  maximum inline spec size in bytes (default: 1048576)\n")
	}
	return fs
}

func handleMCP(args []string) error {
	fs := setupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

// Output format constants
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, formatJSON, formatYAML)
	}
	return nil
}

// outputStructured prints data to stdout in the requested format.
func outputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case formatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case formatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

func printWarnings(warnings []error) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}

func printUsage() {
	fmt.Println(`oasynth - OpenAPI reference resolution and example synthesis

Usage:
  oasynth <command> [options]

Commands:
  resolve     Resolve a $ref pointer and print the resolved schema
  example     Synthesize a placeholder value for a referenced schema
  body        Build the request-body example for one operation
  mcp         Run an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasynth resolve -r '#/components/schemas/Pet' openapi.yaml
  oasynth example -r '#/components/schemas/User' --format yaml openapi.yaml
  oasynth body -p /pets -m post openapi.yaml
  oasynth mcp

Run 'oasynth <command> --help' for more information on a command.`)
}
