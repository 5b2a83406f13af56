package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/mcncl/gojson"
	"github.com/mcncl/gojson/internal/config"
	"github.com/mcncl/gojson/internal/transform"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check       bool   `help:"Validate only: report success or the error position, write nothing." short:"c"`
	Pretty      bool   `help:"Pretty-print the output." short:"p"`
	Indent      string `help:"Indent unit for pretty printing." default:"  "`
	Minify      bool   `help:"Emit compact output (the default; overrides config file pretty setting)." short:"m"`
	Sort        bool   `help:"Sort object keys lexicographically." short:"s"`
	KeyCase     string `help:"Rewrite object keys: snake, camel, pascal, or kebab." short:"k"`
	BigNumbers  bool   `help:"Keep numeric literals verbatim (lossless huge/precise numbers)." short:"b"`
	MaxDepth    int    `help:"Maximum container nesting depth." default:"128"`
	Config      string `help:"Path to a config file. Defaults to the nearest .gojson.yml." type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("gojson"),
		kong.Description("A tool to validate, format, and transform JSON"),
		kong.UsageOnError(),
	)

	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("gojson version %s\n", Version)
		return
	}

	ctx, err := buildContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = ctx.log.Sync() }()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", gojson.FriendlyMessage(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: gojson --help\n")
		os.Exit(1)
	}
}

// buildContext resolves the config file and flag overrides into one Context
func buildContext() (*Context, error) {
	logger := zap.NewNop()
	if CLI.Debug {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to set up debug logging: %w", err)
		}
		logger = dev
	}

	cfg := config.NewConfig()
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Sugar().Debugw("loaded config file", "path", path)
	}

	// flags override the config file
	if CLI.Pretty {
		cfg.Format.Pretty = true
		cfg.Format.Indent = CLI.Indent
	}
	if CLI.Minify {
		cfg.Format.Pretty = false
	}
	if CLI.Sort {
		cfg.Objects.SortKeys = true
	}
	if CLI.KeyCase != "" {
		cfg.Keys.Case = CLI.KeyCase
	}
	if CLI.BigNumbers {
		cfg.Numbers.ArbitraryPrecision = true
	}
	if CLI.MaxDepth != 128 {
		cfg.Limits.MaxDepth = CLI.MaxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Context{cfg: cfg, log: logger.Sugar()}, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read and parse the input
	data, err := readInput()
	if err != nil {
		return err
	}
	ctx.log.Debugw("read input", "bytes", len(data))

	parseOpts := []gojson.Option{
		gojson.WithPreserveOrder(ctx.cfg.Objects.PreserveOrder),
		gojson.WithArbitraryPrecision(ctx.cfg.Numbers.ArbitraryPrecision),
		gojson.WithMaxDepth(ctx.cfg.Limits.MaxDepth),
	}

	start := time.Now()
	value, err := gojson.Parse(data, parseOpts...)
	if err != nil {
		return err
	}
	ctx.log.Debugw("parsed input", "type", value.Type().String(), "elapsed", time.Since(start))

	if CLI.Check {
		fmt.Fprintln(os.Stderr, "valid JSON")
		return nil
	}

	// 2. Apply key transforms
	if ctx.cfg.Keys.Case != "" {
		caser, err := transform.NewKeyCaser(ctx.cfg.Keys.Case)
		if err != nil {
			return err
		}
		caser.Apply(value)
		ctx.log.Debugw("re-cased object keys", "case", ctx.cfg.Keys.Case)
	}

	// 3. Serialize with the configured formatting
	var writeOpts []gojson.Option
	if ctx.cfg.Format.Pretty {
		writeOpts = append(writeOpts, gojson.WithIndent(ctx.cfg.Format.Indent))
	}

	start = time.Now()
	out, err := gojson.Serialize(value, writeOpts...)
	if err != nil {
		return err
	}
	ctx.log.Debugw("serialized output", "bytes", len(out), "elapsed", time.Since(start))

	// 4. Output the result
	return writeOutput(out)
}

// readInput reads JSON from file, stdin, or the interactive prompt
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("file '%s' not found", CLI.Input)
			}
			return nil, fmt.Errorf("failed to read file '%s': %w", CLI.Input, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("input file '%s' is empty", CLI.Input)
		}
		return data, nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to access stdin: %w", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, fmt.Errorf("no input provided: specify a file with -i or pipe JSON data to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input received from stdin")
	}
	return data, nil
}

// writeOutput writes the result to file or stdout
func writeOutput(data []byte) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write to file '%s': %w", CLI.Output, err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}
	_, err := fmt.Println(string(data))
	return err
}

// readInteractiveInput provides an interactive mode for users to paste
// JSON and signal completion with Ctrl+D (EOF)
func readInteractiveInput() ([]byte, error) {
	fmt.Fprintln(os.Stderr, "gojson Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(strings.TrimSpace(jsonData)) == 0 {
		return nil, fmt.Errorf("empty input received")
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return []byte(jsonData), nil
}
