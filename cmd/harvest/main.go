package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := newParser(cli, stdout, stderr)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'harvest --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// A config file only fills in flags that were not given on the command
	// line, so parse again with the file as a resolver.
	cfg := &Config{}
	if cli.Config != "" {
		cfg, err = LoadConfigFile(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
		}
		cli = &CLI{}
		parser, err = newParser(cli, stdout, stderr, kong.Resolvers(cfg.Resolver()))
		if err != nil {
			return err
		}
		if kongCtx, err = parser.Parse(args); err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		Config: cfg,
	}

	return kongCtx.Run(deps)
}

func newParser(cli *CLI, stdout, stderr io.Writer, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("harvest"),
		kong.Description("Harvest the text of a website for indexing"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	}, opts...)

	parser, err := kong.New(cli, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return parser, nil
}
