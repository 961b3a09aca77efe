package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mrunalid-blip/coursechat"
	"github.com/mrunalid-blip/coursechat/fs"
	"github.com/mrunalid-blip/coursechat/gemini"
	"github.com/mrunalid-blip/coursechat/mem"
	"github.com/mrunalid-blip/coursechat/resolve"
	chatslog "github.com/mrunalid-blip/coursechat/slog"
	"github.com/mrunalid-blip/coursechat/zoho"
	"google.golang.org/genai"
)

// llmTimeout bounds a single Gemini call across all commands.
const llmTimeout = 20 * time.Second

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services exposed for end-to-end testing.
	Catalog coursechat.CatalogService
	Asker   coursechat.Asker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursechat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursechat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load the catalog. A load failure degrades to an empty catalog and
	// is logged by the decorator, never fatal.
	store := mem.NewStore(fs.NewSource(cli.Catalog))
	catalog := chatslog.NewLoggingCatalog(store, logger)
	_ = catalog.Reload(ctx)
	m.Catalog = catalog
	deps.Catalog = catalog

	matcher := &coursechat.Matcher{Lenient: cli.Lenient, Strict: cli.Strict}

	resolver := &resolve.Resolver{
		Catalog: catalog,
		Matcher: matcher,
		Logger:  logger,
	}

	// The LLM stages are optional: without a key the pipeline still
	// serves catalog answers and the fixed not-found notice.
	if cmd == "serve" || cmd == "ask" {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; answering from the catalog only. Get an API key at https://aistudio.google.com/apikey")
		} else {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			opts := []gemini.Option{
				gemini.WithModel(os.Getenv("GEMINI_MODEL")),
				gemini.WithTimeout(llmTimeout),
			}
			resolver.Names = gemini.NewSuggester(client, opts...)
			resolver.General = gemini.NewAnswerer(client, opts...)
		}
	}

	m.Asker = chatslog.NewLoggingAsker(resolver, logger)
	deps.Asker = m.Asker

	if cmd == "serve" {
		deps.Contacts = zoho.NewClient(os.Getenv("ZOHO_ACCESS_TOKEN"))
	}

	return kongCtx.Run(deps)
}
