package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mrunalid-blip/coursechat"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  coursechat.CatalogService
	Asker    coursechat.Asker
	Contacts coursechat.ContactService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Catalog string  `help:"Path to the course catalog JSON file" env:"COURSECHAT_CATALOG" default:"data/courses.json"`
	Lenient float64 `help:"Similarity threshold for matching raw questions" default:"0.35"`
	Strict  float64 `help:"Similarity threshold for validating LLM-suggested names" default:"0.6"`

	Serve   ServeCmd   `cmd:"" help:"Run the chat HTTP server"`
	Ask     AskCmd     `cmd:"" help:"Answer a single question from the command line"`
	Courses CoursesCmd `cmd:"" help:"List the loaded course names"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address" env:"COURSECHAT_ADDR" default:":5000"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the course catalog"`
}

// CoursesCmd is the "courses" subcommand.
type CoursesCmd struct{}
