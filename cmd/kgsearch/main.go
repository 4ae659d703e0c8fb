package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alan-mat/kgsearch/internal/config"
	"github.com/alan-mat/kgsearch/internal/provider"
	"github.com/alan-mat/kgsearch/internal/provider/kgsearch"
	"github.com/alexflint/go-arg"
)

const (
	ProgramName   = "kgsearch"
	Version       = "v0.1.0"
	RepositoryUrl = "github.com/alan-mat/kgsearch"
)

type searchCmd struct {
	Keywords []string `arg:"-k,--keyword,separate" help:"search keyword, only the first one is used"`
	IDs      []string `arg:"--id,separate" help:"entity id such as /m/065qh, may be repeated"`
	Types    []string `arg:"-t,--type,separate" help:"restrict results to a schema.org type, may be repeated"`
	Language string   `arg:"-l,--language" help:"ISO 639 language code"`
	Prefix   bool     `arg:"--prefix" help:"match keyword as a prefix"`
	Limit    int      `arg:"-n,--limit" help:"maximum number of entities (1-20)"`
	DryRun   bool     `arg:"--dry-run" help:"print the request url without sending it"`
}

type batchCmd struct {
	File        string `arg:"positional,required" help:"YAML file with a list of queries"`
	Concurrency int    `arg:"-c,--concurrency" default:"4" help:"number of queries in flight"`
}

type args struct {
	Search *searchCmd `arg:"subcommand:search" help:"search the knowledge graph"`
	Batch  *batchCmd  `arg:"subcommand:batch" help:"run a batch of searches from a file"`

	Config  string `arg:"--config" default:"kgsearch.yaml" help:"path to the config file"`
	Token   string `arg:"--token" help:"API key, overrides config and KG_API_KEY"`
	JSON    bool   `arg:"--json" help:"print results as JSON"`
	Verbose bool   `arg:"-v,--verbose" help:"enable debug logging"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", ProgramName, Version)
}

func (args) Epilogue() string {
	return fmt.Sprintf("For more information visit %s", RepositoryUrl)
}

func main() {
	var args args

	p, err := arg.NewParser(arg.Config{Program: ProgramName}, &args)
	if err != nil {
		log.Fatalf("there was an error in the definition of the Go struct: %v", err)
	}
	p.MustParse(os.Args[1:])

	if p.Subcommand() == nil {
		p.WriteUsage(os.Stdout)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	conf, err := loadConfig(args.Config, args.Config == config.DefaultConfigPath)
	if err != nil {
		slog.Error("failed to load config", "path", args.Config, "err", err)
		os.Exit(1)
	}
	if args.Token != "" {
		conf.Token = args.Token
	}
	if args.JSON {
		conf.Output = config.OutputJSON
	}

	searcher, err := provider.NewEntitySearcher(
		provider.EntitySearcherTypeKnowledgeGraph,
		kgsearch.WithEndpoint(conf.Endpoint),
		kgsearch.WithTimeout(conf.TimeoutDuration()),
	)
	if err != nil {
		slog.Error("failed to create entity searcher", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	var cmdErr error
	switch cmd := p.Subcommand().(type) {
	case *searchCmd:
		cmdErr = runSearch(ctx, os.Stdout, searcher, conf, cmd)
	case *batchCmd:
		cmdErr = runBatch(ctx, os.Stdout, searcher, conf, cmd)
	default:
		p.FailSubcommand("unrecognized command", p.SubcommandNames()...)
	}
	stop()

	if cmdErr != nil {
		slog.Error("command failed", "err", cmdErr)
		os.Exit(1)
	}
}

// loadConfig reads the config file. A missing file is only tolerated when
// the path was not given explicitly.
func loadConfig(path string, optional bool) (*config.Config, error) {
	conf, err := config.ReadConfig(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("config file not found, using defaults", "path", path)
			return config.Default(), nil
		}
		return nil, err
	}
	return conf, nil
}
