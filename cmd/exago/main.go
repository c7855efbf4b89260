package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alan-mat/exago/internal/api"
	"github.com/alan-mat/exago/internal/exa"
	"github.com/alan-mat/exago/internal/provider"
	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	ProgramName   = "EXAGO"
	Version       = "v0.0.0"
	RepositoryUrl = "github.com/alan-mat/exago"
)

type searchCmd struct {
	Query        []string `arg:"positional,required" help:"search query text"`
	Limit        int      `arg:"--limit,-n" help:"number of results to request"`
	Type         string   `arg:"--type,-t" help:"search type: neural, keyword or auto"`
	Category     string   `arg:"--category,-c" help:"restrict results to a content category"`
	Include      []string `arg:"--include" help:"only return results from these domains"`
	Exclude      []string `arg:"--exclude" help:"never return results from these domains"`
	Livecrawl    string   `arg:"--livecrawl" help:"crawl freshness mode: never, fallback, always or preferred"`
	NoAutoprompt bool     `arg:"--no-autoprompt" help:"disable remote query rewriting"`
	Text         bool     `arg:"--text" help:"include extracted page text"`
	Highlights   bool     `arg:"--highlights" help:"include highlight snippets"`
	Summary      bool     `arg:"--summary" help:"include generated summaries"`
	Raw          bool     `arg:"--raw" help:"print the raw response body as JSON"`
}

type args struct {
	Search  *searchCmd `arg:"subcommand:search" help:"run a semantic web search"`
	Config  string     `arg:"--config" help:"path to a yaml config file"`
	Verbose bool       `arg:"--verbose,-v" help:"log request and response snapshots"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", ProgramName, Version)
}

func (args) Epilogue() string {
	return fmt.Sprintf("For more information visit %s", RepositoryUrl)
}

func main() {
	var args args

	p, err := arg.NewParser(arg.Config{Program: strings.ToLower(ProgramName)}, &args)
	if err != nil {
		log.Fatalf("there was an error in the definition of the Go struct: %v", err)
	}
	p.MustParse(os.Args[1:])

	if p.Subcommand() == nil {
		p.WriteUsage(os.Stdout)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	// a local .env may provide EXA_API_KEY during development
	_ = godotenv.Load()

	conf, err := ReadConfig(args.Config)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	switch cmd := p.Subcommand().(type) {
	case *searchCmd:
		if err := runSearch(cmd, conf, args.Verbose); err != nil {
			log.Fatal(err)
		}
	default:
		p.FailSubcommand("unrecognized command", p.SubcommandNames()...)
	}
}

func runSearch(cmd *searchCmd, conf *config, verbose bool) error {
	key := conf.ApiKey
	if key == "" {
		key = os.Getenv("EXA_API_KEY")
	}

	copts := make([]exa.Option, 0, 3)
	if conf.Endpoint != "" {
		copts = append(copts, exa.WithEndpoint(conf.Endpoint))
	}
	if conf.TimeoutSeconds > 0 {
		copts = append(copts, exa.WithTimeout(time.Duration(conf.TimeoutSeconds)*time.Second))
	}
	if verbose {
		copts = append(copts, exa.WithLogger(slog.Default()))
	}

	opts := searchOptions(cmd, conf)

	if cmd.Raw {
		return searchRaw(cmd, key, opts, copts)
	}

	searcher, err := provider.NewWebSearcher(provider.WebSearcherTypeExa, key, copts...)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	responses := make([]*api.WebSearchResponse, len(cmd.Query))
	for i, q := range cmd.Query {
		i, q := i, q
		g.Go(func() error {
			resp, err := searcher.Search(ctx, api.WebSearchRequest{
				Query:   q,
				Limit:   cmd.Limit,
				Options: opts,
			})
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, resp := range responses {
		printResponse(resp)
	}
	return nil
}

func searchRaw(cmd *searchCmd, key string, opts exa.SearchOptions, copts []exa.Option) error {
	client, err := exa.New(key, copts...)
	if err != nil {
		return err
	}

	for _, q := range cmd.Query {
		result, err := client.SearchAndContents(context.Background(), q, opts)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func searchOptions(cmd *searchCmd, conf *config) exa.SearchOptions {
	opts := exa.SearchOptions{}
	for k, v := range conf.Search.Options {
		opts[k] = v
	}

	if cmd.Limit != 0 {
		opts["numResults"] = cmd.Limit
	}
	if cmd.Type != "" {
		opts["type"] = cmd.Type
	}
	if cmd.Category != "" {
		opts["category"] = cmd.Category
	}
	if len(cmd.Include) > 0 {
		opts["includeDomains"] = cmd.Include
	}
	if len(cmd.Exclude) > 0 {
		opts["excludeDomains"] = cmd.Exclude
	}
	if cmd.Livecrawl != "" {
		opts["livecrawl"] = cmd.Livecrawl
	}
	if cmd.NoAutoprompt {
		opts["useAutoprompt"] = false
	}
	if cmd.Text {
		opts["text"] = map[string]any{}
	}
	if cmd.Highlights {
		opts["highlights"] = map[string]any{}
	}
	if cmd.Summary {
		opts["summary"] = map[string]any{}
	}
	return opts
}

func printResponse(resp *api.WebSearchResponse) {
	fmt.Printf("results for %q (request %s):\n", resp.Query, resp.RequestId)
	for i, doc := range resp.Results {
		fmt.Printf("%2d. %s (%.3f)\n    %s\n", i+1, doc.Title, doc.Score, doc.Url)
		if doc.PublishedDate != "" || doc.Author != "" {
			fmt.Printf("    %s %s\n", doc.PublishedDate, doc.Author)
		}
		for _, h := range doc.Highlights {
			fmt.Printf("    > %s\n", h)
		}
	}
	fmt.Println()
}
