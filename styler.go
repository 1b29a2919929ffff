package webwraith

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/babalolajnr/webwraith/internal/css"
	"github.com/babalolajnr/webwraith/internal/dom"
	"github.com/babalolajnr/webwraith/internal/markup"
	"github.com/babalolajnr/webwraith/internal/style"
)

// Style parses every stylesheet matched by config.Stylesheets, joins them in
// discovery order and resolves each document matched by config.Documents
// against the result. If any stylesheet is malformed the error is a
// *StylesheetError and no document is loaded.
func Style(ctx context.Context, config Config, log *zap.Logger) (*StyleResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("pipeline")

	load, err := documentLoader(config.Parser)
	if err != nil {
		return nil, err
	}

	sheetFiles, stats, err := expandGlobPatterns(config.Stylesheets)
	if err != nil {
		return nil, fmt.Errorf("failed to expand stylesheet patterns: %w", err)
	}
	if len(sheetFiles) == 0 {
		return nil, fmt.Errorf("no stylesheets matched %q", config.Stylesheets)
	}
	log.Debug("Discovered stylesheets",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	sheet, err := loadStylesheets(sheetFiles, css.NewParser(log))
	if err != nil {
		return nil, err
	}

	docFiles, _, err := expandGlobPatterns(config.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to expand document patterns: %w", err)
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	resolver := style.NewResolver(log)
	results := make([]DocumentResult, len(docFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range docFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := load(path)
			if err != nil {
				return fmt.Errorf("failed to load document %s: %w", path, err)
			}
			results[i] = DocumentResult{
				Path:     path,
				Document: doc,
				Root:     resolver.Resolve(doc, sheet),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("Styled documents",
		zap.Int("stylesheets", len(sheetFiles)),
		zap.Int("rules", len(sheet.Rules)),
		zap.Int("documents", len(results)),
		zap.Int("workers", workers))

	return &StyleResult{
		FilesScanned: len(sheetFiles),
		RulesParsed:  len(sheet.Rules),
		Stats:        stats,
		Stylesheet:   sheet,
		Documents:    results,
	}, nil
}

// loadStylesheets parses every file, collecting all failures before giving
// up so one run reports every broken stylesheet.
func loadStylesheets(paths []string, parser *css.Parser) (*css.Stylesheet, error) {
	var (
		sheets []*css.Stylesheet
		errs   error
	)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to read %s: %w", path, err))
			continue
		}

		src := string(data)
		sheet, err := parser.Parse(src, path)
		if err != nil {
			errs = multierr.Append(errs, locateError(path, src, err))
			continue
		}
		sheets = append(sheets, sheet)
	}

	if errs != nil {
		return nil, &StylesheetError{Err: errs}
	}
	return css.Concat(sheets...), nil
}

// locateError turns a *css.ParseError into a *SourceError for path.
func locateError(path, source string, err error) error {
	var perr *css.ParseError
	if !errors.As(err, &perr) {
		return fmt.Errorf("%s: %w", path, err)
	}
	line, col, _ := perr.Position(source)
	return &SourceError{Path: path, Line: line, Column: col, Err: perr}
}

func documentLoader(parser string) (func(path string) (*dom.Document, error), error) {
	switch parser {
	case "", ParserMinimal:
		return func(path string) (*dom.Document, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return markup.Parse(string(data))
		}, nil
	case ParserHTML:
		return func(path string) (*dom.Document, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return dom.ParseHTML(f)
		}, nil
	default:
		return nil, fmt.Errorf("unknown document parser %q (valid: %s, %s)", parser, ParserMinimal, ParserHTML)
	}
}
