// Package driver orchestrates generation runs: load schema and manifest,
// validate, then build one IR document per requested strategy, in
// parallel. The registry and schema snapshot are shared read-only across
// the parallel runs.
package driver

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"protogen/internal/diag"
	"protogen/internal/encoding"
	"protogen/internal/ir"
	"protogen/internal/loader"
	"protogen/internal/observ"
	"protogen/internal/project"
	"protogen/internal/validate"
)

// Request describes one invocation of the pipeline.
type Request struct {
	ManifestPath string
	SchemaPath   string

	// Strategies overrides the manifest's strategy, e.g. to generate
	// both layouts in one run. Empty means manifest only.
	Strategies []string

	// Cache enables the IR disk cache. Nil disables caching.
	Cache *DiskCache

	// Timings enables phase timing per strategy run.
	Timings bool
}

// StrategyResult is the outcome of one (schema, strategy) build.
type StrategyResult struct {
	Strategy string
	Document *ir.Document
	Cached   bool
	Timer    *observ.Timer
}

// Result is the outcome of the whole request.
type Result struct {
	Manifest *project.Manifest
	Schema   *loader.Schema

	// Diagnostics from validation. When it has errors no documents are
	// built.
	Diagnostics *diag.Bag

	Runs []StrategyResult
}

// Run executes the pipeline. Validation failures are reported through
// Result.Diagnostics, not through the error return; the error covers
// I/O, malformed inputs and internal failures only.
func Run(ctx context.Context, req Request) (*Result, error) {
	manifest, err := project.Load(req.ManifestPath)
	if err != nil {
		return nil, err
	}
	sch, err := loader.LoadFile(req.SchemaPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Manifest: manifest, Schema: sch}

	validator := validate.NewValidator(sch.Registry, manifest.Limits.MaxNestingDepth)
	res.Diagnostics = validator.Validate(sch.Messages)
	if refErrs := sch.Registry.ValidateReferences(); len(refErrs) != 0 {
		for _, msg := range refErrs {
			res.Diagnostics.AddError(diag.RegDanglingReference, "", msg)
		}
		res.Diagnostics.Sort()
	}
	if res.Diagnostics.HasErrors() {
		return res, nil
	}

	strategies := req.Strategies
	if len(strategies) == 0 {
		strategies = []string{manifest.Protocol.Strategy}
	}
	// Resolve all names before spawning anything.
	resolved := make([]encoding.Strategy, len(strategies))
	for i, name := range strategies {
		if resolved[i], err = encoding.Select(name); err != nil {
			return nil, err
		}
	}

	schemaData, err := os.ReadFile(req.SchemaPath)
	if err != nil {
		return nil, err
	}
	manifestData, err := os.ReadFile(req.ManifestPath)
	if err != nil {
		return nil, err
	}

	res.Runs = make([]StrategyResult, len(resolved))
	g, ctx := errgroup.WithContext(ctx)
	for i, strat := range resolved {
		i, strat := i, strat
		g.Go(func() error {
			run, err := buildOne(ctx, req, manifest, sch, strat, schemaData, manifestData)
			if err != nil {
				return fmt.Errorf("strategy %s: %w", strat.Name(), err)
			}
			res.Runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func buildOne(ctx context.Context, req Request, manifest *project.Manifest, sch *loader.Schema, strat encoding.Strategy, schemaData, manifestData []byte) (StrategyResult, error) {
	if err := ctx.Err(); err != nil {
		return StrategyResult{}, err
	}
	run := StrategyResult{Strategy: strat.Name()}
	var timer *observ.Timer
	if req.Timings {
		timer = observ.NewTimer()
		run.Timer = timer
	}

	key := CacheKey(schemaData, manifestData, strat.Name())
	if req.Cache != nil {
		doc, hit, err := req.Cache.Get(key)
		if err != nil {
			return StrategyResult{}, err
		}
		if hit {
			run.Document = doc
			run.Cached = true
			return run, nil
		}
	}

	var phase int
	if timer != nil {
		phase = timer.Begin("build")
	}
	doc, err := ir.Build(sch.Registry, sch.Messages, sch.Enums, strat, ir.Params{
		Protocol:        manifest.Protocol.Name,
		StringMaxLength: manifest.Limits.StringMaxLength,
		NamePrefixSize:  manifest.NamePrefixSize(strat),
		StartID:         manifest.Protocol.StartID,
	})
	if err != nil {
		return StrategyResult{}, err
	}
	if timer != nil {
		timer.End(phase, fmt.Sprintf("%d messages", len(doc.Messages)))
	}

	if req.Cache != nil {
		if err := req.Cache.Put(key, doc); err != nil {
			return StrategyResult{}, err
		}
	}
	run.Document = doc
	return run, nil
}
