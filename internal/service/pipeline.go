// Package service wires the pipeline stages into one synchronous run:
// scan, deduplicate, export, organize, staged copy. The working collection
// is owned by the pipeline for the duration of the run and passed by value
// between stages; no component keeps a reference afterwards.
package service

import (
	"fmt"

	"libshelf/internal/config"
	"libshelf/internal/console"
	"libshelf/internal/core/copystage"
	"libshelf/internal/core/dedupe"
	"libshelf/internal/core/organize"
	"libshelf/internal/core/scan"
	"libshelf/internal/domain"
	"libshelf/internal/export"
	"libshelf/internal/logger"
)

// Pipeline drives one scan session end to end.
type Pipeline struct {
	cfg      *config.Config
	prompter *console.Prompter
	log      logger.Logger
}

// NewPipeline creates a pipeline over validated config
func NewPipeline(cfg *config.Config, prompter *console.Prompter) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		prompter: prompter,
		log:      logger.With("component", "pipeline"),
	}
}

// Run executes the full sequence. The fatal conditions are a missing or
// non-directory scan root and a copy destination that exists but is not a
// directory; everything else either reprompts or skips its own scope.
func (p *Pipeline) Run() error {
	candidates, err := scan.Run(p.cfg.Root, scan.Options{
		IncludeExt: p.cfg.IncludeExt,
		ExcludeExt: p.cfg.ExcludeExt,
		AllowMedia: p.cfg.AllowMedia,
	})
	if err != nil {
		return err
	}

	records := dedupe.Deduplicate(candidates)
	p.prompter.Printf("Discovered %d candidates; %d after deduplication.\n", len(candidates), len(records))
	if len(records) == 0 {
		p.prompter.Printf("No matching files found.\n")
	}

	if err := p.exportResults(records); err != nil {
		return err
	}

	organized := records
	if len(records) > 0 {
		if p.prompter.Confirm("Enter category organization stage before copying?") {
			organized = organize.New(records, p.prompter).Run()
		} else {
			p.prompter.Printf("Skipping organization stage; using current categories as-is.\n")
		}
	}

	return copystage.New(p.cfg.CopyDest, p.cfg.CopyLog, p.prompter).Run(organized)
}

// exportResults previews the planned outputs and, under apply mode and a
// confirmation gate, writes them.
func (p *Pipeline) exportResults(records []domain.FileRecord) error {
	p.prompter.Printf("Planned outputs:\n")
	p.prompter.Printf("- JSON: %s\n", orNone(p.cfg.OutputJSON))
	p.prompter.Printf("- Text: %s\n", orNone(p.cfg.OutputText))
	p.prompter.Printf("Total records: %d\n", len(records))
	p.prompter.Printf("\nPreview (concise and detailed):\n%s\n", export.FormatText(records))

	if !p.cfg.Apply {
		p.prompter.Printf("Dry-run mode: no files were written. Re-run with --apply to export.\n")
		return nil
	}
	if !p.prompter.Confirm("Proceed with writing output files?") {
		p.prompter.Printf("Aborted. No files were written.\n")
		return nil
	}

	if p.cfg.OutputJSON != "" {
		if err := export.WriteJSON(p.cfg.OutputJSON, records); err != nil {
			return fmt.Errorf("writing JSON results: %w", err)
		}
		p.prompter.Printf("Wrote JSON results to %s\n", p.cfg.OutputJSON)
	}
	if p.cfg.OutputText != "" {
		if err := export.WriteText(p.cfg.OutputText, records); err != nil {
			return fmt.Errorf("writing text results: %w", err)
		}
		p.prompter.Printf("Wrote text results to %s\n", p.cfg.OutputText)
	}
	return nil
}

func orNone(path string) string {
	if path == "" {
		return "none"
	}
	return path
}
