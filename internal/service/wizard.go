package service

import (
	"strings"

	"libshelf/internal/config"
	"libshelf/internal/console"
)

// RunWizard fills in the config interactively, then runs the standard
// pipeline. Confirmation gates stay active regardless of flags: the wizard
// exists for operators who want to be asked.
func RunWizard(cfg *config.Config, prompter *console.Prompter) error {
	// An assume-yes flag on the command line does not carry into a session
	// the operator explicitly made interactive.
	prompter = console.NewPrompter(prompter.Console, false)

	prompter.Printf("\nInteractive mode: follow the prompts to scan, organize, and optionally copy your library.\n")

	OfferCopyDestination(cfg, prompter)

	if cfg.Root == "" {
		prompter.Printf("\nChoose the library folder to scan.\n")
		root, ok := console.PickDirectory(prompter, "Navigate to the top-level library directory", "")
		if !ok {
			prompter.Printf("No root directory selected. Exiting.\n")
			return nil
		}
		cfg.Root = root
	}

	if prompter.YesNo("Customize which extensions to include? (otherwise defaults are used)", true) {
		prompter.Printf("Enter extensions separated by spaces (e.g., .pdf .epub .docx). Leave blank to keep defaults.\n")
		if raw := prompter.ReadLine("Extensions: "); raw != "" {
			cfg.IncludeExt = strings.Fields(raw)
		}
	}

	if prompter.YesNo("Exclude any extensions?", true) {
		if raw := prompter.ReadLine("Enter extensions to exclude (space-separated): "); raw != "" {
			cfg.ExcludeExt = strings.Fields(raw)
		}
	}

	cfg.AllowMedia = prompter.YesNo("Include audio/video files?", true)

	if prompter.YesNo("Write results to disk after preview?", true) {
		if prompter.YesNo("Save JSON output?", false) {
			path := prompter.ReadLine("Enter JSON output path (default: scan_results.json): ")
			if path == "" {
				path = "scan_results.json"
			}
			cfg.OutputJSON = path
		}
		if prompter.YesNo("Save structured text output?", false) {
			path := prompter.ReadLine("Enter text output path (default: scan_results.txt): ")
			if path == "" {
				path = "scan_results.txt"
			}
			cfg.OutputText = path
		}
	}

	if cfg.OutputJSON != "" || cfg.OutputText != "" {
		cfg.Apply = prompter.YesNo("After previewing, allow writing these output files?", false)
	}

	if cfg.CopyDest == "" {
		prompter.Printf("Copy destination was not provided; the staged copy workflow will be skipped unless you rerun and choose one.\n")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return NewPipeline(cfg, prompter).Run()
}

// OfferCopyDestination lets the operator pick a staged-copy destination
// up front when none was supplied. Declining leaves it empty and the copy
// stage will be skipped.
func OfferCopyDestination(cfg *config.Config, prompter *console.Prompter) {
	if cfg.CopyDest != "" {
		return
	}
	if !prompter.YesNo("Would you like to configure a copy destination now? (required for staged copies)", true) {
		return
	}
	if dir, ok := console.PickDirectory(prompter, "Select a destination folder for copied categories", ""); ok {
		cfg.CopyDest = dir
	}
}
