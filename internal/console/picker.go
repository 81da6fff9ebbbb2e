package console

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"libshelf/internal/fsutil"
)

// PickDirectory guides the operator to a directory by numbered navigation:
// pick a listed subdirectory, go up a level, select the current directory,
// or jump to a typed path. An empty response cancels and returns ok=false.
func PickDirectory(p *Prompter, title, start string) (string, bool) {
	current := start
	if current == "" {
		if wd, err := os.Getwd(); err == nil {
			current = wd
		} else {
			current = string(filepath.Separator)
		}
	}
	if resolved, err := fsutil.ResolvePath(current); err == nil {
		current = resolved
	}

	for {
		p.Printf("\n%s\n", title)
		p.Printf("Current directory: %s\n", current)

		entries, err := listSubdirectories(current)
		if err != nil {
			p.Printf("  Unable to list directories here (%v). Enter a path manually or go up.\n", err)
			entries = nil
		}
		for i, name := range entries {
			p.Printf("  %d) %s\n", i+1, name)
		}
		p.Printf("  u) Go up one level\n")
		p.Printf("  s) Select this directory\n")
		p.Printf("  Enter a path to jump directly or press Enter to cancel\n")

		choice := p.ReadLine("Choose an option: ")
		switch {
		case choice == "":
			return "", false
		case choice == "u" || choice == "U":
			current = filepath.Dir(current)
		case choice == "s" || choice == "S":
			return current, true
		default:
			if index, err := strconv.Atoi(choice); err == nil {
				if index < 1 || index > len(entries) {
					p.Printf("Invalid selection number.\n")
					continue
				}
				current = filepath.Join(current, entries[index-1])
				continue
			}
			candidate := choice
			info, err := os.Stat(candidate)
			if err != nil || !info.IsDir() {
				p.Printf("Path not found or not a directory; please try again.\n")
				continue
			}
			if resolved, err := fsutil.ResolvePath(candidate); err == nil {
				candidate = resolved
			}
			current = candidate
		}
	}
}

func listSubdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
