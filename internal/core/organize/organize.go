// Package organize implements the interactive review loop that lets an
// operator reshape the categorization before any filesystem write. It
// mutates categories and membership of the working collection only; it
// performs no I/O beyond the console.
package organize

import (
	"fmt"
	"strconv"
	"strings"

	"libshelf/internal/console"
	"libshelf/internal/domain"
	"libshelf/internal/logger"
)

// State of the review loop
type State int

const (
	// StateReviewing accepts commands
	StateReviewing State = iota
	// StateFinished is terminal; only the confirmed finish command reaches it
	StateFinished
)

// Organizer drives the bounded interactive loop over the working collection
type Organizer struct {
	records  []domain.FileRecord
	prompter *console.Prompter
	state    State
	log      logger.Logger
}

// New creates an organizer over records. The slice is owned by the
// organizer until Run returns it.
func New(records []domain.FileRecord, prompter *console.Prompter) *Organizer {
	return &Organizer{
		records:  records,
		prompter: prompter,
		state:    StateReviewing,
		log:      logger.With("stage", "organize"),
	}
}

// State returns the current loop state
func (o *Organizer) State() State {
	return o.state
}

// Run executes the review loop until the operator confirms finishing, then
// returns the current collection. User-input errors are reported and the
// menu is re-displayed; none of them terminate the session.
func (o *Organizer) Run() []domain.FileRecord {
	if len(o.records) == 0 {
		o.state = StateFinished
		return o.records
	}

	o.prompter.Printf("\nReview stage: reorganize categories before any copying.\n")
	o.prompter.Printf("You can rename categories, remove entries, move entries between categories, or delete categories.\n")
	o.prompter.Printf("Use option 5 for wildcard (e.g., *draft*) or regex (e.g., data_\\d+) bulk edits inside a category.\n")

	for o.state == StateReviewing {
		o.prompter.Printf("\nCurrent categories and entries:\n%s\n", console.RenderGroups(domain.GroupByCategory(o.records)))
		o.prompter.Printf("\nOptions:\n" +
			"  1) Rename a category\n" +
			"  2) Remove an entire category\n" +
			"  3) Move a single entry to another category\n" +
			"  4) Remove a single entry\n" +
			"  5) Bulk select by pattern (move/remove)\n" +
			"  6) Finish organization\n")

		var err error
		switch o.prompter.ReadLine("Select an option [1-6]: ") {
		case "1":
			err = o.renameCategory()
		case "2":
			err = o.removeCategory()
		case "3":
			err = o.moveEntry()
		case "4":
			err = o.removeEntry()
		case "5":
			err = o.bulkPattern()
		case "6":
			o.finish()
		default:
			o.prompter.Printf("  Invalid option. Please choose 1-6.\n")
		}
		if err != nil {
			o.prompter.Printf("  %s.\n", capitalize(err.Error()))
		}
	}
	return o.records
}

// groupedFor returns the working-collection positions of records carrying
// category, in the order the most recent table displayed them. The grouped
// view is recomputed here, immediately before an index is interpreted, so a
// number is only trustworthy against the listing just printed; an operator
// acting on a stale table after an intervening bulk edit gets whatever the
// fresh grouping says. That hazard is inherited behavior, kept as-is.
func (o *Organizer) groupedFor(category string) []int {
	var positions []int
	for i, r := range o.records {
		if r.Category == category {
			positions = append(positions, i)
		}
	}
	return positions
}

// pickEntry resolves a 1-based displayed index within category to a
// working-collection position.
func (o *Organizer) pickEntry(category, rawIndex string) (int, error) {
	positions := o.groupedFor(category)
	if len(positions) == 0 {
		return 0, domain.ErrCategoryNotFound
	}
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return 0, domain.ErrInvalidIndex
	}
	if index < 1 || index > len(positions) {
		return 0, domain.ErrIndexOutOfRange
	}
	return positions[index-1], nil
}

func (o *Organizer) renameCategory() error {
	current := o.prompter.ReadLine("Enter the category to rename: ")
	if !domain.HasCategory(o.records, current) {
		return domain.ErrCategoryNotFound
	}
	newName := o.prompter.ReadLine("Enter the new category name: ")
	if newName == "" {
		return domain.ErrEmptyName
	}
	if !o.prompter.Confirm(fmt.Sprintf("Rename category '%s' to '%s'?", current, newName)) {
		o.prompter.Printf("  Rename cancelled.\n")
		return nil
	}

	count := 0
	for i := range o.records {
		if o.records[i].Category == current {
			o.records[i].Category = newName
			count++
		}
	}
	o.log.Info("renamed category", "from", current, "to", newName, "records", count)
	o.prompter.Printf("  Renamed '%s' to '%s'.\n", current, newName)
	return nil
}

func (o *Organizer) removeCategory() error {
	target := o.prompter.ReadLine("Enter the category to remove: ")
	if !domain.HasCategory(o.records, target) {
		return domain.ErrCategoryNotFound
	}
	if !o.prompter.Confirm(fmt.Sprintf("Remove category '%s' and all its entries?", target)) {
		o.prompter.Printf("  Removal cancelled.\n")
		return nil
	}

	kept := o.records[:0]
	removed := 0
	for _, r := range o.records {
		if r.Category == target {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	o.records = kept
	o.log.Info("removed category", "category", target, "records", removed)
	o.prompter.Printf("  Removed category '%s'.\n", target)
	return nil
}

func (o *Organizer) moveEntry() error {
	category := o.prompter.ReadLine("Enter the category of the entry to move: ")
	if len(o.groupedFor(category)) == 0 {
		return domain.ErrCategoryNotFound
	}
	pos, err := o.pickEntry(category, o.prompter.ReadLine("Enter the entry number to move (see table): "))
	if err != nil {
		return err
	}
	destination := o.prompter.ReadLine("Enter the destination category name: ")
	if destination == "" {
		return domain.ErrEmptyDestination
	}

	record := o.records[pos]
	if !o.prompter.Confirm(fmt.Sprintf("Move '%s' from '%s' to '%s'?", record.Name, category, destination)) {
		o.prompter.Printf("  Move cancelled.\n")
		return nil
	}

	o.records[pos].Category = destination
	o.log.Info("moved entry", "name", record.Name, "from", category, "to", destination)
	o.prompter.Printf("  Moved '%s' to '%s'.\n", record.Name, destination)
	return nil
}

func (o *Organizer) removeEntry() error {
	category := o.prompter.ReadLine("Enter the category of the entry to remove: ")
	if len(o.groupedFor(category)) == 0 {
		return domain.ErrCategoryNotFound
	}
	pos, err := o.pickEntry(category, o.prompter.ReadLine("Enter the entry number to remove (see table): "))
	if err != nil {
		return err
	}

	record := o.records[pos]
	if !o.prompter.Confirm(fmt.Sprintf("Remove '%s' from the list?", record.Name)) {
		o.prompter.Printf("  Removal cancelled.\n")
		return nil
	}

	o.records = append(o.records[:pos], o.records[pos+1:]...)
	o.log.Info("removed entry", "name", record.Name, "category", category)
	o.prompter.Printf("  Removed '%s'.\n", record.Name)
	return nil
}

func (o *Organizer) bulkPattern() error {
	category := o.prompter.ReadLine("Enter the category to search within: ")
	positions := o.groupedFor(category)
	if len(positions) == 0 {
		return domain.ErrCategoryNotFound
	}

	pattern := o.prompter.ReadLine("Enter a pattern (wildcards like *draft* or regex such as data_\\d+): ")
	if pattern == "" {
		return domain.ErrEmptyPattern
	}
	useRegex := o.prompter.YesNo("Treat pattern as regex?", true)

	match, err := NewMatcher(pattern, useRegex)
	if err != nil {
		// Zero matches plus a diagnostic; never a crash.
		o.prompter.Printf("  Invalid pattern; no matches applied.\n")
		return nil
	}

	var matched []int
	for _, pos := range positions {
		if match(o.records[pos].Name) {
			matched = append(matched, pos)
		}
	}
	if len(matched) == 0 {
		o.prompter.Printf("  No entries matched that pattern.\n")
		return nil
	}

	o.prompter.Printf("\nMatched entries:\n")
	for _, pos := range matched {
		o.prompter.Printf("  - %s\n", o.records[pos].Name)
	}

	action := strings.ToLower(o.prompter.ReadLine("Choose action for all matches: [move/remove/cancel]: "))
	switch action {
	case "remove":
		return o.bulkRemove(category, matched)
	case "move":
		return o.bulkMove(matched)
	default:
		o.prompter.Printf("  Bulk action cancelled.\n")
		return nil
	}
}

// bulkRemove deletes every matched record in one confirmed batch.
func (o *Organizer) bulkRemove(category string, matched []int) error {
	if !o.prompter.Confirm(fmt.Sprintf("Remove %d %s from '%s'?", len(matched), entries(len(matched)), category)) {
		o.prompter.Printf("  Removal cancelled.\n")
		return nil
	}

	drop := make(map[int]bool, len(matched))
	for _, pos := range matched {
		drop[pos] = true
	}
	kept := o.records[:0]
	for i, r := range o.records {
		if drop[i] {
			continue
		}
		kept = append(kept, r)
	}
	o.records = kept
	o.log.Info("bulk removed entries", "category", category, "count", len(matched))
	o.prompter.Printf("  Removed %d %s.\n", len(matched), entries(len(matched)))
	return nil
}

// bulkMove reassigns every matched record in one confirmed batch.
func (o *Organizer) bulkMove(matched []int) error {
	destination := o.prompter.ReadLine("Enter the destination category: ")
	if destination == "" {
		return domain.ErrEmptyDestination
	}
	if !o.prompter.Confirm(fmt.Sprintf("Move %d %s to '%s'?", len(matched), entries(len(matched)), destination)) {
		o.prompter.Printf("  Move cancelled.\n")
		return nil
	}

	for _, pos := range matched {
		o.records[pos].Category = destination
	}
	o.log.Info("bulk moved entries", "to", destination, "count", len(matched))
	o.prompter.Printf("  Moved %d %s to '%s'.\n", len(matched), entries(len(matched)), destination)
	return nil
}

func (o *Organizer) finish() {
	if !o.prompter.Confirm("Finish organization and lock in the current list?") {
		o.prompter.Printf("  Continuing review stage.\n")
		return
	}
	o.prompter.Printf("  Organization complete. Proceeding to copy stage inputs.\n")
	o.state = StateFinished
}

func entries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
