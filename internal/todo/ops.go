package todo

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/tada/internal/model"
)

// MinLength is the shortest text Add accepts.
const MinLength = 3

// MinLengthMessage is reported when Add rejects its input.
const MinLengthMessage = "a todo needs at least three characters"

// AddResult reports whether Add accepted its input.
type AddResult struct {
	Accepted bool
	Message  string
}

// Add appends a new pending todo when text is long enough.
// Rejection leaves l untouched and is reported only through the result.
func Add(text string, l *List) AddResult {
	if utf8.RuneCountInString(text) < MinLength {
		return AddResult{Accepted: false, Message: MinLengthMessage}
	}
	l.items = append(l.items, &model.Todo{Text: text, Done: false})
	return AddResult{Accepted: true}
}

// Toggle flips the done flag.
func Toggle(t *model.Todo) {
	t.Done = !t.Done
}

// ClearAll empties l without replacing it.
func ClearAll(l *List) {
	for i := range l.items {
		l.items[i] = nil
	}
	l.items = l.items[:0]
}

// Sorter orders lists with a locale-bound collator.
// A collator is not safe for concurrent use, neither is a Sorter.
type Sorter struct {
	col *collate.Collator
}

// DefaultLocale is used by Sort.
var DefaultLocale = language.Swedish

// NewSorter returns a Sorter comparing text by the rules of tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Sort puts pending entries before done ones, each group by text.
func (s *Sorter) Sort(l *List) {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i], l.items[j]
		if a.Done != b.Done {
			return !a.Done
		}
		return s.col.CompareString(a.Text, b.Text) < 0
	})
}

// Sort orders l with the default locale.
func Sort(l *List) {
	NewSorter(DefaultLocale).Sort(l)
}
