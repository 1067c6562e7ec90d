// internal/session/session.go
//
// One operator interaction from name entry to quit. The session owns the
// pieces of state the workflow mutates: the current user name (replaced on
// a failed-login retry), the monotonic login flag, the most recent search's
// match set, and the append-only action log replayed at session end.

package session

import (
	"fmt"
	"strings"

	"github.com/riteshp/the-warehouse/internal/catalog"
)

// Session is the state of the single active operator session.
type Session struct {
	userName string
	loggedIn bool
	matches  map[int][]catalog.StockRecord
	log      *Log
}

// New creates an empty session with an empty action log.
func New() *Session {
	return &Session{log: &Log{}}
}

// UserName returns the current session user name.
func (s *Session) UserName() string {
	return s.userName
}

// SetUserName replaces the session user name. Called once at start and
// again on each failed-login retry.
func (s *Session) SetUserName(name string) {
	s.userName = name
}

// LoggedIn reports whether this session has authenticated.
func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

// MarkLoggedIn sets the login flag. The flag never resets within a
// session.
func (s *Session) MarkLoggedIn() {
	s.loggedIn = true
}

// SetMatches records the match set of the most recent search, replacing
// the previous one.
func (s *Session) SetMatches(matches map[int][]catalog.StockRecord) {
	s.matches = matches
}

// Matches returns the match set of the most recent search.
func (s *Session) Matches() map[int][]catalog.StockRecord {
	return s.matches
}

// Log returns the session action log.
func (s *Session) Log() *Log {
	return s.log
}

// Log is the append-only record of completed session actions. Entries are
// human-readable, numbered on replay, and never removed.
type Log struct {
	entries []string
}

// Append records one completed action.
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// Entries returns the recorded actions in order.
func (l *Log) Entries() []string {
	return l.entries
}

// Recap renders the numbered session summary shown at quit.
func (l *Log) Recap() string {
	if len(l.entries) == 0 {
		return "In this session you have not done anything."
	}
	var b strings.Builder
	b.WriteString("In this session you have: ")
	for i, entry := range l.entries {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, entry))
	}
	return b.String()
}

// IndefiniteArticle returns "an" when the word starts with a vowel,
// "a" otherwise.
func IndefiniteArticle(word string) string {
	if word == "" {
		return "a"
	}
	first := strings.ToLower(word[:1])
	if strings.Contains("aeiou", first) {
		return "an"
	}
	return "a"
}

// SearchedEntry is the log line for a completed item search, whatever the
// order outcome was.
func SearchedEntry(itemName string) string {
	return fmt.Sprintf("Searched %s %s.", IndefiniteArticle(itemName), itemName)
}

// BrowsedEntry is the log line for a completed category browse.
func BrowsedEntry(category string) string {
	return fmt.Sprintf("Browsed the category %s.", category)
}

// ListedEntry is the log line for a completed warehouse listing.
func ListedEntry(totalItems int) string {
	return fmt.Sprintf("Listed %d items.", totalItems)
}
