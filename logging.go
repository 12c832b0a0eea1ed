package trie

import "github.com/rs/zerolog"

// optionLogger wraps a zerolog.Logger so WithLogger can be passed by value
// without exposing zerolog types across the whole package surface.
type optionLogger struct {
	log zerolog.Logger
}

// NewLogger adapts a zerolog.Logger for use with WithLogger.
func NewLogger(log zerolog.Logger) optionLogger {
	return optionLogger{log: log}
}

func (l *optionLogger) debugStore(keyLen int) {
	l.log.Debug().Int("key_len", keyLen).Msg("trie: store")
}

func (l *optionLogger) debugSimilar(queryLen, maxEdits, candidates, matches int) {
	l.log.Debug().
		Int("query_len", queryLen).
		Int("max_edits", maxEdits).
		Int("candidates", candidates).
		Int("matches", matches).
		Msg("trie: similar")
}
