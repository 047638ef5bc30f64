// Package notes reads reference notes from an Obsidian-style markdown vault.
package notes

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain/note"
)

const defaultMaxNotes = 3

// Vault serves relevance-ranked notes from a directory of .md files.
// An unconfigured or missing directory yields no notes, never an error.
type Vault struct {
	dir      string
	maxNotes int
	logger   *zap.Logger
}

// New creates a vault reader. dir may be empty (vault disabled).
func New(dir string, maxNotes int, logger *zap.Logger) *Vault {
	if maxNotes <= 0 {
		maxNotes = defaultMaxNotes
	}
	return &Vault{dir: dir, maxNotes: maxNotes, logger: logger}
}

// FetchRelevant returns up to maxNotes notes matching the query, best first.
// Relevance is case-insensitive query-term frequency over path and content;
// notes with no matching term are omitted.
func (v *Vault) FetchRelevant(ctx context.Context, query string) ([]note.Note, error) {
	if v.dir == "" {
		return nil, nil
	}

	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, nil
	}

	type scored struct {
		note  note.Note
		score int
	}
	var candidates []scored

	err := filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			v.logger.Warn("Skipping unreadable note", zap.String("path", path), zap.Error(err))
			return nil
		}

		rel, err := filepath.Rel(v.dir, path)
		if err != nil {
			rel = path
		}

		if score := scoreNote(rel, string(data), terms); score > 0 {
			candidates = append(candidates, scored{
				note:  note.Note{Path: rel, Content: string(data)},
				score: score,
			})
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		v.logger.Warn("Note vault walk failed", zap.String("dir", v.dir), zap.Error(err))
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > v.maxNotes {
		candidates = candidates[:v.maxNotes]
	}

	result := make([]note.Note, len(candidates))
	for i, c := range candidates {
		result[i] = c.note
	}
	return result, nil
}

// queryTerms lowercases and splits the query, dropping short tokens.
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 {
			terms = append(terms, f)
		}
	}
	return terms
}

// scoreNote counts term occurrences across path and content.
func scoreNote(path, content string, terms []string) int {
	lowerPath := strings.ToLower(path)
	lowerContent := strings.ToLower(content)

	score := 0
	for _, term := range terms {
		score += strings.Count(lowerContent, term)
		if strings.Contains(lowerPath, term) {
			score += 5 // filename matches outweigh body matches
		}
	}
	return score
}
