// Package examples loads the few-shot reference resumes and their gold
// grading records.
//
// The base set is four resumes bundled with the application, one per letter
// grade. An optional encrypted subset extends it; when the decryption key is
// absent or wrong the store silently degrades to the base set. That fallback
// is a deliberate policy: a misconfigured key must never take grading down.
package examples

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/silver-dev/resume-checker/internal/domain"
)

var baseFiles = []struct {
	file string
	gold domain.GradeResult
}{
	{file: "s_resume.pdf", gold: goldS},
	{file: "a_resume.pdf", gold: goldA},
	{file: "b_resume.pdf", gold: goldB},
	{file: "c_resume.pdf", gold: goldC},
}

// Store holds the ordered, immutable example sequence.
type Store struct {
	examples []domain.GradeExample
}

// Load reads the base examples from assetsDir and, when key decodes to a
// valid AES-256 key, the encrypted subset from assetsDir/encrypted.
// Base examples are mandatory; a missing base file is a startup error.
func Load(assetsDir, key string) (*Store, error) {
	exs := make([]domain.GradeExample, 0, len(baseFiles)+len(encryptedGold))
	for _, b := range baseFiles {
		data, err := os.ReadFile(filepath.Join(assetsDir, b.file))
		if err != nil {
			return nil, fmt.Errorf("examples: read base %s: %w", b.file, err)
		}
		exs = append(exs, domain.GradeExample{Name: b.file, Document: data, Gold: b.gold})
	}

	if extra, ok := loadEncrypted(assetsDir, key); ok {
		exs = append(exs, extra...)
	}

	return &Store{examples: exs}, nil
}

// loadEncrypted returns the decrypted subset, or ok=false to signal the
// degraded base-only mode. Partial subsets are never returned: one bad file
// rejects the whole subset so example ordering stays stable.
func loadEncrypted(assetsDir, key string) ([]domain.GradeExample, bool) {
	if key == "" {
		return nil, false
	}
	k, err := decodeKey(key)
	if err != nil {
		slog.Warn("examples: invalid decryption key; using base example set", slog.Any("error", err))
		return nil, false
	}
	extra := make([]domain.GradeExample, 0, len(encryptedGold))
	for _, e := range encryptedGold {
		name := e.name + ".pdf.enc"
		raw, err := os.ReadFile(filepath.Join(assetsDir, "encrypted", name))
		if err != nil {
			slog.Warn("examples: read encrypted example failed; using base example set",
				slog.String("file", name), slog.Any("error", err))
			return nil, false
		}
		data, err := decrypt(raw, k)
		if err != nil {
			slog.Warn("examples: decrypt example failed; using base example set",
				slog.String("file", name), slog.Any("error", err))
			return nil, false
		}
		extra = append(extra, domain.GradeExample{Name: e.name, Document: data, Gold: e.gold})
	}
	return extra, true
}

// All returns the ordered example sequence. Callers must not mutate it.
func (s *Store) All() []domain.GradeExample {
	return s.examples
}

// Len returns the number of loaded examples.
func (s *Store) Len() int { return len(s.examples) }
