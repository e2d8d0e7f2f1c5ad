package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"dexseed/internal/model"
)

// JsonlStorage writes seeded records to a JSONL file.
type JsonlStorage struct {
	path       string
	appendMode bool
	mu         sync.Mutex
}

// NewJsonlStorage returns a writer for path. Without appendMode each batch
// replaces the file.
func NewJsonlStorage(path string, appendMode bool) *JsonlStorage {
	return &JsonlStorage{path: path, appendMode: appendMode}
}

// PutTokens writes tokens as JSON lines.
func (s *JsonlStorage) PutTokens(tokens []model.Token) error {
	records := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, token)
	}
	return s.put(records)
}

// PutPairs writes pairs as JSON lines.
func (s *JsonlStorage) PutPairs(pairs []model.Pair) error {
	records := make([]interface{}, 0, len(pairs))
	for _, pair := range pairs {
		records = append(records, pair)
	}
	return s.put(records)
}

func (s *JsonlStorage) put(records []interface{}) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flags := os.O_CREATE | os.O_WRONLY
	if s.appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
