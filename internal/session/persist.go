package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// FileStore persists a single serialized session under a fixed name, the
// durable-storage analogue of the browser's local storage entry.
type FileStore struct {
	filePath string
}

func NewFileStore(dir string) *FileStore {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create session directory: %v", err)
	}
	return &FileStore{filePath: filepath.Join(dir, sessionFile)}
}

// Load reads the cached session. A missing file is not an error; it means
// nobody is signed in.
func (fs *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &sess, nil
}

func (fs *FileStore) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
