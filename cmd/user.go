package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// currentUserID resolves the local learner identity. STUDYCOACH_USER
// wins when set (it must be a UUID); otherwise a generated id is
// persisted in a "user-id" file next to the database so every command
// operates on the same learner record.
func currentUserID(dbPath string) (uuid.UUID, error) {
	if v := os.Getenv("STUDYCOACH_USER"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fmt.Errorf("STUDYCOACH_USER is not a valid UUID: %w", err)
		}
		return id, nil
	}

	idFile := filepath.Join(filepath.Dir(dbPath), "user-id")
	data, err := os.ReadFile(idFile)
	if err == nil {
		id, perr := uuid.Parse(strings.TrimSpace(string(data)))
		if perr == nil {
			return id, nil
		}
		// Corrupt file: fall through and regenerate.
	}

	id := uuid.New()
	if err := os.WriteFile(idFile, []byte(id.String()+"\n"), 0o600); err != nil {
		return uuid.Nil, fmt.Errorf("persist user id: %w", err)
	}
	return id, nil
}
