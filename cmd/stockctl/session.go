package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Repuestos-api/pkg/client"
)

// defaultSessionPath ~/.config/stockctl/session.json
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stockctl-session.json"
	}
	return filepath.Join(dir, "stockctl", "session.json")
}

func loadSession(path string) (*client.Session, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: ejecute stockctl login", client.ErrNoSession)
	}
	if err != nil {
		return nil, err
	}
	var s client.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("sesión corrupta en %s: %w", path, err)
	}
	if !s.Active() {
		return nil, fmt.Errorf("%w: ejecute stockctl login", client.ErrNoSession)
	}
	return &s, nil
}

func saveSession(path string, s *client.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func removeSession(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
