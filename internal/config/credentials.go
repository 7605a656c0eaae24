package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

const (
	keyringService = appName
	credFileName   = "credentials.yaml"
)

// DataDir returns the path to the data directory for secure storage and logs.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/todos-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// TokenScope names the list a token belongs to: the server, without a
// trailing slash or case differences in the host, and the owner id.
// It is the keyring account and the key in the credentials file.
func (s ServerConfig) TokenScope() string {
	base := strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		u.Scheme = strings.ToLower(u.Scheme)
		u.Host = strings.ToLower(u.Host)
		base = u.String()
	}
	return base + "#" + strconv.Itoa(s.OwnerID)
}

// GetToken retrieves the optional bearer token for server.
// Priority: 1. TODOS_TOKEN env var, 2. System keyring, 3. Credentials file.
// An empty token with a nil error means the service is used anonymously.
func GetToken(server ServerConfig) (string, error) {
	if token := os.Getenv("TODOS_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	scope := server.TokenScope()
	token, err := keyring.Get(keyringService, scope)
	if err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	tokens, err := readCredentials()
	if err != nil {
		return "", err
	}
	return tokens[scope], nil
}

// SaveToken stores the token for server.
// Tries system keyring first, falls back to the credentials file.
func SaveToken(server ServerConfig, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	scope := server.TokenScope()
	if err := keyring.Set(keyringService, scope, token); err == nil {
		return nil
	}

	tokens, err := readCredentials()
	if err != nil {
		return err
	}
	tokens[scope] = token
	return writeCredentials(tokens)
}

// ClearToken removes the token for server from all locations. Tokens of
// other servers or owners are kept.
func ClearToken(server ServerConfig) error {
	scope := server.TokenScope()
	_ = keyring.Delete(keyringService, scope)

	tokens, err := readCredentials()
	if err != nil {
		return err
	}
	if _, ok := tokens[scope]; !ok {
		return nil
	}
	delete(tokens, scope)
	return writeCredentials(tokens)
}

// credentialsPath returns the fallback file used when no keyring is available.
func credentialsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, credFileName), nil
}

func readCredentials() (map[string]string, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]string)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tokens, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return tokens, nil
}

func writeCredentials(tokens map[string]string) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}

	if len(tokens) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove credentials file: %w", err)
		}
		return nil
	}

	data, err := yaml.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
