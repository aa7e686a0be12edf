// Package config resolves the GitHub token and dashboard settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// EnvToken is the environment variable consulted for the GitHub API token.
const EnvToken = "GITHUB_TOKEN"

// tokenFiles are the local secrets files consulted, in order, when the
// token is not in the environment.
var tokenFiles = []string{"token.env", ".env"}

// ErrNoToken indicates no token could be found in any source.
var ErrNoToken = errors.New("github token not found: set " + EnvToken +
	", create a token.env or .env file, or pass --token")

// ResolveToken returns the first token found, checking in precedence order:
// the explicit value (flag or session), the environment, token.env, then
// .env. When interactive is true and every source is empty, the user is
// prompted on the terminal instead of failing.
func ResolveToken(explicit string, interactive bool) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}
	for _, file := range tokenFiles {
		if token := tokenFromFile(file); token != "" {
			return token, nil
		}
	}
	if interactive && term.IsTerminal(int(syscall.Stdin)) {
		return promptToken()
	}
	return "", ErrNoToken
}

func tokenFromFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return values[EnvToken]
}

func promptToken() (string, error) {
	fmt.Fprint(os.Stderr, "GitHub Personal Access Token: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrNoToken
	}
	return string(raw), nil
}
