package core

import (
	"errors"
	"os"
	"strings"
)

// CredentialResolver produces the backend credential or fails with MissingCredential.
type CredentialResolver interface {
	Resolve() (Credential, error)
}

// EnvCredentialResolver reads the first non-empty variable on every call,
// so a rotated key is seen without a restart.
type EnvCredentialResolver struct {
	Keys   []string
	lookup func(string) (string, bool)
}

func NewEnvCredentialResolver(keys ...string) *EnvCredentialResolver {
	if len(keys) == 0 {
		keys = []string{"API_KEY", "GEMINI_API_KEY"}
	}
	return &EnvCredentialResolver{Keys: keys, lookup: os.LookupEnv}
}

func (r *EnvCredentialResolver) Resolve() (Credential, error) {
	for _, key := range r.Keys {
		if value, ok := r.lookup(key); ok && strings.TrimSpace(value) != "" {
			return Credential(strings.TrimSpace(value)), nil
		}
	}
	return "", MissingCredential(errors.New("no API key in " + strings.Join(r.Keys, ", ")))
}

// StaticCredential always resolves to the same value; an empty value is missing.
type StaticCredential Credential

func (s StaticCredential) Resolve() (Credential, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", MissingCredential(errors.New("empty API key"))
	}
	return Credential(s), nil
}
