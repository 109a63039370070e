package model

import "strings"

// ProviderName identifies an external provider.
type ProviderName string

const (
	// ProviderOpenAI is the primary translation and speech provider.
	ProviderOpenAI ProviderName = "openai"
	// ProviderGemini is the secondary speech provider.
	ProviderGemini ProviderName = "gemini"
)

// CredentialScope indicates whether a secret belongs to a user or is the
// system-wide default.
type CredentialScope string

const (
	// ScopeUser marks a user-supplied credential.
	ScopeUser CredentialScope = "user"
	// ScopeSystem marks the system default credential.
	ScopeSystem CredentialScope = "system"
)

// Credential is an API secret resolved per request. It is never persisted by
// the orchestration core; storage belongs to the credential repository.
type Credential struct {
	Provider ProviderName
	Scope    CredentialScope
	Secret   string
}

// WellFormed reports whether the credential carries a usable secret.
func (c Credential) WellFormed() bool {
	return strings.TrimSpace(c.Secret) != ""
}
