package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	switch environment {
	case "development", "staging":
		prefix = "staging"
	case "test":
		prefix = "test"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyTeamsAll() string {
	return kb.BuildKey(KeyTeamsAll)
}

func (kb *KeyBuilder) KeyEventsAll() string {
	return kb.BuildKey(KeyEventsAll)
}

func (kb *KeyBuilder) KeyCategoriesAll() string {
	return kb.BuildKey(KeyCategoriesAll)
}

func (kb *KeyBuilder) KeyStandings() string {
	return kb.BuildKey(KeyStandings)
}

func (kb *KeyBuilder) KeyEventResults(eventID int) string {
	return kb.BuildKey(fmt.Sprintf(KeyEventResults, eventID))
}

// PatternEventResults matches every per-event results key
func (kb *KeyBuilder) PatternEventResults() string {
	return kb.BuildKey("scoreboard:event:*:results")
}
