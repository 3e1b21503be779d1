package model

import "strings"

// ProviderTag names a provider bucket of the catalog.
type ProviderTag string

const (
	ProviderAll       ProviderTag = "All"
	ProviderOpenAI    ProviderTag = "OpenAI"
	ProviderAnthropic ProviderTag = "Anthropic"
	ProviderGoogle    ProviderTag = "Google"
	ProviderXAI       ProviderTag = "xAI"
	ProviderMeta      ProviderTag = "Meta"
	ProviderMistral   ProviderTag = "Mistral"
	ProviderAlibaba   ProviderTag = "Alibaba"
)

// providerKeywords maps each tag to the lowercase substrings of owned_by that
// place a model in it.
var providerKeywords = map[ProviderTag][]string{
	ProviderOpenAI:    {"openai", "azure"},
	ProviderAnthropic: {"anthropic"},
	ProviderGoogle:    {"google"},
	ProviderXAI:       {"xai"},
	ProviderMeta:      {"meta"},
	ProviderMistral:   {"mistral"},
	ProviderAlibaba:   {"alibaba"},
}

// majorProviders are the buckets with a tab of their own; chat models outside
// them land in the "Other" tab.
var majorProviders = []ProviderTag{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGoogle,
	ProviderMeta,
	ProviderXAI,
}

// Matches reports whether ownedBy belongs to the tag. All matches everything.
func (t ProviderTag) Matches(ownedBy string) bool {
	if t == ProviderAll {
		return true
	}
	owner := strings.ToLower(ownedBy)
	for _, keyword := range providerKeywords[t] {
		if strings.Contains(owner, keyword) {
			return true
		}
	}
	return false
}

// FilterByProvider keeps the models owned by the tag's provider, in order.
// Unknown tags yield an empty set.
func FilterByProvider(models []Model, tag ProviderTag) []Model {
	if tag == ProviderAll {
		return models
	}
	return filter(models, func(m Model) bool {
		return tag.Matches(m.OwnedBy)
	})
}

// IsOtherProvider reports whether ownedBy belongs in the residual bucket:
// Mistral and Alibaba explicitly, plus anything no major provider claims.
func IsOtherProvider(ownedBy string) bool {
	if ProviderMistral.Matches(ownedBy) || ProviderAlibaba.Matches(ownedBy) {
		return true
	}
	for _, tag := range majorProviders {
		if tag.Matches(ownedBy) {
			return false
		}
	}
	return true
}

// OtherModels returns the chat models of the residual provider bucket.
func OtherModels(models []Model) []Model {
	return filter(ChatModels(models), func(m Model) bool {
		return IsOtherProvider(m.OwnedBy)
	})
}

func filter(models []Model, keep func(Model) bool) []Model {
	out := make([]Model, 0, len(models))
	for _, m := range models {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
