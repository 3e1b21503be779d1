package model

import "strings"

const embeddingMarker = "embedding"

// IsEmbedding reports whether the model is an embedding model, judged by its id
// or display name.
func (m Model) IsEmbedding() bool {
	return strings.Contains(strings.ToLower(m.ID), embeddingMarker) ||
		strings.Contains(strings.ToLower(m.DisplayName), embeddingMarker)
}

// EmbeddingModels returns the embedding models, in order.
func EmbeddingModels(models []Model) []Model {
	return filter(models, Model.IsEmbedding)
}

// ChatModels returns every model that is not an embedding model, in order.
func ChatModels(models []Model) []Model {
	return filter(models, func(m Model) bool { return !m.IsEmbedding() })
}
