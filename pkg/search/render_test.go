package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAnswer(t *testing.T) {
	t.Run("empty document renders fallback", func(t *testing.T) {
		assert.Equal(t, "No relevant results found", renderAnswer(&instantAnswer{}))
	})

	t.Run("definition section with source", func(t *testing.T) {
		result := renderAnswer(&instantAnswer{
			Definition:       "A small rodent.",
			DefinitionSource: "Wiktionary",
		})
		assert.Contains(t, result, "Definition: A small rodent.")
		assert.Contains(t, result, "Source: Wiktionary")
	})

	t.Run("related topics capped", func(t *testing.T) {
		topics := make([]relatedTopic, 10)
		for i := range topics {
			topics[i] = relatedTopic{Text: "topic"}
		}
		result := renderAnswer(&instantAnswer{RelatedTopics: topics})
		assert.Equal(t, maxRelatedTopics, strings.Count(result, "- topic"))
	})

	t.Run("topics without text are skipped", func(t *testing.T) {
		result := renderAnswer(&instantAnswer{
			RelatedTopics: []relatedTopic{{FirstURL: "https://example.com"}},
		})
		assert.Equal(t, "No relevant results found", result)
	})
}
