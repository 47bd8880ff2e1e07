package search

import (
	"fmt"
	"strings"
)

// maxRelatedTopics bounds the rendered related-topics section.
const maxRelatedTopics = 3

// renderAnswer converts an instant-answer document into ordered text
// sections. Returns a fixed fallback string when every field is absent.
func renderAnswer(a *instantAnswer) string {
	var sb strings.Builder

	if a.Heading != "" {
		fmt.Fprintf(&sb, "%s\n\n", a.Heading)
	}
	if a.Answer != "" {
		fmt.Fprintf(&sb, "Answer: %s\n\n", a.Answer)
	}
	if a.AbstractText != "" {
		fmt.Fprintf(&sb, "%s\n", a.AbstractText)
		if a.AbstractSource != "" {
			fmt.Fprintf(&sb, "Source: %s\n", a.AbstractSource)
		}
		if a.AbstractURL != "" {
			fmt.Fprintf(&sb, "URL: %s\n", a.AbstractURL)
		}
		sb.WriteString("\n")
	}
	if a.Definition != "" {
		fmt.Fprintf(&sb, "Definition: %s\n", a.Definition)
		if a.DefinitionSource != "" {
			fmt.Fprintf(&sb, "Source: %s\n", a.DefinitionSource)
		}
		sb.WriteString("\n")
	}

	topics := make([]relatedTopic, 0, maxRelatedTopics)
	for _, t := range a.RelatedTopics {
		if t.Text == "" {
			continue
		}
		topics = append(topics, t)
		if len(topics) == maxRelatedTopics {
			break
		}
	}
	if len(topics) > 0 {
		sb.WriteString("Related topics:\n")
		for _, t := range topics {
			if t.FirstURL != "" {
				fmt.Fprintf(&sb, "- %s (%s)\n", t.Text, t.FirstURL)
			} else {
				fmt.Fprintf(&sb, "- %s\n", t.Text)
			}
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "No relevant results found"
	}
	return result
}
