// Package docs holds the documentation topics printed by `sf topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var pages embed.FS

// index is the topic listing every other topic, it is not a topic itself.
const index = "readme"

// GetTopic returns the markdown content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q, run 'sf topic' for the list: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates several topics, "*" standing for all of them.
func GetTopics(topics ...string) (string, error) {
	var names []string
	for _, topic := range topics {
		if topic != "*" {
			names = append(names, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		names = append(names, all...)
	}

	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of the topics, the index excluded.
func GetAllTopics() ([]string, error) {
	names, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, name := range names {
		if topic := strings.TrimSuffix(name, ".md"); topic != index {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
