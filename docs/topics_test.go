package docs_test

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/stockframe/cmd"
	"github.com/etnz/stockframe/docs"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the files.
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md itself) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := docs.GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := docs.GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	if _, err := docs.GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) want an error")
	}
	content, err := docs.GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Alignment") {
		t.Errorf("GetTopics(*) does not contain the alignment topic")
	}
}

// TestCommandLines checks that every `$ sf ...` line of the console blocks runs a known
// subcommand with flags it accepts.
func TestCommandLines(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, line := range consoleLines(t, file) {
			args := strings.Fields(strings.TrimPrefix(line, "$ sf "))
			i := slices.IndexFunc(cmd.Commands, func(c subcommands.Command) bool { return c.Name() == args[0] })
			if i < 0 {
				t.Errorf("%s: unknown subcommand in %q", file, line)
				continue
			}
			f := flag.NewFlagSet(args[0], flag.ContinueOnError)
			f.SetOutput(io.Discard)
			cmd.Commands[i].SetFlags(f)
			if err := f.Parse(args[1:]); err != nil {
				t.Errorf("%s: %q: %v", file, line, err)
			}
		}
	}
}

// consoleLines returns the lines starting with "$ sf " in the console blocks of a markdown file.
func consoleLines(t *testing.T, file string) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var lines []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if lang := string(fcb.Info.Segment.Value(content)); lang != "console" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			line := string(bytes.TrimSpace(seg.Value(content)))
			if strings.HasPrefix(line, "$ sf ") {
				lines = append(lines, line)
			}
		}
		return ast.WalkContinue, nil
	})
	return lines
}
