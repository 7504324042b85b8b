package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptSelection(t *testing.T) {
	tests := []struct {
		name     string
		attempt  int
		files    []string
		contains string
	}{
		{"first attempt gets initial build", 1, nil, "Build a complete, working web application"},
		{"retry with files gets resume", 2, []string{"index.html"}, "already created these files"},
		{"retry without files gets speed mode", 2, nil, "as directly as possible"},
		{"final attempt without files gets bare minimum", 3, nil, "smallest possible working version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt("a todo app", tt.attempt, 3, tt.files, "")
			assert.Contains(t, prompt, tt.contains)
			assert.Contains(t, prompt, "a todo app")
		})
	}
}

func TestBuildPromptListsExistingFiles(t *testing.T) {
	prompt := BuildPrompt("app", 2, 3, []string{"index.html", "style.css"}, "")
	assert.Contains(t, prompt, "- index.html")
	assert.Contains(t, prompt, "- style.css")
}

func TestPreviousErrorHeader(t *testing.T) {
	tests := []struct {
		name     string
		lastErr  string
		contains string
	}{
		{"missing package.json recognized", "ENOENT: no such file package.json", "package.json was missing"},
		{"unresolved module recognized", "Error: Cannot find module './lib/db'", "unresolved module import"},
		{"permission error recognized", "EACCES: permission denied, open '/etc/x'", "permission error"},
		{"unknown error carried verbatim", "something exotic broke", "something exotic broke"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt("app", 2, 3, nil, tt.lastErr)
			assert.Contains(t, prompt, tt.contains)
			assert.True(t, strings.HasPrefix(prompt, "Note:"))
		})
	}
}

func TestPreviousErrorHeaderBounded(t *testing.T) {
	long := strings.Repeat("x", 5000)
	prompt := BuildPrompt("app", 2, 3, nil, long)

	header := strings.SplitN(prompt, "\n\n", 2)[0]
	assert.Less(t, len(header), 400)
}

func TestNoHeaderWithoutPriorError(t *testing.T) {
	prompt := BuildPrompt("app", 2, 3, nil, "")
	assert.False(t, strings.HasPrefix(prompt, "Note:"))
}
