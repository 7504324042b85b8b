package agent

import (
	"fmt"
	"strings"
)

// maxErrorContext bounds the "previous error context" header carried into a
// retry prompt. Long stack traces drown the instruction that matters.
const maxErrorContext = 300

const initialBuildTemplate = `Build a complete, working web application from this request:

%s

Write all files into the current directory. Produce a runnable project with an entry point, then write a deploy-intent file describing the runtime lane.`

const resumeWithFilesTemplate = `Continue building the application. A previous attempt already created these files:

%s

Original request:

%s

Review the existing files, fix whatever is broken or incomplete, and finish the build.`

const speedModeTemplate = `Build a working web application from this request as directly as possible:

%s

Previous attempts produced nothing usable. Favor the simplest structure that satisfies the request. Do not scaffold beyond what is needed.`

const bareMinimumTemplate = `Produce the smallest possible working version of this request:

%s

A single page that loads without errors beats an incomplete larger project.`

const recommendationsTemplate = `Review the project you just built and emit a recommendations JSON object with this exact shape:

{"recommendations": [{"title": string, "description": string, "priority": "high"|"medium"|"low"}], "version": {"major": int, "minor": int, "patch": int, "change_type": "major"|"minor"|"patch"}}

Output only the JSON object, nothing else.`

const documentationTemplate = `Write a short project-info document for the application you just built: what it does, how it is structured, and how to run it. Plain markdown, aimed at a developer seeing the project for the first time.`

// BuildPrompt selects the prompt template for a build attempt.
//
// Attempt 1 gets the full initial-build prompt. Retries that found files on
// disk get the resume template with the file list; retries over an empty
// directory get speed-mode, and the final attempt falls back to the
// bare-minimum template.
func BuildPrompt(request string, attempt, maxAttempts int, existingFiles []string, lastError string) string {
	var body string
	switch {
	case attempt <= 1:
		body = fmt.Sprintf(initialBuildTemplate, request)
	case len(existingFiles) > 0:
		body = fmt.Sprintf(resumeWithFilesTemplate, formatFileList(existingFiles), request)
	case attempt >= maxAttempts:
		body = fmt.Sprintf(bareMinimumTemplate, request)
	default:
		body = fmt.Sprintf(speedModeTemplate, request)
	}

	if header := previousErrorHeader(lastError); header != "" {
		return header + "\n\n" + body
	}
	return body
}

// RecommendationsPrompt is the metadata-stage follow-up prompt.
func RecommendationsPrompt() string {
	return recommendationsTemplate
}

// DocumentationPrompt is the initial-build documentation prompt.
func DocumentationPrompt() string {
	return documentationTemplate
}

// previousErrorHeader turns a recognized prior failure into a one-line hint
// at the top of the retry prompt. Unrecognized errors are carried verbatim,
// truncated; empty errors produce no header.
func previousErrorHeader(lastError string) string {
	if lastError == "" {
		return ""
	}

	lower := strings.ToLower(lastError)
	switch {
	case strings.Contains(lower, "package.json"):
		return "Note: the previous attempt failed because package.json was missing or invalid. Create a valid package.json first."
	case strings.Contains(lower, "cannot find module") || strings.Contains(lower, "module not found"):
		return "Note: the previous attempt failed with an unresolved module import. Check that every import resolves to a file or declared dependency."
	case strings.Contains(lower, "eacces") || strings.Contains(lower, "permission denied"):
		return "Note: the previous attempt hit a permission error. Write only inside the current directory."
	}

	msg := lastError
	if len(msg) > maxErrorContext {
		msg = msg[:maxErrorContext] + "…"
	}
	return "Note: the previous attempt failed with: " + msg
}

func formatFileList(files []string) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
