package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/agent"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
)

// compactPrompt asks the agent to shrink its own context so follow-up
// sessions start cheap. Only sent when compaction is enabled in config.
const compactPrompt = `Summarize the current state of this project in a few sentences so a future session can continue with minimal context. Do not modify any files.`

// MetadataWorker re-enters the completed build's agent session to generate
// recommendations, version semantics, and (on initial builds) documentation.
//
// The stage is advisory: it never demotes the build from ai_completed.
// Schema drift in the agent's output is reported and swallowed; only
// transport-level failures are retried by the queue.
type MetadataWorker struct {
	projects *services.ProjectService
	versions *services.VersionService
	timeline Announcer

	agentCfg *config.AgentConfig
	wsCfg    *config.WorkspaceConfig
}

// NewMetadataWorker creates the metadata-stage worker.
func NewMetadataWorker(projects *services.ProjectService, versions *services.VersionService, timeline Announcer, agentCfg *config.AgentConfig, wsCfg *config.WorkspaceConfig) *MetadataWorker {
	return &MetadataWorker{
		projects: projects,
		versions: versions,
		timeline: timeline,
		agentCfg: agentCfg,
		wsCfg:    wsCfg,
	}
}

// Handle processes one metadata job.
func (w *MetadataWorker) Handle(ctx context.Context, job *ent.Job) error {
	payload, err := decodePayload(job.Payload)
	if err != nil {
		return queue.Unrecoverable(err)
	}

	projectPath := payload.ProjectPath
	if projectPath == "" {
		projectPath = filepath.Join(w.wsCfg.BaseDir, payload.UserID, payload.ProjectID)
	}

	session := agent.NewSession(w.agentCfg, projectPath, nil)
	timeout := w.agentCfg.MetadataTimeout

	if RecommendationsExist(projectPath, w.wsCfg.HiddenDir, payload.BuildID) {
		slog.Info("Recommendations already present, skipping generation",
			"project_id", payload.ProjectID, "build_id", payload.BuildID)
	} else if err := w.generateRecommendations(ctx, payload, projectPath, session, timeout); err != nil {
		if errors.Is(err, ErrSchemaDrift) {
			// Prompt drift: report and move on, the build stays completed.
			w.reportDrift(ctx, payload, err)
			return nil
		}
		return err
	}

	if payload.IsInitialBuild {
		if err := w.generateDocumentation(ctx, payload, projectPath, session, timeout); err != nil {
			slog.Warn("Documentation generation failed",
				"project_id", payload.ProjectID, "build_id", payload.BuildID, "error", err)
		}
	}

	if w.agentCfg.CompactSessions && session.ID() != "" {
		if _, err := session.Resume(ctx, session.ID(), compactPrompt, timeout, nil); err != nil {
			slog.Warn("Session compaction failed",
				"project_id", payload.ProjectID, "session_id", session.ID(), "error", err)
		}
	}

	if session.ID() != "" {
		if err := w.projects.SetAgentSession(ctx, payload.ProjectID, session.ID()); err != nil {
			slog.Warn("Failed to persist session id after metadata stage",
				"project_id", payload.ProjectID, "error", err)
		}
	}
	return nil
}

// generateRecommendations resumes the build session with the
// recommendations prompt, validates the JSON output, persists it, and
// applies the version semantics without touching the display name.
func (w *MetadataWorker) generateRecommendations(ctx context.Context, payload *StagePayload, projectPath string, session *agent.Session, timeout time.Duration) error {
	prompt := agent.RecommendationsPrompt()

	var result *agent.RunResult
	var err error
	if payload.SessionID != "" {
		result, err = session.Resume(ctx, payload.SessionID, prompt, timeout, nil)
	} else {
		result, err = session.Run(ctx, prompt, timeout, nil)
	}
	if err != nil {
		return fmt.Errorf("recommendations run failed: %w", err)
	}

	doc, err := ParseRecommendations(result.Result)
	if err != nil {
		return err
	}

	// Stamp the build so a later build of this project regenerates.
	doc.BuildID = payload.BuildID
	if err := WriteRecommendations(projectPath, w.wsCfg.HiddenDir, doc); err != nil {
		return err
	}

	version, err := w.versions.GetByBuild(ctx, payload.BuildID)
	if err != nil {
		return fmt.Errorf("failed to load version for build %s: %w", payload.BuildID, err)
	}
	if err := w.versions.SetSemantics(ctx, version.ID,
		doc.Version.Major, doc.Version.Minor, doc.Version.Patch, doc.Version.ChangeType); err != nil {
		return fmt.Errorf("failed to store version semantics: %w", err)
	}

	slog.Info("Recommendations generated",
		"project_id", payload.ProjectID, "build_id", payload.BuildID,
		"count", len(doc.Recommendations), "change_type", doc.Version.ChangeType)
	return nil
}

// generateDocumentation continues the session with the documentation prompt
// and writes the project info file. Initial builds only.
func (w *MetadataWorker) generateDocumentation(ctx context.Context, payload *StagePayload, projectPath string, session *agent.Session, timeout time.Duration) error {
	resumeID := session.ID()
	if resumeID == "" {
		resumeID = payload.SessionID
	}

	var result *agent.RunResult
	var err error
	if resumeID != "" {
		result, err = session.Resume(ctx, resumeID, agent.DocumentationPrompt(), timeout, nil)
	} else {
		result, err = session.Run(ctx, agent.DocumentationPrompt(), timeout, nil)
	}
	if err != nil {
		return err
	}
	if result.Result == "" {
		return fmt.Errorf("documentation run produced no output")
	}
	return WriteProjectInfo(projectPath, w.wsCfg.HiddenDir, result.Result)
}

// reportDrift records a prompt-drift incident on the timeline.
func (w *MetadataWorker) reportDrift(ctx context.Context, payload *StagePayload, err error) {
	slog.Warn("Recommendations output did not match schema",
		"project_id", payload.ProjectID, "build_id", payload.BuildID, "error", err)

	if _, msgErr := w.timeline.AppendMessage(ctx, services.AppendMessageRequest{
		ProjectID: payload.ProjectID,
		ActorType: message.ActorTypeSystem,
		Content:   "Recommendations could not be generated for this build",
		BuildID:   payload.BuildID,
		Response: map[string]interface{}{
			"type":    "recommendations_failed",
			"message": err.Error(),
		},
	}); msgErr != nil {
		slog.Warn("Failed to record recommendations failure",
			"build_id", payload.BuildID, "error", msgErr)
	}
}
