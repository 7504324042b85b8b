package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
)

// DeployRequest carries everything a deploy target needs.
type DeployRequest struct {
	ProjectID   string
	BuildID     string
	VersionID   string
	VersionName string
	ProjectPath string
	Lane        string
	Framework   string
}

// DeployResult is the outcome of a successful deploy.
type DeployResult struct {
	PreviewURL string
	Lane       string
}

// Deployer pushes a built project to its serving lane. Implementations are
// external (CDN upload, edge bundle, node runtime); the worker only owns the
// lifecycle writes around the call.
type Deployer interface {
	Deploy(ctx context.Context, req DeployRequest) (*DeployResult, error)
}

// BaseURLDeployer is the default deployer: it assumes an external sync
// process serves the project directory and derives the preview URL from the
// configured base.
type BaseURLDeployer struct {
	baseURL string
}

// NewBaseURLDeployer creates a deployer that derives preview URLs from a
// static base.
func NewBaseURLDeployer(baseURL string) *BaseURLDeployer {
	return &BaseURLDeployer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Deploy returns {base}/{projectId}/{versionName} without touching the
// project files.
func (d *BaseURLDeployer) Deploy(_ context.Context, req DeployRequest) (*DeployResult, error) {
	if req.ProjectID == "" || req.VersionName == "" {
		return nil, fmt.Errorf("deploy request missing project id or version name")
	}
	return &DeployResult{
		PreviewURL: fmt.Sprintf("%s/%s/%s", d.baseURL, req.ProjectID, req.VersionName),
		Lane:       req.Lane,
	}, nil
}

// DeployWorker moves an ai_completed build to deployed. It reads the
// agent-written deploy intent for lane selection, hands the project to the
// Deployer, and records the outcome. Version rows are owned by the stream
// stage and are never created or deleted here.
type DeployWorker struct {
	client    *ent.Client
	projects  *services.ProjectService
	versions  *services.VersionService
	timeline  Announcer
	publisher BuildPublisher
	deployer  Deployer

	wsCfg *config.WorkspaceConfig
}

// NewDeployWorker creates the deploy-stage worker.
func NewDeployWorker(client *ent.Client, projects *services.ProjectService, versions *services.VersionService, timeline Announcer, publisher BuildPublisher, deployer Deployer, wsCfg *config.WorkspaceConfig) *DeployWorker {
	return &DeployWorker{
		client:    client,
		projects:  projects,
		versions:  versions,
		timeline:  timeline,
		publisher: publisher,
		deployer:  deployer,
		wsCfg:     wsCfg,
	}
}

// Handle processes one deploy job.
func (w *DeployWorker) Handle(ctx context.Context, job *ent.Job) error {
	payload, err := decodePayload(job.Payload)
	if err != nil {
		return queue.Unrecoverable(err)
	}

	projectPath := payload.ProjectPath
	if projectPath == "" {
		projectPath = filepath.Join(w.wsCfg.BaseDir, payload.UserID, payload.ProjectID)
	}

	version, err := w.versions.GetByBuild(ctx, payload.BuildID)
	if err != nil {
		return w.fail(ctx, job, payload, fmt.Errorf("failed to load version for build %s: %w", payload.BuildID, err))
	}

	intent := ReadDeployIntent(projectPath, w.wsCfg.HiddenDir)

	result, err := w.deployer.Deploy(ctx, DeployRequest{
		ProjectID:   payload.ProjectID,
		BuildID:     payload.BuildID,
		VersionID:   version.ID,
		VersionName: version.DisplayName,
		ProjectPath: projectPath,
		Lane:        intent.Lane,
		Framework:   intent.Framework,
	})
	if err != nil {
		return w.fail(ctx, job, payload, fmt.Errorf("deploy failed: %w", err))
	}

	if err := w.projects.MarkDeployed(ctx, payload.ProjectID, version.ID, version.DisplayName, result.PreviewURL, result.Lane); err != nil {
		return fmt.Errorf("failed to mark project deployed: %w", err)
	}
	if err := w.client.Build.UpdateOneID(payload.BuildID).
		SetStatus(build.StatusDeployed).
		Exec(ctx); err != nil {
		slog.Warn("Failed to mark build deployed", "build_id", payload.BuildID, "error", err)
	}

	if _, err := w.timeline.AppendMessage(ctx, services.AppendMessageRequest{
		ProjectID: payload.ProjectID,
		ActorType: message.ActorTypeAssistant,
		Mode:      message.ModeBuild,
		Content:   fmt.Sprintf("Your app is live at %s", result.PreviewURL),
		BuildID:   payload.BuildID,
		Response: map[string]interface{}{
			"type":        "build_completed",
			"preview_url": result.PreviewURL,
			"lane":        result.Lane,
			"version":     version.DisplayName,
		},
	}); err != nil {
		slog.Warn("Failed to announce deploy", "build_id", payload.BuildID, "error", err)
	}

	if err := w.publisher.PublishBuildStatus(ctx, payload.ProjectID, events.BuildStatusPayload{
		Type:      events.EventTypeBuildStatus,
		ProjectID: payload.ProjectID,
		BuildID:   payload.BuildID,
		Status:    build.StatusDeployed,
		Attempt:   job.Attempt,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish deploy status", "build_id", payload.BuildID, "error", err)
	}

	slog.Info("Project deployed",
		"project_id", payload.ProjectID, "build_id", payload.BuildID,
		"version", version.DisplayName, "lane", result.Lane, "preview_url", result.PreviewURL)
	return nil
}

// fail retries below the attempt cap and fails the project terminally at it.
func (w *DeployWorker) fail(ctx context.Context, job *ent.Job, payload *StagePayload, err error) error {
	if job.Attempt < job.MaxAttempts {
		slog.Warn("Deploy attempt failed, retrying",
			"build_id", payload.BuildID, "attempt", job.Attempt, "error", err)
		return err
	}

	if updErr := w.client.Build.UpdateOneID(payload.BuildID).
		SetStatus(build.StatusFailed).
		SetErrorType("deploy_failed").
		SetErrorMessage(err.Error()).
		SetCompletedAt(time.Now()).
		Exec(ctx); updErr != nil {
		slog.Error("Failed to record deploy failure", "build_id", payload.BuildID, "error", updErr)
	}
	if markErr := w.projects.MarkFailed(ctx, payload.ProjectID); markErr != nil {
		slog.Error("Failed to mark project failed", "project_id", payload.ProjectID, "error", markErr)
	}

	if pubErr := w.publisher.PublishBuildStatus(ctx, payload.ProjectID, events.BuildStatusPayload{
		Type:      events.EventTypeBuildStatus,
		ProjectID: payload.ProjectID,
		BuildID:   payload.BuildID,
		Status:    build.StatusFailed,
		Attempt:   job.Attempt,
		Error:     err.Error(),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); pubErr != nil {
		slog.Warn("Failed to publish deploy failure", "build_id", payload.BuildID, "error", pubErr)
	}

	slog.Error("Deploy failed terminally", "build_id", payload.BuildID, "error", err)
	return err
}
