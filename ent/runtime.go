// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/appforge/forge/ent/account"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/event"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/queuestate"
	"github.com/appforge/forge/ent/ratelimitstate"
	"github.com/appforge/forge/ent/schema"
	"github.com/appforge/forge/ent/usagerecord"
	"github.com/appforge/forge/ent/version"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescBalanceSeconds is the schema descriptor for balance_seconds field.
	accountDescBalanceSeconds := accountFields[1].Descriptor()
	// account.DefaultBalanceSeconds holds the default value on creation for the balance_seconds field.
	account.DefaultBalanceSeconds = accountDescBalanceSeconds.Default.(int64)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[2].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	buildFields := schema.Build{}.Fields()
	_ = buildFields
	// buildDescAttempt is the schema descriptor for attempt field.
	buildDescAttempt := buildFields[4].Descriptor()
	// build.DefaultAttempt holds the default value on creation for the attempt field.
	build.DefaultAttempt = buildDescAttempt.Default.(int)
	// buildDescIsInitialBuild is the schema descriptor for is_initial_build field.
	buildDescIsInitialBuild := buildFields[6].Descriptor()
	// build.DefaultIsInitialBuild holds the default value on creation for the is_initial_build field.
	build.DefaultIsInitialBuild = buildDescIsInitialBuild.Default.(bool)
	// buildDescStartedAt is the schema descriptor for started_at field.
	buildDescStartedAt := buildFields[8].Descriptor()
	// build.DefaultStartedAt holds the default value on creation for the started_at field.
	build.DefaultStartedAt = buildDescStartedAt.Default.(func() time.Time)
	// buildDescID is the schema descriptor for id field.
	buildDescID := buildFields[0].Descriptor()
	// build.IDValidator is a validator for the "id" field. It is called by the builders before save.
	build.IDValidator = buildDescID.Validators[0].(func(string) error)
	buildoperationFields := schema.BuildOperation{}.Fields()
	_ = buildoperationFields
	// buildoperationDescCreatedAt is the schema descriptor for created_at field.
	buildoperationDescCreatedAt := buildoperationFields[6].Descriptor()
	// buildoperation.DefaultCreatedAt holds the default value on creation for the created_at field.
	buildoperation.DefaultCreatedAt = buildoperationDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescTokensUsed is the schema descriptor for tokens_used field.
	checkpointDescTokensUsed := checkpointFields[3].Descriptor()
	// checkpoint.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	checkpoint.DefaultTokensUsed = checkpointDescTokensUsed.Default.(int64)
	// checkpointDescCostCents is the schema descriptor for cost_cents field.
	checkpointDescCostCents := checkpointFields[4].Descriptor()
	// checkpoint.DefaultCostCents holds the default value on creation for the cost_cents field.
	checkpoint.DefaultCostCents = checkpointDescCostCents.Default.(int64)
	// checkpointDescAttempt is the schema descriptor for attempt field.
	checkpointDescAttempt := checkpointFields[6].Descriptor()
	// checkpoint.DefaultAttempt holds the default value on creation for the attempt field.
	checkpoint.DefaultAttempt = checkpointDescAttempt.Default.(int)
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[7].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[6].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttempt is the schema descriptor for attempt field.
	jobDescAttempt := jobFields[7].Descriptor()
	// job.DefaultAttempt holds the default value on creation for the attempt field.
	job.DefaultAttempt = jobDescAttempt.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[8].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescRunAt is the schema descriptor for run_at field.
	jobDescRunAt := jobFields[9].Descriptor()
	// job.DefaultRunAt holds the default value on creation for the run_at field.
	job.DefaultRunAt = jobDescRunAt.Default.(func() time.Time)
	// jobDescDelayUntilRollbackComplete is the schema descriptor for delay_until_rollback_complete field.
	jobDescDelayUntilRollbackComplete := jobFields[10].Descriptor()
	// job.DefaultDelayUntilRollbackComplete holds the default value on creation for the delay_until_rollback_complete field.
	job.DefaultDelayUntilRollbackComplete = jobDescDelayUntilRollbackComplete.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[15].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[13].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[14].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	queuestateFields := schema.QueueState{}.Fields()
	_ = queuestateFields
	// queuestateDescPaused is the schema descriptor for paused field.
	queuestateDescPaused := queuestateFields[1].Descriptor()
	// queuestate.DefaultPaused holds the default value on creation for the paused field.
	queuestate.DefaultPaused = queuestateDescPaused.Default.(bool)
	// queuestateDescUpdatedAt is the schema descriptor for updated_at field.
	queuestateDescUpdatedAt := queuestateFields[4].Descriptor()
	// queuestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuestate.DefaultUpdatedAt = queuestateDescUpdatedAt.Default.(func() time.Time)
	// queuestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queuestate.UpdateDefaultUpdatedAt = queuestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratelimitstateFields := schema.RateLimitState{}.Fields()
	_ = ratelimitstateFields
	// ratelimitstateDescActive is the schema descriptor for active field.
	ratelimitstateDescActive := ratelimitstateFields[1].Descriptor()
	// ratelimitstate.DefaultActive holds the default value on creation for the active field.
	ratelimitstate.DefaultActive = ratelimitstateDescActive.Default.(bool)
	// ratelimitstateDescUpdatedAt is the schema descriptor for updated_at field.
	ratelimitstateDescUpdatedAt := ratelimitstateFields[4].Descriptor()
	// ratelimitstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ratelimitstate.DefaultUpdatedAt = ratelimitstateDescUpdatedAt.Default.(func() time.Time)
	// ratelimitstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ratelimitstate.UpdateDefaultUpdatedAt = ratelimitstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescStartedAt is the schema descriptor for started_at field.
	usagerecordDescStartedAt := usagerecordFields[2].Descriptor()
	// usagerecord.DefaultStartedAt holds the default value on creation for the started_at field.
	usagerecord.DefaultStartedAt = usagerecordDescStartedAt.Default.(func() time.Time)
	// usagerecordDescSeconds is the schema descriptor for seconds field.
	usagerecordDescSeconds := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultSeconds holds the default value on creation for the seconds field.
	usagerecord.DefaultSeconds = usagerecordDescSeconds.Default.(int64)
	// usagerecordDescRefunded is the schema descriptor for refunded field.
	usagerecordDescRefunded := usagerecordFields[5].Descriptor()
	// usagerecord.DefaultRefunded holds the default value on creation for the refunded field.
	usagerecord.DefaultRefunded = usagerecordDescRefunded.Default.(bool)
	versionFields := schema.Version{}.Fields()
	_ = versionFields
	// versionDescMajor is the schema descriptor for major field.
	versionDescMajor := versionFields[5].Descriptor()
	// version.DefaultMajor holds the default value on creation for the major field.
	version.DefaultMajor = versionDescMajor.Default.(int)
	// versionDescMinor is the schema descriptor for minor field.
	versionDescMinor := versionFields[6].Descriptor()
	// version.DefaultMinor holds the default value on creation for the minor field.
	version.DefaultMinor = versionDescMinor.Default.(int)
	// versionDescPatch is the schema descriptor for patch field.
	versionDescPatch := versionFields[7].Descriptor()
	// version.DefaultPatch holds the default value on creation for the patch field.
	version.DefaultPatch = versionDescPatch.Default.(int)
	// versionDescCreatedAt is the schema descriptor for created_at field.
	versionDescCreatedAt := versionFields[10].Descriptor()
	// version.DefaultCreatedAt holds the default value on creation for the created_at field.
	version.DefaultCreatedAt = versionDescCreatedAt.Default.(func() time.Time)
	// versionDescID is the schema descriptor for id field.
	versionDescID := versionFields[0].Descriptor()
	// version.IDValidator is a validator for the "id" field. It is called by the builders before save.
	version.IDValidator = versionDescID.Validators[0].(func(string) error)
}
