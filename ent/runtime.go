// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/checkpoint"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
	"github.com/forgeflow/forgeflow/ent/modelconfig"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/patch"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/repository"
	"github.com/forgeflow/forgeflow/ent/schema"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/taskevent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archivalmemoryFields := schema.ArchivalMemory{}.Fields()
	_ = archivalmemoryFields
	// archivalmemoryDescIsGlobal is the schema descriptor for is_global field.
	archivalmemoryDescIsGlobal := archivalmemoryFields[8].Descriptor()
	// archivalmemory.DefaultIsGlobal holds the default value on creation for the is_global field.
	archivalmemory.DefaultIsGlobal = archivalmemoryDescIsGlobal.Default.(bool)
	// archivalmemoryDescImportanceScore is the schema descriptor for importance_score field.
	archivalmemoryDescImportanceScore := archivalmemoryFields[11].Descriptor()
	// archivalmemory.DefaultImportanceScore holds the default value on creation for the importance_score field.
	archivalmemory.DefaultImportanceScore = archivalmemoryDescImportanceScore.Default.(float64)
	// archivalmemoryDescAccessCount is the schema descriptor for access_count field.
	archivalmemoryDescAccessCount := archivalmemoryFields[12].Descriptor()
	// archivalmemory.DefaultAccessCount holds the default value on creation for the access_count field.
	archivalmemory.DefaultAccessCount = archivalmemoryDescAccessCount.Default.(int)
	// archivalmemoryDescCreatedAt is the schema descriptor for created_at field.
	archivalmemoryDescCreatedAt := archivalmemoryFields[14].Descriptor()
	// archivalmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	archivalmemory.DefaultCreatedAt = archivalmemoryDescCreatedAt.Default.(func() time.Time)
	attemptrecordFields := schema.AttemptRecord{}.Fields()
	_ = attemptrecordFields
	// attemptrecordDescCreatedAt is the schema descriptor for created_at field.
	attemptrecordDescCreatedAt := attemptrecordFields[6].Descriptor()
	// attemptrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	attemptrecord.DefaultCreatedAt = attemptrecordDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[5].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	learnedpatternFields := schema.LearnedPattern{}.Fields()
	_ = learnedpatternFields
	// learnedpatternDescConfidence is the schema descriptor for confidence field.
	learnedpatternDescConfidence := learnedpatternFields[10].Descriptor()
	// learnedpattern.DefaultConfidence holds the default value on creation for the confidence field.
	learnedpattern.DefaultConfidence = learnedpatternDescConfidence.Default.(float64)
	// learnedpatternDescSuccessCount is the schema descriptor for success_count field.
	learnedpatternDescSuccessCount := learnedpatternFields[11].Descriptor()
	// learnedpattern.DefaultSuccessCount holds the default value on creation for the success_count field.
	learnedpattern.DefaultSuccessCount = learnedpatternDescSuccessCount.Default.(int)
	// learnedpatternDescFailureCount is the schema descriptor for failure_count field.
	learnedpatternDescFailureCount := learnedpatternFields[12].Descriptor()
	// learnedpattern.DefaultFailureCount holds the default value on creation for the failure_count field.
	learnedpattern.DefaultFailureCount = learnedpatternDescFailureCount.Default.(int)
	// learnedpatternDescCreatedAt is the schema descriptor for created_at field.
	learnedpatternDescCreatedAt := learnedpatternFields[14].Descriptor()
	// learnedpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnedpattern.DefaultCreatedAt = learnedpatternDescCreatedAt.Default.(func() time.Time)
	// learnedpatternDescUpdatedAt is the schema descriptor for updated_at field.
	learnedpatternDescUpdatedAt := learnedpatternFields[15].Descriptor()
	// learnedpattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnedpattern.DefaultUpdatedAt = learnedpatternDescUpdatedAt.Default.(func() time.Time)
	// learnedpattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnedpattern.UpdateDefaultUpdatedAt = learnedpatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescMaxTokens is the schema descriptor for max_tokens field.
	modelconfigDescMaxTokens := modelconfigFields[4].Descriptor()
	// modelconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	modelconfig.DefaultMaxTokens = modelconfigDescMaxTokens.Default.(int)
	// modelconfigDescTemperature is the schema descriptor for temperature field.
	modelconfigDescTemperature := modelconfigFields[5].Descriptor()
	// modelconfig.DefaultTemperature holds the default value on creation for the temperature field.
	modelconfig.DefaultTemperature = modelconfigDescTemperature.Default.(float64)
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[7].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	// modelconfigDescUpdatedAt is the schema descriptor for updated_at field.
	modelconfigDescUpdatedAt := modelconfigFields[8].Descriptor()
	// modelconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelconfig.DefaultUpdatedAt = modelconfigDescUpdatedAt.Default.(func() time.Time)
	// modelconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelconfig.UpdateDefaultUpdatedAt = modelconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelconfigauditFields := schema.ModelConfigAudit{}.Fields()
	_ = modelconfigauditFields
	// modelconfigauditDescCreatedAt is the schema descriptor for created_at field.
	modelconfigauditDescCreatedAt := modelconfigauditFields[5].Descriptor()
	// modelconfigaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfigaudit.DefaultCreatedAt = modelconfigauditDescCreatedAt.Default.(func() time.Time)
	observationFields := schema.Observation{}.Fields()
	_ = observationFields
	// observationDescSummary is the schema descriptor for summary field.
	observationDescSummary := observationFields[7].Descriptor()
	// observation.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	observation.SummaryValidator = observationDescSummary.Validators[0].(func(string) error)
	// observationDescCreatedAt is the schema descriptor for created_at field.
	observationDescCreatedAt := observationFields[12].Descriptor()
	// observation.DefaultCreatedAt holds the default value on creation for the created_at field.
	observation.DefaultCreatedAt = observationDescCreatedAt.Default.(func() time.Time)
	patchFields := schema.Patch{}.Fields()
	_ = patchFields
	// patchDescCreatedAt is the schema descriptor for created_at field.
	patchDescCreatedAt := patchFields[7].Descriptor()
	// patch.DefaultCreatedAt holds the default value on creation for the created_at field.
	patch.DefaultCreatedAt = patchDescCreatedAt.Default.(func() time.Time)
	progressentryFields := schema.ProgressEntry{}.Fields()
	_ = progressentryFields
	// progressentryDescCreatedAt is the schema descriptor for created_at field.
	progressentryDescCreatedAt := progressentryFields[9].Descriptor()
	// progressentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressentry.DefaultCreatedAt = progressentryDescCreatedAt.Default.(func() time.Time)
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescDefaultBranch is the schema descriptor for default_branch field.
	repositoryDescDefaultBranch := repositoryFields[3].Descriptor()
	// repository.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	repository.DefaultDefaultBranch = repositoryDescDefaultBranch.Default.(string)
	// repositoryDescEnabled is the schema descriptor for enabled field.
	repositoryDescEnabled := repositoryFields[5].Descriptor()
	// repository.DefaultEnabled holds the default value on creation for the enabled field.
	repository.DefaultEnabled = repositoryDescEnabled.Default.(bool)
	// repositoryDescCreatedAt is the schema descriptor for created_at field.
	repositoryDescCreatedAt := repositoryFields[6].Descriptor()
	// repository.DefaultCreatedAt holds the default value on creation for the created_at field.
	repository.DefaultCreatedAt = repositoryDescCreatedAt.Default.(func() time.Time)
	// repositoryDescUpdatedAt is the schema descriptor for updated_at field.
	repositoryDescUpdatedAt := repositoryFields[7].Descriptor()
	// repository.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	repository.DefaultUpdatedAt = repositoryDescUpdatedAt.Default.(func() time.Time)
	// repository.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	repository.UpdateDefaultUpdatedAt = repositoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionmemoryFields := schema.SessionMemory{}.Fields()
	_ = sessionmemoryFields
	// sessionmemoryDescStatus is the schema descriptor for status field.
	sessionmemoryDescStatus := sessionmemoryFields[3].Descriptor()
	// sessionmemory.DefaultStatus holds the default value on creation for the status field.
	sessionmemory.DefaultStatus = sessionmemoryDescStatus.Default.(string)
	// sessionmemoryDescErrorCount is the schema descriptor for error_count field.
	sessionmemoryDescErrorCount := sessionmemoryFields[7].Descriptor()
	// sessionmemory.DefaultErrorCount holds the default value on creation for the error_count field.
	sessionmemory.DefaultErrorCount = sessionmemoryDescErrorCount.Default.(int)
	// sessionmemoryDescRetryCount is the schema descriptor for retry_count field.
	sessionmemoryDescRetryCount := sessionmemoryFields[8].Descriptor()
	// sessionmemory.DefaultRetryCount holds the default value on creation for the retry_count field.
	sessionmemory.DefaultRetryCount = sessionmemoryDescRetryCount.Default.(int)
	// sessionmemoryDescCreatedAt is the schema descriptor for created_at field.
	sessionmemoryDescCreatedAt := sessionmemoryFields[10].Descriptor()
	// sessionmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmemory.DefaultCreatedAt = sessionmemoryDescCreatedAt.Default.(func() time.Time)
	// sessionmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionmemoryDescUpdatedAt := sessionmemoryFields[11].Descriptor()
	// sessionmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionmemory.DefaultUpdatedAt = sessionmemoryDescUpdatedAt.Default.(func() time.Time)
	// sessionmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionmemory.UpdateDefaultUpdatedAt = sessionmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	staticmemoryFields := schema.StaticMemory{}.Fields()
	_ = staticmemoryFields
	// staticmemoryDescVersion is the schema descriptor for version field.
	staticmemoryDescVersion := staticmemoryFields[3].Descriptor()
	// staticmemory.DefaultVersion holds the default value on creation for the version field.
	staticmemory.DefaultVersion = staticmemoryDescVersion.Default.(int)
	// staticmemoryDescMaxDiffLines is the schema descriptor for max_diff_lines field.
	staticmemoryDescMaxDiffLines := staticmemoryFields[6].Descriptor()
	// staticmemory.DefaultMaxDiffLines holds the default value on creation for the max_diff_lines field.
	staticmemory.DefaultMaxDiffLines = staticmemoryDescMaxDiffLines.Default.(int)
	// staticmemoryDescMaxFilesPerTask is the schema descriptor for max_files_per_task field.
	staticmemoryDescMaxFilesPerTask := staticmemoryFields[7].Descriptor()
	// staticmemory.DefaultMaxFilesPerTask holds the default value on creation for the max_files_per_task field.
	staticmemory.DefaultMaxFilesPerTask = staticmemoryDescMaxFilesPerTask.Default.(int)
	// staticmemoryDescCreatedAt is the schema descriptor for created_at field.
	staticmemoryDescCreatedAt := staticmemoryFields[9].Descriptor()
	// staticmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	staticmemory.DefaultCreatedAt = staticmemoryDescCreatedAt.Default.(func() time.Time)
	// staticmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	staticmemoryDescUpdatedAt := staticmemoryFields[10].Descriptor()
	// staticmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staticmemory.DefaultUpdatedAt = staticmemoryDescUpdatedAt.Default.(func() time.Time)
	// staticmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staticmemory.UpdateDefaultUpdatedAt = staticmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttemptCount is the schema descriptor for attempt_count field.
	taskDescAttemptCount := taskFields[11].Descriptor()
	// task.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	task.DefaultAttemptCount = taskDescAttemptCount.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[12].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescIsOrchestrated is the schema descriptor for is_orchestrated field.
	taskDescIsOrchestrated := taskFields[17].Descriptor()
	// task.DefaultIsOrchestrated holds the default value on creation for the is_orchestrated field.
	task.DefaultIsOrchestrated = taskDescIsOrchestrated.Default.(bool)
	// taskDescDryRun is the schema descriptor for dry_run field.
	taskDescDryRun := taskFields[18].Descriptor()
	// task.DefaultDryRun holds the default value on creation for the dry_run field.
	task.DefaultDryRun = taskDescDryRun.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[25].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[26].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescCreatedAt is the schema descriptor for created_at field.
	taskeventDescCreatedAt := taskeventFields[6].Descriptor()
	// taskevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskevent.DefaultCreatedAt = taskeventDescCreatedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescAttempts is the schema descriptor for attempts field.
	webhookeventDescAttempts := webhookeventFields[6].Descriptor()
	// webhookevent.DefaultAttempts holds the default value on creation for the attempts field.
	webhookevent.DefaultAttempts = webhookeventDescAttempts.Default.(int)
	// webhookeventDescMaxAttempts is the schema descriptor for max_attempts field.
	webhookeventDescMaxAttempts := webhookeventFields[7].Descriptor()
	// webhookevent.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	webhookevent.DefaultMaxAttempts = webhookeventDescMaxAttempts.Default.(int)
	// webhookeventDescCreatedAt is the schema descriptor for created_at field.
	webhookeventDescCreatedAt := webhookeventFields[10].Descriptor()
	// webhookevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookevent.DefaultCreatedAt = webhookeventDescCreatedAt.Default.(func() time.Time)
	// webhookeventDescUpdatedAt is the schema descriptor for updated_at field.
	webhookeventDescUpdatedAt := webhookeventFields[11].Descriptor()
	// webhookevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookevent.DefaultUpdatedAt = webhookeventDescUpdatedAt.Default.(func() time.Time)
	// webhookevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookevent.UpdateDefaultUpdatedAt = webhookeventDescUpdatedAt.UpdateDefault.(func() time.Time)
}
