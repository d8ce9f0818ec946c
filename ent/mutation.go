// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/checkpoint"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
	"github.com/forgeflow/forgeflow/ent/modelconfig"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/patch"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/repository"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/taskevent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchivalMemory   = "ArchivalMemory"
	TypeAttemptRecord    = "AttemptRecord"
	TypeCheckpoint       = "Checkpoint"
	TypeLearnedPattern   = "LearnedPattern"
	TypeModelConfig      = "ModelConfig"
	TypeModelConfigAudit = "ModelConfigAudit"
	TypeObservation      = "Observation"
	TypePatch            = "Patch"
	TypeProgressEntry    = "ProgressEntry"
	TypeRepository       = "Repository"
	TypeSessionMemory    = "SessionMemory"
	TypeStaticMemory     = "StaticMemory"
	TypeTask             = "Task"
	TypeTaskEvent        = "TaskEvent"
	TypeWebhookEvent     = "WebhookEvent"
)

// ArchivalMemoryMutation represents an operation that mutates the ArchivalMemory nodes in the graph.
type ArchivalMemoryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	content             *string
	summary             *string
	embedding           *[]float32
	appendembedding     []float32
	source_type         *archivalmemory.SourceType
	source_id           *string
	repo                *string
	task_id             *string
	is_global           *bool
	metadata            *map[string]interface{}
	token_count         *int
	addtoken_count      *int
	importance_score    *float64
	addimportance_score *float64
	access_count        *int
	addaccess_count     *int
	last_accessed_at    *time.Time
	created_at          *time.Time
	expires_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ArchivalMemory, error)
	predicates          []predicate.ArchivalMemory
}

var _ ent.Mutation = (*ArchivalMemoryMutation)(nil)

// archivalmemoryOption allows management of the mutation configuration using functional options.
type archivalmemoryOption func(*ArchivalMemoryMutation)

// newArchivalMemoryMutation creates new mutation for the ArchivalMemory entity.
func newArchivalMemoryMutation(c config, op Op, opts ...archivalmemoryOption) *ArchivalMemoryMutation {
	m := &ArchivalMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeArchivalMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchivalMemoryID sets the ID field of the mutation.
func withArchivalMemoryID(id string) archivalmemoryOption {
	return func(m *ArchivalMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchivalMemory
		)
		m.oldValue = func(ctx context.Context) (*ArchivalMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchivalMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchivalMemory sets the old ArchivalMemory of the mutation.
func withArchivalMemory(node *ArchivalMemory) archivalmemoryOption {
	return func(m *ArchivalMemoryMutation) {
		m.oldValue = func(context.Context) (*ArchivalMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchivalMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchivalMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArchivalMemory entities.
func (m *ArchivalMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchivalMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchivalMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchivalMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContent sets the "content" field.
func (m *ArchivalMemoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArchivalMemoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArchivalMemoryMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *ArchivalMemoryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArchivalMemoryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArchivalMemoryMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[archivalmemory.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArchivalMemoryMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, archivalmemory.FieldSummary)
}

// SetEmbedding sets the "embedding" field.
func (m *ArchivalMemoryMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ArchivalMemoryMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *ArchivalMemoryMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *ArchivalMemoryMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ArchivalMemoryMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
}

// SetSourceType sets the "source_type" field.
func (m *ArchivalMemoryMutation) SetSourceType(at archivalmemory.SourceType) {
	m.source_type = &at
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ArchivalMemoryMutation) SourceType() (r archivalmemory.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldSourceType(ctx context.Context) (v archivalmemory.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ArchivalMemoryMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceID sets the "source_id" field.
func (m *ArchivalMemoryMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ArchivalMemoryMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *ArchivalMemoryMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[archivalmemory.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ArchivalMemoryMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, archivalmemory.FieldSourceID)
}

// SetRepo sets the "repo" field.
func (m *ArchivalMemoryMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *ArchivalMemoryMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldRepo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ClearRepo clears the value of the "repo" field.
func (m *ArchivalMemoryMutation) ClearRepo() {
	m.repo = nil
	m.clearedFields[archivalmemory.FieldRepo] = struct{}{}
}

// RepoCleared returns if the "repo" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) RepoCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldRepo]
	return ok
}

// ResetRepo resets all changes to the "repo" field.
func (m *ArchivalMemoryMutation) ResetRepo() {
	m.repo = nil
	delete(m.clearedFields, archivalmemory.FieldRepo)
}

// SetTaskID sets the "task_id" field.
func (m *ArchivalMemoryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ArchivalMemoryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ArchivalMemoryMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[archivalmemory.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ArchivalMemoryMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, archivalmemory.FieldTaskID)
}

// SetIsGlobal sets the "is_global" field.
func (m *ArchivalMemoryMutation) SetIsGlobal(b bool) {
	m.is_global = &b
}

// IsGlobal returns the value of the "is_global" field in the mutation.
func (m *ArchivalMemoryMutation) IsGlobal() (r bool, exists bool) {
	v := m.is_global
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGlobal returns the old "is_global" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldIsGlobal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGlobal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGlobal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGlobal: %w", err)
	}
	return oldValue.IsGlobal, nil
}

// ResetIsGlobal resets all changes to the "is_global" field.
func (m *ArchivalMemoryMutation) ResetIsGlobal() {
	m.is_global = nil
}

// SetMetadata sets the "metadata" field.
func (m *ArchivalMemoryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ArchivalMemoryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ArchivalMemoryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[archivalmemory.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ArchivalMemoryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, archivalmemory.FieldMetadata)
}

// SetTokenCount sets the "token_count" field.
func (m *ArchivalMemoryMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ArchivalMemoryMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ArchivalMemoryMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ArchivalMemoryMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *ArchivalMemoryMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[archivalmemory.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ArchivalMemoryMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, archivalmemory.FieldTokenCount)
}

// SetImportanceScore sets the "importance_score" field.
func (m *ArchivalMemoryMutation) SetImportanceScore(f float64) {
	m.importance_score = &f
	m.addimportance_score = nil
}

// ImportanceScore returns the value of the "importance_score" field in the mutation.
func (m *ArchivalMemoryMutation) ImportanceScore() (r float64, exists bool) {
	v := m.importance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImportanceScore returns the old "importance_score" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldImportanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportanceScore: %w", err)
	}
	return oldValue.ImportanceScore, nil
}

// AddImportanceScore adds f to the "importance_score" field.
func (m *ArchivalMemoryMutation) AddImportanceScore(f float64) {
	if m.addimportance_score != nil {
		*m.addimportance_score += f
	} else {
		m.addimportance_score = &f
	}
}

// AddedImportanceScore returns the value that was added to the "importance_score" field in this mutation.
func (m *ArchivalMemoryMutation) AddedImportanceScore() (r float64, exists bool) {
	v := m.addimportance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportanceScore resets all changes to the "importance_score" field.
func (m *ArchivalMemoryMutation) ResetImportanceScore() {
	m.importance_score = nil
	m.addimportance_score = nil
}

// SetAccessCount sets the "access_count" field.
func (m *ArchivalMemoryMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *ArchivalMemoryMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *ArchivalMemoryMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *ArchivalMemoryMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *ArchivalMemoryMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *ArchivalMemoryMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *ArchivalMemoryMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldLastAccessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (m *ArchivalMemoryMutation) ClearLastAccessedAt() {
	m.last_accessed_at = nil
	m.clearedFields[archivalmemory.FieldLastAccessedAt] = struct{}{}
}

// LastAccessedAtCleared returns if the "last_accessed_at" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) LastAccessedAtCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldLastAccessedAt]
	return ok
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *ArchivalMemoryMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	delete(m.clearedFields, archivalmemory.FieldLastAccessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArchivalMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArchivalMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArchivalMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ArchivalMemoryMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ArchivalMemoryMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ArchivalMemory entity.
// If the ArchivalMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivalMemoryMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ArchivalMemoryMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[archivalmemory.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ArchivalMemoryMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[archivalmemory.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ArchivalMemoryMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, archivalmemory.FieldExpiresAt)
}

// Where appends a list predicates to the ArchivalMemoryMutation builder.
func (m *ArchivalMemoryMutation) Where(ps ...predicate.ArchivalMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchivalMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchivalMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchivalMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchivalMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchivalMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchivalMemory).
func (m *ArchivalMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchivalMemoryMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.content != nil {
		fields = append(fields, archivalmemory.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, archivalmemory.FieldSummary)
	}
	if m.embedding != nil {
		fields = append(fields, archivalmemory.FieldEmbedding)
	}
	if m.source_type != nil {
		fields = append(fields, archivalmemory.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, archivalmemory.FieldSourceID)
	}
	if m.repo != nil {
		fields = append(fields, archivalmemory.FieldRepo)
	}
	if m.task_id != nil {
		fields = append(fields, archivalmemory.FieldTaskID)
	}
	if m.is_global != nil {
		fields = append(fields, archivalmemory.FieldIsGlobal)
	}
	if m.metadata != nil {
		fields = append(fields, archivalmemory.FieldMetadata)
	}
	if m.token_count != nil {
		fields = append(fields, archivalmemory.FieldTokenCount)
	}
	if m.importance_score != nil {
		fields = append(fields, archivalmemory.FieldImportanceScore)
	}
	if m.access_count != nil {
		fields = append(fields, archivalmemory.FieldAccessCount)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, archivalmemory.FieldLastAccessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, archivalmemory.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, archivalmemory.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchivalMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archivalmemory.FieldContent:
		return m.Content()
	case archivalmemory.FieldSummary:
		return m.Summary()
	case archivalmemory.FieldEmbedding:
		return m.Embedding()
	case archivalmemory.FieldSourceType:
		return m.SourceType()
	case archivalmemory.FieldSourceID:
		return m.SourceID()
	case archivalmemory.FieldRepo:
		return m.Repo()
	case archivalmemory.FieldTaskID:
		return m.TaskID()
	case archivalmemory.FieldIsGlobal:
		return m.IsGlobal()
	case archivalmemory.FieldMetadata:
		return m.Metadata()
	case archivalmemory.FieldTokenCount:
		return m.TokenCount()
	case archivalmemory.FieldImportanceScore:
		return m.ImportanceScore()
	case archivalmemory.FieldAccessCount:
		return m.AccessCount()
	case archivalmemory.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case archivalmemory.FieldCreatedAt:
		return m.CreatedAt()
	case archivalmemory.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchivalMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archivalmemory.FieldContent:
		return m.OldContent(ctx)
	case archivalmemory.FieldSummary:
		return m.OldSummary(ctx)
	case archivalmemory.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case archivalmemory.FieldSourceType:
		return m.OldSourceType(ctx)
	case archivalmemory.FieldSourceID:
		return m.OldSourceID(ctx)
	case archivalmemory.FieldRepo:
		return m.OldRepo(ctx)
	case archivalmemory.FieldTaskID:
		return m.OldTaskID(ctx)
	case archivalmemory.FieldIsGlobal:
		return m.OldIsGlobal(ctx)
	case archivalmemory.FieldMetadata:
		return m.OldMetadata(ctx)
	case archivalmemory.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case archivalmemory.FieldImportanceScore:
		return m.OldImportanceScore(ctx)
	case archivalmemory.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case archivalmemory.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case archivalmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case archivalmemory.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArchivalMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivalMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archivalmemory.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case archivalmemory.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case archivalmemory.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case archivalmemory.FieldSourceType:
		v, ok := value.(archivalmemory.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case archivalmemory.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case archivalmemory.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case archivalmemory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case archivalmemory.FieldIsGlobal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGlobal(v)
		return nil
	case archivalmemory.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case archivalmemory.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case archivalmemory.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportanceScore(v)
		return nil
	case archivalmemory.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case archivalmemory.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case archivalmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case archivalmemory.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivalMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchivalMemoryMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_count != nil {
		fields = append(fields, archivalmemory.FieldTokenCount)
	}
	if m.addimportance_score != nil {
		fields = append(fields, archivalmemory.FieldImportanceScore)
	}
	if m.addaccess_count != nil {
		fields = append(fields, archivalmemory.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchivalMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case archivalmemory.FieldTokenCount:
		return m.AddedTokenCount()
	case archivalmemory.FieldImportanceScore:
		return m.AddedImportanceScore()
	case archivalmemory.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivalMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case archivalmemory.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case archivalmemory.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportanceScore(v)
		return nil
	case archivalmemory.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivalMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchivalMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(archivalmemory.FieldSummary) {
		fields = append(fields, archivalmemory.FieldSummary)
	}
	if m.FieldCleared(archivalmemory.FieldSourceID) {
		fields = append(fields, archivalmemory.FieldSourceID)
	}
	if m.FieldCleared(archivalmemory.FieldRepo) {
		fields = append(fields, archivalmemory.FieldRepo)
	}
	if m.FieldCleared(archivalmemory.FieldTaskID) {
		fields = append(fields, archivalmemory.FieldTaskID)
	}
	if m.FieldCleared(archivalmemory.FieldMetadata) {
		fields = append(fields, archivalmemory.FieldMetadata)
	}
	if m.FieldCleared(archivalmemory.FieldTokenCount) {
		fields = append(fields, archivalmemory.FieldTokenCount)
	}
	if m.FieldCleared(archivalmemory.FieldLastAccessedAt) {
		fields = append(fields, archivalmemory.FieldLastAccessedAt)
	}
	if m.FieldCleared(archivalmemory.FieldExpiresAt) {
		fields = append(fields, archivalmemory.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchivalMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchivalMemoryMutation) ClearField(name string) error {
	switch name {
	case archivalmemory.FieldSummary:
		m.ClearSummary()
		return nil
	case archivalmemory.FieldSourceID:
		m.ClearSourceID()
		return nil
	case archivalmemory.FieldRepo:
		m.ClearRepo()
		return nil
	case archivalmemory.FieldTaskID:
		m.ClearTaskID()
		return nil
	case archivalmemory.FieldMetadata:
		m.ClearMetadata()
		return nil
	case archivalmemory.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	case archivalmemory.FieldLastAccessedAt:
		m.ClearLastAccessedAt()
		return nil
	case archivalmemory.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ArchivalMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchivalMemoryMutation) ResetField(name string) error {
	switch name {
	case archivalmemory.FieldContent:
		m.ResetContent()
		return nil
	case archivalmemory.FieldSummary:
		m.ResetSummary()
		return nil
	case archivalmemory.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case archivalmemory.FieldSourceType:
		m.ResetSourceType()
		return nil
	case archivalmemory.FieldSourceID:
		m.ResetSourceID()
		return nil
	case archivalmemory.FieldRepo:
		m.ResetRepo()
		return nil
	case archivalmemory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case archivalmemory.FieldIsGlobal:
		m.ResetIsGlobal()
		return nil
	case archivalmemory.FieldMetadata:
		m.ResetMetadata()
		return nil
	case archivalmemory.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case archivalmemory.FieldImportanceScore:
		m.ResetImportanceScore()
		return nil
	case archivalmemory.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case archivalmemory.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case archivalmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case archivalmemory.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ArchivalMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchivalMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchivalMemoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchivalMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchivalMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchivalMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchivalMemoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchivalMemoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArchivalMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchivalMemoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArchivalMemory edge %s", name)
}

// AttemptRecordMutation represents an operation that mutates the AttemptRecord nodes in the graph.
type AttemptRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	iteration     *int
	additeration  *int
	action        *attemptrecord.Action
	result        *attemptrecord.Result
	error         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptRecord, error)
	predicates    []predicate.AttemptRecord
}

var _ ent.Mutation = (*AttemptRecordMutation)(nil)

// attemptrecordOption allows management of the mutation configuration using functional options.
type attemptrecordOption func(*AttemptRecordMutation)

// newAttemptRecordMutation creates new mutation for the AttemptRecord entity.
func newAttemptRecordMutation(c config, op Op, opts ...attemptrecordOption) *AttemptRecordMutation {
	m := &AttemptRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptRecordID sets the ID field of the mutation.
func withAttemptRecordID(id string) attemptrecordOption {
	return func(m *AttemptRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptRecord
		)
		m.oldValue = func(ctx context.Context) (*AttemptRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptRecord sets the old AttemptRecord of the mutation.
func withAttemptRecord(node *AttemptRecord) attemptrecordOption {
	return func(m *AttemptRecordMutation) {
		m.oldValue = func(context.Context) (*AttemptRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AttemptRecord entities.
func (m *AttemptRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AttemptRecordMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AttemptRecordMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AttemptRecordMutation) ResetTaskID() {
	m.task_id = nil
}

// SetIteration sets the "iteration" field.
func (m *AttemptRecordMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *AttemptRecordMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *AttemptRecordMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *AttemptRecordMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *AttemptRecordMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetAction sets the "action" field.
func (m *AttemptRecordMutation) SetAction(a attemptrecord.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AttemptRecordMutation) Action() (r attemptrecord.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldAction(ctx context.Context) (v attemptrecord.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AttemptRecordMutation) ResetAction() {
	m.action = nil
}

// SetResult sets the "result" field.
func (m *AttemptRecordMutation) SetResult(a attemptrecord.Result) {
	m.result = &a
}

// Result returns the value of the "result" field in the mutation.
func (m *AttemptRecordMutation) Result() (r attemptrecord.Result, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldResult(ctx context.Context) (v attemptrecord.Result, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *AttemptRecordMutation) ResetResult() {
	m.result = nil
}

// SetError sets the "error" field.
func (m *AttemptRecordMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *AttemptRecordMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AttemptRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[attemptrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AttemptRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[attemptrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AttemptRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, attemptrecord.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AttemptRecordMutation builder.
func (m *AttemptRecordMutation) Where(ps ...predicate.AttemptRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptRecord).
func (m *AttemptRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task_id != nil {
		fields = append(fields, attemptrecord.FieldTaskID)
	}
	if m.iteration != nil {
		fields = append(fields, attemptrecord.FieldIteration)
	}
	if m.action != nil {
		fields = append(fields, attemptrecord.FieldAction)
	}
	if m.result != nil {
		fields = append(fields, attemptrecord.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, attemptrecord.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, attemptrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptrecord.FieldTaskID:
		return m.TaskID()
	case attemptrecord.FieldIteration:
		return m.Iteration()
	case attemptrecord.FieldAction:
		return m.Action()
	case attemptrecord.FieldResult:
		return m.Result()
	case attemptrecord.FieldError:
		return m.Error()
	case attemptrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case attemptrecord.FieldIteration:
		return m.OldIteration(ctx)
	case attemptrecord.FieldAction:
		return m.OldAction(ctx)
	case attemptrecord.FieldResult:
		return m.OldResult(ctx)
	case attemptrecord.FieldError:
		return m.OldError(ctx)
	case attemptrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case attemptrecord.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case attemptrecord.FieldAction:
		v, ok := value.(attemptrecord.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case attemptrecord.FieldResult:
		v, ok := value.(attemptrecord.Result)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case attemptrecord.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case attemptrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptRecordMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, attemptrecord.FieldIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptrecord.FieldIteration:
		return m.AddedIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptrecord.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptrecord.FieldError) {
		fields = append(fields, attemptrecord.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptRecordMutation) ClearField(name string) error {
	switch name {
	case attemptrecord.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptRecordMutation) ResetField(name string) error {
	switch name {
	case attemptrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case attemptrecord.FieldIteration:
		m.ResetIteration()
		return nil
	case attemptrecord.FieldAction:
		m.ResetAction()
		return nil
	case attemptrecord.FieldResult:
		m.ResetResult()
		return nil
	case attemptrecord.FieldError:
		m.ResetError()
		return nil
	case attemptrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptRecord edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	reason        *string
	phase         *string
	data          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CheckpointMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CheckpointMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CheckpointMutation) ResetTaskID() {
	m.task_id = nil
}

// SetReason sets the "reason" field.
func (m *CheckpointMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CheckpointMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *CheckpointMutation) ResetReason() {
	m.reason = nil
}

// SetPhase sets the "phase" field.
func (m *CheckpointMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *CheckpointMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *CheckpointMutation) ResetPhase() {
	m.phase = nil
}

// SetData sets the "data" field.
func (m *CheckpointMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *CheckpointMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *CheckpointMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task_id != nil {
		fields = append(fields, checkpoint.FieldTaskID)
	}
	if m.reason != nil {
		fields = append(fields, checkpoint.FieldReason)
	}
	if m.phase != nil {
		fields = append(fields, checkpoint.FieldPhase)
	}
	if m.data != nil {
		fields = append(fields, checkpoint.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.TaskID()
	case checkpoint.FieldReason:
		return m.Reason()
	case checkpoint.FieldPhase:
		return m.Phase()
	case checkpoint.FieldData:
		return m.Data()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.OldTaskID(ctx)
	case checkpoint.FieldReason:
		return m.OldReason(ctx)
	case checkpoint.FieldPhase:
		return m.OldPhase(ctx)
	case checkpoint.FieldData:
		return m.OldData(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case checkpoint.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case checkpoint.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case checkpoint.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldTaskID:
		m.ResetTaskID()
		return nil
	case checkpoint.FieldReason:
		m.ResetReason()
		return nil
	case checkpoint.FieldPhase:
		m.ResetPhase()
		return nil
	case checkpoint.FieldData:
		m.ResetData()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// LearnedPatternMutation represents an operation that mutates the LearnedPattern nodes in the graph.
type LearnedPatternMutation struct {
	config
	op               Op
	typ              string
	id               *string
	pattern_type     *learnedpattern.PatternType
	trigger_pattern  *string
	description      *string
	solution         *string
	examples         *[]string
	appendexamples   []string
	repo             *string
	language         *string
	file_pattern     *string
	task_id          *string
	confidence       *float64
	addconfidence    *float64
	success_count    *int
	addsuccess_count *int
	failure_count    *int
	addfailure_count *int
	embedding        *[]float32
	appendembedding  []float32
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LearnedPattern, error)
	predicates       []predicate.LearnedPattern
}

var _ ent.Mutation = (*LearnedPatternMutation)(nil)

// learnedpatternOption allows management of the mutation configuration using functional options.
type learnedpatternOption func(*LearnedPatternMutation)

// newLearnedPatternMutation creates new mutation for the LearnedPattern entity.
func newLearnedPatternMutation(c config, op Op, opts ...learnedpatternOption) *LearnedPatternMutation {
	m := &LearnedPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnedPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnedPatternID sets the ID field of the mutation.
func withLearnedPatternID(id string) learnedpatternOption {
	return func(m *LearnedPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnedPattern
		)
		m.oldValue = func(ctx context.Context) (*LearnedPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnedPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnedPattern sets the old LearnedPattern of the mutation.
func withLearnedPattern(node *LearnedPattern) learnedpatternOption {
	return func(m *LearnedPatternMutation) {
		m.oldValue = func(context.Context) (*LearnedPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnedPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnedPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearnedPattern entities.
func (m *LearnedPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnedPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnedPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnedPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternType sets the "pattern_type" field.
func (m *LearnedPatternMutation) SetPatternType(lt learnedpattern.PatternType) {
	m.pattern_type = &lt
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *LearnedPatternMutation) PatternType() (r learnedpattern.PatternType, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldPatternType(ctx context.Context) (v learnedpattern.PatternType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *LearnedPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetTriggerPattern sets the "trigger_pattern" field.
func (m *LearnedPatternMutation) SetTriggerPattern(s string) {
	m.trigger_pattern = &s
}

// TriggerPattern returns the value of the "trigger_pattern" field in the mutation.
func (m *LearnedPatternMutation) TriggerPattern() (r string, exists bool) {
	v := m.trigger_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerPattern returns the old "trigger_pattern" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldTriggerPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerPattern: %w", err)
	}
	return oldValue.TriggerPattern, nil
}

// ClearTriggerPattern clears the value of the "trigger_pattern" field.
func (m *LearnedPatternMutation) ClearTriggerPattern() {
	m.trigger_pattern = nil
	m.clearedFields[learnedpattern.FieldTriggerPattern] = struct{}{}
}

// TriggerPatternCleared returns if the "trigger_pattern" field was cleared in this mutation.
func (m *LearnedPatternMutation) TriggerPatternCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldTriggerPattern]
	return ok
}

// ResetTriggerPattern resets all changes to the "trigger_pattern" field.
func (m *LearnedPatternMutation) ResetTriggerPattern() {
	m.trigger_pattern = nil
	delete(m.clearedFields, learnedpattern.FieldTriggerPattern)
}

// SetDescription sets the "description" field.
func (m *LearnedPatternMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LearnedPatternMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *LearnedPatternMutation) ResetDescription() {
	m.description = nil
}

// SetSolution sets the "solution" field.
func (m *LearnedPatternMutation) SetSolution(s string) {
	m.solution = &s
}

// Solution returns the value of the "solution" field in the mutation.
func (m *LearnedPatternMutation) Solution() (r string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolution returns the old "solution" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldSolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolution: %w", err)
	}
	return oldValue.Solution, nil
}

// ClearSolution clears the value of the "solution" field.
func (m *LearnedPatternMutation) ClearSolution() {
	m.solution = nil
	m.clearedFields[learnedpattern.FieldSolution] = struct{}{}
}

// SolutionCleared returns if the "solution" field was cleared in this mutation.
func (m *LearnedPatternMutation) SolutionCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldSolution]
	return ok
}

// ResetSolution resets all changes to the "solution" field.
func (m *LearnedPatternMutation) ResetSolution() {
	m.solution = nil
	delete(m.clearedFields, learnedpattern.FieldSolution)
}

// SetExamples sets the "examples" field.
func (m *LearnedPatternMutation) SetExamples(s []string) {
	m.examples = &s
	m.appendexamples = nil
}

// Examples returns the value of the "examples" field in the mutation.
func (m *LearnedPatternMutation) Examples() (r []string, exists bool) {
	v := m.examples
	if v == nil {
		return
	}
	return *v, true
}

// OldExamples returns the old "examples" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldExamples(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamples: %w", err)
	}
	return oldValue.Examples, nil
}

// AppendExamples adds s to the "examples" field.
func (m *LearnedPatternMutation) AppendExamples(s []string) {
	m.appendexamples = append(m.appendexamples, s...)
}

// AppendedExamples returns the list of values that were appended to the "examples" field in this mutation.
func (m *LearnedPatternMutation) AppendedExamples() ([]string, bool) {
	if len(m.appendexamples) == 0 {
		return nil, false
	}
	return m.appendexamples, true
}

// ClearExamples clears the value of the "examples" field.
func (m *LearnedPatternMutation) ClearExamples() {
	m.examples = nil
	m.appendexamples = nil
	m.clearedFields[learnedpattern.FieldExamples] = struct{}{}
}

// ExamplesCleared returns if the "examples" field was cleared in this mutation.
func (m *LearnedPatternMutation) ExamplesCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldExamples]
	return ok
}

// ResetExamples resets all changes to the "examples" field.
func (m *LearnedPatternMutation) ResetExamples() {
	m.examples = nil
	m.appendexamples = nil
	delete(m.clearedFields, learnedpattern.FieldExamples)
}

// SetRepo sets the "repo" field.
func (m *LearnedPatternMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *LearnedPatternMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldRepo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ClearRepo clears the value of the "repo" field.
func (m *LearnedPatternMutation) ClearRepo() {
	m.repo = nil
	m.clearedFields[learnedpattern.FieldRepo] = struct{}{}
}

// RepoCleared returns if the "repo" field was cleared in this mutation.
func (m *LearnedPatternMutation) RepoCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldRepo]
	return ok
}

// ResetRepo resets all changes to the "repo" field.
func (m *LearnedPatternMutation) ResetRepo() {
	m.repo = nil
	delete(m.clearedFields, learnedpattern.FieldRepo)
}

// SetLanguage sets the "language" field.
func (m *LearnedPatternMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *LearnedPatternMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *LearnedPatternMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[learnedpattern.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *LearnedPatternMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *LearnedPatternMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, learnedpattern.FieldLanguage)
}

// SetFilePattern sets the "file_pattern" field.
func (m *LearnedPatternMutation) SetFilePattern(s string) {
	m.file_pattern = &s
}

// FilePattern returns the value of the "file_pattern" field in the mutation.
func (m *LearnedPatternMutation) FilePattern() (r string, exists bool) {
	v := m.file_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePattern returns the old "file_pattern" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldFilePattern(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePattern: %w", err)
	}
	return oldValue.FilePattern, nil
}

// ClearFilePattern clears the value of the "file_pattern" field.
func (m *LearnedPatternMutation) ClearFilePattern() {
	m.file_pattern = nil
	m.clearedFields[learnedpattern.FieldFilePattern] = struct{}{}
}

// FilePatternCleared returns if the "file_pattern" field was cleared in this mutation.
func (m *LearnedPatternMutation) FilePatternCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldFilePattern]
	return ok
}

// ResetFilePattern resets all changes to the "file_pattern" field.
func (m *LearnedPatternMutation) ResetFilePattern() {
	m.file_pattern = nil
	delete(m.clearedFields, learnedpattern.FieldFilePattern)
}

// SetTaskID sets the "task_id" field.
func (m *LearnedPatternMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *LearnedPatternMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *LearnedPatternMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[learnedpattern.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *LearnedPatternMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *LearnedPatternMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, learnedpattern.FieldTaskID)
}

// SetConfidence sets the "confidence" field.
func (m *LearnedPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LearnedPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LearnedPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LearnedPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LearnedPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *LearnedPatternMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *LearnedPatternMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *LearnedPatternMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *LearnedPatternMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *LearnedPatternMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *LearnedPatternMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *LearnedPatternMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *LearnedPatternMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *LearnedPatternMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *LearnedPatternMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetEmbedding sets the "embedding" field.
func (m *LearnedPatternMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *LearnedPatternMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *LearnedPatternMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *LearnedPatternMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *LearnedPatternMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[learnedpattern.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *LearnedPatternMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[learnedpattern.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *LearnedPatternMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, learnedpattern.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnedPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnedPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnedPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnedPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnedPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnedPattern entity.
// If the LearnedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnedPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnedPatternMutation builder.
func (m *LearnedPatternMutation) Where(ps ...predicate.LearnedPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnedPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnedPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnedPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnedPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnedPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnedPattern).
func (m *LearnedPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnedPatternMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.pattern_type != nil {
		fields = append(fields, learnedpattern.FieldPatternType)
	}
	if m.trigger_pattern != nil {
		fields = append(fields, learnedpattern.FieldTriggerPattern)
	}
	if m.description != nil {
		fields = append(fields, learnedpattern.FieldDescription)
	}
	if m.solution != nil {
		fields = append(fields, learnedpattern.FieldSolution)
	}
	if m.examples != nil {
		fields = append(fields, learnedpattern.FieldExamples)
	}
	if m.repo != nil {
		fields = append(fields, learnedpattern.FieldRepo)
	}
	if m.language != nil {
		fields = append(fields, learnedpattern.FieldLanguage)
	}
	if m.file_pattern != nil {
		fields = append(fields, learnedpattern.FieldFilePattern)
	}
	if m.task_id != nil {
		fields = append(fields, learnedpattern.FieldTaskID)
	}
	if m.confidence != nil {
		fields = append(fields, learnedpattern.FieldConfidence)
	}
	if m.success_count != nil {
		fields = append(fields, learnedpattern.FieldSuccessCount)
	}
	if m.failure_count != nil {
		fields = append(fields, learnedpattern.FieldFailureCount)
	}
	if m.embedding != nil {
		fields = append(fields, learnedpattern.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, learnedpattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learnedpattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnedPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnedpattern.FieldPatternType:
		return m.PatternType()
	case learnedpattern.FieldTriggerPattern:
		return m.TriggerPattern()
	case learnedpattern.FieldDescription:
		return m.Description()
	case learnedpattern.FieldSolution:
		return m.Solution()
	case learnedpattern.FieldExamples:
		return m.Examples()
	case learnedpattern.FieldRepo:
		return m.Repo()
	case learnedpattern.FieldLanguage:
		return m.Language()
	case learnedpattern.FieldFilePattern:
		return m.FilePattern()
	case learnedpattern.FieldTaskID:
		return m.TaskID()
	case learnedpattern.FieldConfidence:
		return m.Confidence()
	case learnedpattern.FieldSuccessCount:
		return m.SuccessCount()
	case learnedpattern.FieldFailureCount:
		return m.FailureCount()
	case learnedpattern.FieldEmbedding:
		return m.Embedding()
	case learnedpattern.FieldCreatedAt:
		return m.CreatedAt()
	case learnedpattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnedPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnedpattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case learnedpattern.FieldTriggerPattern:
		return m.OldTriggerPattern(ctx)
	case learnedpattern.FieldDescription:
		return m.OldDescription(ctx)
	case learnedpattern.FieldSolution:
		return m.OldSolution(ctx)
	case learnedpattern.FieldExamples:
		return m.OldExamples(ctx)
	case learnedpattern.FieldRepo:
		return m.OldRepo(ctx)
	case learnedpattern.FieldLanguage:
		return m.OldLanguage(ctx)
	case learnedpattern.FieldFilePattern:
		return m.OldFilePattern(ctx)
	case learnedpattern.FieldTaskID:
		return m.OldTaskID(ctx)
	case learnedpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case learnedpattern.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case learnedpattern.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case learnedpattern.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case learnedpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learnedpattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnedPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnedpattern.FieldPatternType:
		v, ok := value.(learnedpattern.PatternType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case learnedpattern.FieldTriggerPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerPattern(v)
		return nil
	case learnedpattern.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case learnedpattern.FieldSolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolution(v)
		return nil
	case learnedpattern.FieldExamples:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamples(v)
		return nil
	case learnedpattern.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case learnedpattern.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case learnedpattern.FieldFilePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePattern(v)
		return nil
	case learnedpattern.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case learnedpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case learnedpattern.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case learnedpattern.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case learnedpattern.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case learnedpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learnedpattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnedPatternMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, learnedpattern.FieldConfidence)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, learnedpattern.FieldSuccessCount)
	}
	if m.addfailure_count != nil {
		fields = append(fields, learnedpattern.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnedPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnedpattern.FieldConfidence:
		return m.AddedConfidence()
	case learnedpattern.FieldSuccessCount:
		return m.AddedSuccessCount()
	case learnedpattern.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnedpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case learnedpattern.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case learnedpattern.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnedPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnedpattern.FieldTriggerPattern) {
		fields = append(fields, learnedpattern.FieldTriggerPattern)
	}
	if m.FieldCleared(learnedpattern.FieldSolution) {
		fields = append(fields, learnedpattern.FieldSolution)
	}
	if m.FieldCleared(learnedpattern.FieldExamples) {
		fields = append(fields, learnedpattern.FieldExamples)
	}
	if m.FieldCleared(learnedpattern.FieldRepo) {
		fields = append(fields, learnedpattern.FieldRepo)
	}
	if m.FieldCleared(learnedpattern.FieldLanguage) {
		fields = append(fields, learnedpattern.FieldLanguage)
	}
	if m.FieldCleared(learnedpattern.FieldFilePattern) {
		fields = append(fields, learnedpattern.FieldFilePattern)
	}
	if m.FieldCleared(learnedpattern.FieldTaskID) {
		fields = append(fields, learnedpattern.FieldTaskID)
	}
	if m.FieldCleared(learnedpattern.FieldEmbedding) {
		fields = append(fields, learnedpattern.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnedPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnedPatternMutation) ClearField(name string) error {
	switch name {
	case learnedpattern.FieldTriggerPattern:
		m.ClearTriggerPattern()
		return nil
	case learnedpattern.FieldSolution:
		m.ClearSolution()
		return nil
	case learnedpattern.FieldExamples:
		m.ClearExamples()
		return nil
	case learnedpattern.FieldRepo:
		m.ClearRepo()
		return nil
	case learnedpattern.FieldLanguage:
		m.ClearLanguage()
		return nil
	case learnedpattern.FieldFilePattern:
		m.ClearFilePattern()
		return nil
	case learnedpattern.FieldTaskID:
		m.ClearTaskID()
		return nil
	case learnedpattern.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnedPatternMutation) ResetField(name string) error {
	switch name {
	case learnedpattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case learnedpattern.FieldTriggerPattern:
		m.ResetTriggerPattern()
		return nil
	case learnedpattern.FieldDescription:
		m.ResetDescription()
		return nil
	case learnedpattern.FieldSolution:
		m.ResetSolution()
		return nil
	case learnedpattern.FieldExamples:
		m.ResetExamples()
		return nil
	case learnedpattern.FieldRepo:
		m.ResetRepo()
		return nil
	case learnedpattern.FieldLanguage:
		m.ResetLanguage()
		return nil
	case learnedpattern.FieldFilePattern:
		m.ResetFilePattern()
		return nil
	case learnedpattern.FieldTaskID:
		m.ResetTaskID()
		return nil
	case learnedpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case learnedpattern.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case learnedpattern.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case learnedpattern.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case learnedpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learnedpattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnedPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnedPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnedPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnedPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnedPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnedPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnedPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnedPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnedPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnedPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnedPattern edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op               Op
	typ              string
	id               *string
	purpose          *modelconfig.Purpose
	provider         *string
	model            *string
	max_tokens       *int
	addmax_tokens    *int
	temperature      *float64
	addtemperature   *float64
	reasoning_effort *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ModelConfig, error)
	predicates       []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id string) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfig entities.
func (m *ModelConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPurpose sets the "purpose" field.
func (m *ModelConfigMutation) SetPurpose(value modelconfig.Purpose) {
	m.purpose = &value
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *ModelConfigMutation) Purpose() (r modelconfig.Purpose, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldPurpose(ctx context.Context) (v modelconfig.Purpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *ModelConfigMutation) ResetPurpose() {
	m.purpose = nil
}

// SetProvider sets the "provider" field.
func (m *ModelConfigMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelConfigMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *ModelConfigMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ModelConfigMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ModelConfigMutation) ResetModel() {
	m.model = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *ModelConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *ModelConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *ModelConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *ModelConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *ModelConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetTemperature sets the "temperature" field.
func (m *ModelConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ModelConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ModelConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ModelConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ModelConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetReasoningEffort sets the "reasoning_effort" field.
func (m *ModelConfigMutation) SetReasoningEffort(s string) {
	m.reasoning_effort = &s
}

// ReasoningEffort returns the value of the "reasoning_effort" field in the mutation.
func (m *ModelConfigMutation) ReasoningEffort() (r string, exists bool) {
	v := m.reasoning_effort
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningEffort returns the old "reasoning_effort" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldReasoningEffort(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningEffort: %w", err)
	}
	return oldValue.ReasoningEffort, nil
}

// ClearReasoningEffort clears the value of the "reasoning_effort" field.
func (m *ModelConfigMutation) ClearReasoningEffort() {
	m.reasoning_effort = nil
	m.clearedFields[modelconfig.FieldReasoningEffort] = struct{}{}
}

// ReasoningEffortCleared returns if the "reasoning_effort" field was cleared in this mutation.
func (m *ModelConfigMutation) ReasoningEffortCleared() bool {
	_, ok := m.clearedFields[modelconfig.FieldReasoningEffort]
	return ok
}

// ResetReasoningEffort resets all changes to the "reasoning_effort" field.
func (m *ModelConfigMutation) ResetReasoningEffort() {
	m.reasoning_effort = nil
	delete(m.clearedFields, modelconfig.FieldReasoningEffort)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.purpose != nil {
		fields = append(fields, modelconfig.FieldPurpose)
	}
	if m.provider != nil {
		fields = append(fields, modelconfig.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, modelconfig.FieldModel)
	}
	if m.max_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.temperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	if m.reasoning_effort != nil {
		fields = append(fields, modelconfig.FieldReasoningEffort)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldPurpose:
		return m.Purpose()
	case modelconfig.FieldProvider:
		return m.Provider()
	case modelconfig.FieldModel:
		return m.Model()
	case modelconfig.FieldMaxTokens:
		return m.MaxTokens()
	case modelconfig.FieldTemperature:
		return m.Temperature()
	case modelconfig.FieldReasoningEffort:
		return m.ReasoningEffort()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	case modelconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldPurpose:
		return m.OldPurpose(ctx)
	case modelconfig.FieldProvider:
		return m.OldProvider(ctx)
	case modelconfig.FieldModel:
		return m.OldModel(ctx)
	case modelconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case modelconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case modelconfig.FieldReasoningEffort:
		return m.OldReasoningEffort(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldPurpose:
		v, ok := value.(modelconfig.Purpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case modelconfig.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelconfig.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case modelconfig.FieldReasoningEffort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningEffort(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	var fields []string
	if m.addmax_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.addtemperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	case modelconfig.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfig.FieldReasoningEffort) {
		fields = append(fields, modelconfig.FieldReasoningEffort)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	switch name {
	case modelconfig.FieldReasoningEffort:
		m.ClearReasoningEffort()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldPurpose:
		m.ResetPurpose()
		return nil
	case modelconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case modelconfig.FieldModel:
		m.ResetModel()
		return nil
	case modelconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case modelconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case modelconfig.FieldReasoningEffort:
		m.ResetReasoningEffort()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// ModelConfigAuditMutation represents an operation that mutates the ModelConfigAudit nodes in the graph.
type ModelConfigAuditMutation struct {
	config
	op            Op
	typ           string
	id            *string
	purpose       *string
	previous      *map[string]interface{}
	current       *map[string]interface{}
	changed_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ModelConfigAudit, error)
	predicates    []predicate.ModelConfigAudit
}

var _ ent.Mutation = (*ModelConfigAuditMutation)(nil)

// modelconfigauditOption allows management of the mutation configuration using functional options.
type modelconfigauditOption func(*ModelConfigAuditMutation)

// newModelConfigAuditMutation creates new mutation for the ModelConfigAudit entity.
func newModelConfigAuditMutation(c config, op Op, opts ...modelconfigauditOption) *ModelConfigAuditMutation {
	m := &ModelConfigAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfigAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigAuditID sets the ID field of the mutation.
func withModelConfigAuditID(id string) modelconfigauditOption {
	return func(m *ModelConfigAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfigAudit
		)
		m.oldValue = func(ctx context.Context) (*ModelConfigAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfigAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfigAudit sets the old ModelConfigAudit of the mutation.
func withModelConfigAudit(node *ModelConfigAudit) modelconfigauditOption {
	return func(m *ModelConfigAuditMutation) {
		m.oldValue = func(context.Context) (*ModelConfigAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfigAudit entities.
func (m *ModelConfigAuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigAuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigAuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfigAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPurpose sets the "purpose" field.
func (m *ModelConfigAuditMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *ModelConfigAuditMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *ModelConfigAuditMutation) ResetPurpose() {
	m.purpose = nil
}

// SetPrevious sets the "previous" field.
func (m *ModelConfigAuditMutation) SetPrevious(value map[string]interface{}) {
	m.previous = &value
}

// Previous returns the value of the "previous" field in the mutation.
func (m *ModelConfigAuditMutation) Previous() (r map[string]interface{}, exists bool) {
	v := m.previous
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevious returns the old "previous" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldPrevious(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevious is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevious requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevious: %w", err)
	}
	return oldValue.Previous, nil
}

// ClearPrevious clears the value of the "previous" field.
func (m *ModelConfigAuditMutation) ClearPrevious() {
	m.previous = nil
	m.clearedFields[modelconfigaudit.FieldPrevious] = struct{}{}
}

// PreviousCleared returns if the "previous" field was cleared in this mutation.
func (m *ModelConfigAuditMutation) PreviousCleared() bool {
	_, ok := m.clearedFields[modelconfigaudit.FieldPrevious]
	return ok
}

// ResetPrevious resets all changes to the "previous" field.
func (m *ModelConfigAuditMutation) ResetPrevious() {
	m.previous = nil
	delete(m.clearedFields, modelconfigaudit.FieldPrevious)
}

// SetCurrent sets the "current" field.
func (m *ModelConfigAuditMutation) SetCurrent(value map[string]interface{}) {
	m.current = &value
}

// Current returns the value of the "current" field in the mutation.
func (m *ModelConfigAuditMutation) Current() (r map[string]interface{}, exists bool) {
	v := m.current
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrent returns the old "current" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldCurrent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrent: %w", err)
	}
	return oldValue.Current, nil
}

// ResetCurrent resets all changes to the "current" field.
func (m *ModelConfigAuditMutation) ResetCurrent() {
	m.current = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *ModelConfigAuditMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *ModelConfigAuditMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ClearChangedBy clears the value of the "changed_by" field.
func (m *ModelConfigAuditMutation) ClearChangedBy() {
	m.changed_by = nil
	m.clearedFields[modelconfigaudit.FieldChangedBy] = struct{}{}
}

// ChangedByCleared returns if the "changed_by" field was cleared in this mutation.
func (m *ModelConfigAuditMutation) ChangedByCleared() bool {
	_, ok := m.clearedFields[modelconfigaudit.FieldChangedBy]
	return ok
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *ModelConfigAuditMutation) ResetChangedBy() {
	m.changed_by = nil
	delete(m.clearedFields, modelconfigaudit.FieldChangedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfigAudit entity.
// If the ModelConfigAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelConfigAuditMutation builder.
func (m *ModelConfigAuditMutation) Where(ps ...predicate.ModelConfigAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfigAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfigAudit).
func (m *ModelConfigAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigAuditMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.purpose != nil {
		fields = append(fields, modelconfigaudit.FieldPurpose)
	}
	if m.previous != nil {
		fields = append(fields, modelconfigaudit.FieldPrevious)
	}
	if m.current != nil {
		fields = append(fields, modelconfigaudit.FieldCurrent)
	}
	if m.changed_by != nil {
		fields = append(fields, modelconfigaudit.FieldChangedBy)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfigaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfigaudit.FieldPurpose:
		return m.Purpose()
	case modelconfigaudit.FieldPrevious:
		return m.Previous()
	case modelconfigaudit.FieldCurrent:
		return m.Current()
	case modelconfigaudit.FieldChangedBy:
		return m.ChangedBy()
	case modelconfigaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfigaudit.FieldPurpose:
		return m.OldPurpose(ctx)
	case modelconfigaudit.FieldPrevious:
		return m.OldPrevious(ctx)
	case modelconfigaudit.FieldCurrent:
		return m.OldCurrent(ctx)
	case modelconfigaudit.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case modelconfigaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfigaudit.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case modelconfigaudit.FieldPrevious:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevious(v)
		return nil
	case modelconfigaudit.FieldCurrent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrent(v)
		return nil
	case modelconfigaudit.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case modelconfigaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelConfigAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfigaudit.FieldPrevious) {
		fields = append(fields, modelconfigaudit.FieldPrevious)
	}
	if m.FieldCleared(modelconfigaudit.FieldChangedBy) {
		fields = append(fields, modelconfigaudit.FieldChangedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigAuditMutation) ClearField(name string) error {
	switch name {
	case modelconfigaudit.FieldPrevious:
		m.ClearPrevious()
		return nil
	case modelconfigaudit.FieldChangedBy:
		m.ClearChangedBy()
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigAuditMutation) ResetField(name string) error {
	switch name {
	case modelconfigaudit.FieldPurpose:
		m.ResetPurpose()
		return nil
	case modelconfigaudit.FieldPrevious:
		m.ResetPrevious()
		return nil
	case modelconfigaudit.FieldCurrent:
		m.ResetCurrent()
		return nil
	case modelconfigaudit.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case modelconfigaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfigAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfigAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfigAudit edge %s", name)
}

// ObservationMutation represents an operation that mutates the Observation nodes in the graph.
type ObservationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	task_id         *string
	sequence        *int
	addsequence     *int
	_type           *observation.Type
	agent           *string
	tool            *string
	full_content    *string
	summary         *string
	tokens_used     *int
	addtokens_used  *int
	duration_ms     *int64
	addduration_ms  *int64
	tags            *[]string
	appendtags      []string
	file_refs       *[]string
	appendfile_refs []string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Observation, error)
	predicates      []predicate.Observation
}

var _ ent.Mutation = (*ObservationMutation)(nil)

// observationOption allows management of the mutation configuration using functional options.
type observationOption func(*ObservationMutation)

// newObservationMutation creates new mutation for the Observation entity.
func newObservationMutation(c config, op Op, opts ...observationOption) *ObservationMutation {
	m := &ObservationMutation{
		config:        c,
		op:            op,
		typ:           TypeObservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObservationID sets the ID field of the mutation.
func withObservationID(id string) observationOption {
	return func(m *ObservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Observation
		)
		m.oldValue = func(ctx context.Context) (*Observation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Observation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObservation sets the old Observation of the mutation.
func withObservation(node *Observation) observationOption {
	return func(m *ObservationMutation) {
		m.oldValue = func(context.Context) (*Observation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Observation entities.
func (m *ObservationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObservationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObservationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Observation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ObservationMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ObservationMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ObservationMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSequence sets the "sequence" field.
func (m *ObservationMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ObservationMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ObservationMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ObservationMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ObservationMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetType sets the "type" field.
func (m *ObservationMutation) SetType(o observation.Type) {
	m._type = &o
}

// GetType returns the value of the "type" field in the mutation.
func (m *ObservationMutation) GetType() (r observation.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldType(ctx context.Context) (v observation.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ObservationMutation) ResetType() {
	m._type = nil
}

// SetAgent sets the "agent" field.
func (m *ObservationMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *ObservationMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *ObservationMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[observation.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *ObservationMutation) AgentCleared() bool {
	_, ok := m.clearedFields[observation.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *ObservationMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, observation.FieldAgent)
}

// SetTool sets the "tool" field.
func (m *ObservationMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *ObservationMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldTool(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ClearTool clears the value of the "tool" field.
func (m *ObservationMutation) ClearTool() {
	m.tool = nil
	m.clearedFields[observation.FieldTool] = struct{}{}
}

// ToolCleared returns if the "tool" field was cleared in this mutation.
func (m *ObservationMutation) ToolCleared() bool {
	_, ok := m.clearedFields[observation.FieldTool]
	return ok
}

// ResetTool resets all changes to the "tool" field.
func (m *ObservationMutation) ResetTool() {
	m.tool = nil
	delete(m.clearedFields, observation.FieldTool)
}

// SetFullContent sets the "full_content" field.
func (m *ObservationMutation) SetFullContent(s string) {
	m.full_content = &s
}

// FullContent returns the value of the "full_content" field in the mutation.
func (m *ObservationMutation) FullContent() (r string, exists bool) {
	v := m.full_content
	if v == nil {
		return
	}
	return *v, true
}

// OldFullContent returns the old "full_content" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldFullContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullContent: %w", err)
	}
	return oldValue.FullContent, nil
}

// ResetFullContent resets all changes to the "full_content" field.
func (m *ObservationMutation) ResetFullContent() {
	m.full_content = nil
}

// SetSummary sets the "summary" field.
func (m *ObservationMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ObservationMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ObservationMutation) ResetSummary() {
	m.summary = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ObservationMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ObservationMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldTokensUsed(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ObservationMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ObservationMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *ObservationMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[observation.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *ObservationMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[observation.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ObservationMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, observation.FieldTokensUsed)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ObservationMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ObservationMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ObservationMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ObservationMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ObservationMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[observation.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ObservationMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[observation.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ObservationMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, observation.FieldDurationMs)
}

// SetTags sets the "tags" field.
func (m *ObservationMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ObservationMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ObservationMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ObservationMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ObservationMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[observation.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ObservationMutation) TagsCleared() bool {
	_, ok := m.clearedFields[observation.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ObservationMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, observation.FieldTags)
}

// SetFileRefs sets the "file_refs" field.
func (m *ObservationMutation) SetFileRefs(s []string) {
	m.file_refs = &s
	m.appendfile_refs = nil
}

// FileRefs returns the value of the "file_refs" field in the mutation.
func (m *ObservationMutation) FileRefs() (r []string, exists bool) {
	v := m.file_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldFileRefs returns the old "file_refs" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldFileRefs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileRefs: %w", err)
	}
	return oldValue.FileRefs, nil
}

// AppendFileRefs adds s to the "file_refs" field.
func (m *ObservationMutation) AppendFileRefs(s []string) {
	m.appendfile_refs = append(m.appendfile_refs, s...)
}

// AppendedFileRefs returns the list of values that were appended to the "file_refs" field in this mutation.
func (m *ObservationMutation) AppendedFileRefs() ([]string, bool) {
	if len(m.appendfile_refs) == 0 {
		return nil, false
	}
	return m.appendfile_refs, true
}

// ClearFileRefs clears the value of the "file_refs" field.
func (m *ObservationMutation) ClearFileRefs() {
	m.file_refs = nil
	m.appendfile_refs = nil
	m.clearedFields[observation.FieldFileRefs] = struct{}{}
}

// FileRefsCleared returns if the "file_refs" field was cleared in this mutation.
func (m *ObservationMutation) FileRefsCleared() bool {
	_, ok := m.clearedFields[observation.FieldFileRefs]
	return ok
}

// ResetFileRefs resets all changes to the "file_refs" field.
func (m *ObservationMutation) ResetFileRefs() {
	m.file_refs = nil
	m.appendfile_refs = nil
	delete(m.clearedFields, observation.FieldFileRefs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ObservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ObservationMutation builder.
func (m *ObservationMutation) Where(ps ...predicate.Observation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Observation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Observation).
func (m *ObservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObservationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task_id != nil {
		fields = append(fields, observation.FieldTaskID)
	}
	if m.sequence != nil {
		fields = append(fields, observation.FieldSequence)
	}
	if m._type != nil {
		fields = append(fields, observation.FieldType)
	}
	if m.agent != nil {
		fields = append(fields, observation.FieldAgent)
	}
	if m.tool != nil {
		fields = append(fields, observation.FieldTool)
	}
	if m.full_content != nil {
		fields = append(fields, observation.FieldFullContent)
	}
	if m.summary != nil {
		fields = append(fields, observation.FieldSummary)
	}
	if m.tokens_used != nil {
		fields = append(fields, observation.FieldTokensUsed)
	}
	if m.duration_ms != nil {
		fields = append(fields, observation.FieldDurationMs)
	}
	if m.tags != nil {
		fields = append(fields, observation.FieldTags)
	}
	if m.file_refs != nil {
		fields = append(fields, observation.FieldFileRefs)
	}
	if m.created_at != nil {
		fields = append(fields, observation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case observation.FieldTaskID:
		return m.TaskID()
	case observation.FieldSequence:
		return m.Sequence()
	case observation.FieldType:
		return m.GetType()
	case observation.FieldAgent:
		return m.Agent()
	case observation.FieldTool:
		return m.Tool()
	case observation.FieldFullContent:
		return m.FullContent()
	case observation.FieldSummary:
		return m.Summary()
	case observation.FieldTokensUsed:
		return m.TokensUsed()
	case observation.FieldDurationMs:
		return m.DurationMs()
	case observation.FieldTags:
		return m.Tags()
	case observation.FieldFileRefs:
		return m.FileRefs()
	case observation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case observation.FieldTaskID:
		return m.OldTaskID(ctx)
	case observation.FieldSequence:
		return m.OldSequence(ctx)
	case observation.FieldType:
		return m.OldType(ctx)
	case observation.FieldAgent:
		return m.OldAgent(ctx)
	case observation.FieldTool:
		return m.OldTool(ctx)
	case observation.FieldFullContent:
		return m.OldFullContent(ctx)
	case observation.FieldSummary:
		return m.OldSummary(ctx)
	case observation.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case observation.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case observation.FieldTags:
		return m.OldTags(ctx)
	case observation.FieldFileRefs:
		return m.OldFileRefs(ctx)
	case observation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Observation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case observation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case observation.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case observation.FieldType:
		v, ok := value.(observation.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case observation.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case observation.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case observation.FieldFullContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullContent(v)
		return nil
	case observation.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case observation.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case observation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case observation.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case observation.FieldFileRefs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileRefs(v)
		return nil
	case observation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Observation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObservationMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, observation.FieldSequence)
	}
	if m.addtokens_used != nil {
		fields = append(fields, observation.FieldTokensUsed)
	}
	if m.addduration_ms != nil {
		fields = append(fields, observation.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case observation.FieldSequence:
		return m.AddedSequence()
	case observation.FieldTokensUsed:
		return m.AddedTokensUsed()
	case observation.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case observation.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case observation.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case observation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Observation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(observation.FieldAgent) {
		fields = append(fields, observation.FieldAgent)
	}
	if m.FieldCleared(observation.FieldTool) {
		fields = append(fields, observation.FieldTool)
	}
	if m.FieldCleared(observation.FieldTokensUsed) {
		fields = append(fields, observation.FieldTokensUsed)
	}
	if m.FieldCleared(observation.FieldDurationMs) {
		fields = append(fields, observation.FieldDurationMs)
	}
	if m.FieldCleared(observation.FieldTags) {
		fields = append(fields, observation.FieldTags)
	}
	if m.FieldCleared(observation.FieldFileRefs) {
		fields = append(fields, observation.FieldFileRefs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObservationMutation) ClearField(name string) error {
	switch name {
	case observation.FieldAgent:
		m.ClearAgent()
		return nil
	case observation.FieldTool:
		m.ClearTool()
		return nil
	case observation.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	case observation.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case observation.FieldTags:
		m.ClearTags()
		return nil
	case observation.FieldFileRefs:
		m.ClearFileRefs()
		return nil
	}
	return fmt.Errorf("unknown Observation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObservationMutation) ResetField(name string) error {
	switch name {
	case observation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case observation.FieldSequence:
		m.ResetSequence()
		return nil
	case observation.FieldType:
		m.ResetType()
		return nil
	case observation.FieldAgent:
		m.ResetAgent()
		return nil
	case observation.FieldTool:
		m.ResetTool()
		return nil
	case observation.FieldFullContent:
		m.ResetFullContent()
		return nil
	case observation.FieldSummary:
		m.ResetSummary()
		return nil
	case observation.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case observation.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case observation.FieldTags:
		m.ResetTags()
		return nil
	case observation.FieldFileRefs:
		m.ResetFileRefs()
		return nil
	case observation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Observation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Observation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Observation edge %s", name)
}

// PatchMutation represents an operation that mutates the Patch nodes in the graph.
type PatchMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	task_id              *string
	attempt              *int
	addattempt           *int
	source               *string
	format               *string
	diff                 *string
	files_modified       *[]string
	appendfiles_modified []string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Patch, error)
	predicates           []predicate.Patch
}

var _ ent.Mutation = (*PatchMutation)(nil)

// patchOption allows management of the mutation configuration using functional options.
type patchOption func(*PatchMutation)

// newPatchMutation creates new mutation for the Patch entity.
func newPatchMutation(c config, op Op, opts ...patchOption) *PatchMutation {
	m := &PatchMutation{
		config:        c,
		op:            op,
		typ:           TypePatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatchID sets the ID field of the mutation.
func withPatchID(id string) patchOption {
	return func(m *PatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Patch
		)
		m.oldValue = func(ctx context.Context) (*Patch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatch sets the old Patch of the mutation.
func withPatch(node *Patch) patchOption {
	return func(m *PatchMutation) {
		m.oldValue = func(context.Context) (*Patch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patch entities.
func (m *PatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PatchMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PatchMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PatchMutation) ResetTaskID() {
	m.task_id = nil
}

// SetAttempt sets the "attempt" field.
func (m *PatchMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PatchMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PatchMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PatchMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PatchMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetSource sets the "source" field.
func (m *PatchMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PatchMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PatchMutation) ResetSource() {
	m.source = nil
}

// SetFormat sets the "format" field.
func (m *PatchMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *PatchMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *PatchMutation) ResetFormat() {
	m.format = nil
}

// SetDiff sets the "diff" field.
func (m *PatchMutation) SetDiff(s string) {
	m.diff = &s
}

// Diff returns the value of the "diff" field in the mutation.
func (m *PatchMutation) Diff() (r string, exists bool) {
	v := m.diff
	if v == nil {
		return
	}
	return *v, true
}

// OldDiff returns the old "diff" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiff: %w", err)
	}
	return oldValue.Diff, nil
}

// ResetDiff resets all changes to the "diff" field.
func (m *PatchMutation) ResetDiff() {
	m.diff = nil
}

// SetFilesModified sets the "files_modified" field.
func (m *PatchMutation) SetFilesModified(s []string) {
	m.files_modified = &s
	m.appendfiles_modified = nil
}

// FilesModified returns the value of the "files_modified" field in the mutation.
func (m *PatchMutation) FilesModified() (r []string, exists bool) {
	v := m.files_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesModified returns the old "files_modified" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldFilesModified(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesModified: %w", err)
	}
	return oldValue.FilesModified, nil
}

// AppendFilesModified adds s to the "files_modified" field.
func (m *PatchMutation) AppendFilesModified(s []string) {
	m.appendfiles_modified = append(m.appendfiles_modified, s...)
}

// AppendedFilesModified returns the list of values that were appended to the "files_modified" field in this mutation.
func (m *PatchMutation) AppendedFilesModified() ([]string, bool) {
	if len(m.appendfiles_modified) == 0 {
		return nil, false
	}
	return m.appendfiles_modified, true
}

// ClearFilesModified clears the value of the "files_modified" field.
func (m *PatchMutation) ClearFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	m.clearedFields[patch.FieldFilesModified] = struct{}{}
}

// FilesModifiedCleared returns if the "files_modified" field was cleared in this mutation.
func (m *PatchMutation) FilesModifiedCleared() bool {
	_, ok := m.clearedFields[patch.FieldFilesModified]
	return ok
}

// ResetFilesModified resets all changes to the "files_modified" field.
func (m *PatchMutation) ResetFilesModified() {
	m.files_modified = nil
	m.appendfiles_modified = nil
	delete(m.clearedFields, patch.FieldFilesModified)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patch entity.
// If the Patch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PatchMutation builder.
func (m *PatchMutation) Where(ps ...predicate.Patch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patch).
func (m *PatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task_id != nil {
		fields = append(fields, patch.FieldTaskID)
	}
	if m.attempt != nil {
		fields = append(fields, patch.FieldAttempt)
	}
	if m.source != nil {
		fields = append(fields, patch.FieldSource)
	}
	if m.format != nil {
		fields = append(fields, patch.FieldFormat)
	}
	if m.diff != nil {
		fields = append(fields, patch.FieldDiff)
	}
	if m.files_modified != nil {
		fields = append(fields, patch.FieldFilesModified)
	}
	if m.created_at != nil {
		fields = append(fields, patch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patch.FieldTaskID:
		return m.TaskID()
	case patch.FieldAttempt:
		return m.Attempt()
	case patch.FieldSource:
		return m.Source()
	case patch.FieldFormat:
		return m.Format()
	case patch.FieldDiff:
		return m.Diff()
	case patch.FieldFilesModified:
		return m.FilesModified()
	case patch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patch.FieldTaskID:
		return m.OldTaskID(ctx)
	case patch.FieldAttempt:
		return m.OldAttempt(ctx)
	case patch.FieldSource:
		return m.OldSource(ctx)
	case patch.FieldFormat:
		return m.OldFormat(ctx)
	case patch.FieldDiff:
		return m.OldDiff(ctx)
	case patch.FieldFilesModified:
		return m.OldFilesModified(ctx)
	case patch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patch.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case patch.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case patch.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case patch.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case patch.FieldDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiff(v)
		return nil
	case patch.FieldFilesModified:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesModified(v)
		return nil
	case patch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatchMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, patch.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patch.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patch.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Patch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patch.FieldFilesModified) {
		fields = append(fields, patch.FieldFilesModified)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatchMutation) ClearField(name string) error {
	switch name {
	case patch.FieldFilesModified:
		m.ClearFilesModified()
		return nil
	}
	return fmt.Errorf("unknown Patch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatchMutation) ResetField(name string) error {
	switch name {
	case patch.FieldTaskID:
		m.ResetTaskID()
		return nil
	case patch.FieldAttempt:
		m.ResetAttempt()
		return nil
	case patch.FieldSource:
		m.ResetSource()
		return nil
	case patch.FieldFormat:
		m.ResetFormat()
		return nil
	case patch.FieldDiff:
		m.ResetDiff()
		return nil
	case patch.FieldFilesModified:
		m.ResetFilesModified()
		return nil
	case patch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Patch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Patch edge %s", name)
}

// ProgressEntryMutation represents an operation that mutates the ProgressEntry nodes in the graph.
type ProgressEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	task_id        *string
	sequence       *int
	addsequence    *int
	event_type     *string
	agent          *string
	input_summary  *string
	output_summary *string
	duration_ms    *int64
	addduration_ms *int64
	metadata       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ProgressEntry, error)
	predicates     []predicate.ProgressEntry
}

var _ ent.Mutation = (*ProgressEntryMutation)(nil)

// progressentryOption allows management of the mutation configuration using functional options.
type progressentryOption func(*ProgressEntryMutation)

// newProgressEntryMutation creates new mutation for the ProgressEntry entity.
func newProgressEntryMutation(c config, op Op, opts ...progressentryOption) *ProgressEntryMutation {
	m := &ProgressEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressEntryID sets the ID field of the mutation.
func withProgressEntryID(id string) progressentryOption {
	return func(m *ProgressEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressEntry
		)
		m.oldValue = func(ctx context.Context) (*ProgressEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressEntry sets the old ProgressEntry of the mutation.
func withProgressEntry(node *ProgressEntry) progressentryOption {
	return func(m *ProgressEntryMutation) {
		m.oldValue = func(context.Context) (*ProgressEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProgressEntry entities.
func (m *ProgressEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ProgressEntryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ProgressEntryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ProgressEntryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSequence sets the "sequence" field.
func (m *ProgressEntryMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ProgressEntryMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ProgressEntryMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ProgressEntryMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ProgressEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *ProgressEntryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ProgressEntryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ProgressEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetAgent sets the "agent" field.
func (m *ProgressEntryMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *ProgressEntryMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *ProgressEntryMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[progressentry.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *ProgressEntryMutation) AgentCleared() bool {
	_, ok := m.clearedFields[progressentry.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *ProgressEntryMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, progressentry.FieldAgent)
}

// SetInputSummary sets the "input_summary" field.
func (m *ProgressEntryMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *ProgressEntryMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ClearInputSummary clears the value of the "input_summary" field.
func (m *ProgressEntryMutation) ClearInputSummary() {
	m.input_summary = nil
	m.clearedFields[progressentry.FieldInputSummary] = struct{}{}
}

// InputSummaryCleared returns if the "input_summary" field was cleared in this mutation.
func (m *ProgressEntryMutation) InputSummaryCleared() bool {
	_, ok := m.clearedFields[progressentry.FieldInputSummary]
	return ok
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *ProgressEntryMutation) ResetInputSummary() {
	m.input_summary = nil
	delete(m.clearedFields, progressentry.FieldInputSummary)
}

// SetOutputSummary sets the "output_summary" field.
func (m *ProgressEntryMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *ProgressEntryMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *ProgressEntryMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[progressentry.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *ProgressEntryMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[progressentry.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *ProgressEntryMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, progressentry.FieldOutputSummary)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ProgressEntryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ProgressEntryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ProgressEntryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ProgressEntryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ProgressEntryMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[progressentry.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ProgressEntryMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[progressentry.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ProgressEntryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, progressentry.FieldDurationMs)
}

// SetMetadata sets the "metadata" field.
func (m *ProgressEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProgressEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProgressEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[progressentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProgressEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[progressentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProgressEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, progressentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProgressEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProgressEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProgressEntry entity.
// If the ProgressEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProgressEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProgressEntryMutation builder.
func (m *ProgressEntryMutation) Where(ps ...predicate.ProgressEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressEntry).
func (m *ProgressEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task_id != nil {
		fields = append(fields, progressentry.FieldTaskID)
	}
	if m.sequence != nil {
		fields = append(fields, progressentry.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, progressentry.FieldEventType)
	}
	if m.agent != nil {
		fields = append(fields, progressentry.FieldAgent)
	}
	if m.input_summary != nil {
		fields = append(fields, progressentry.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, progressentry.FieldOutputSummary)
	}
	if m.duration_ms != nil {
		fields = append(fields, progressentry.FieldDurationMs)
	}
	if m.metadata != nil {
		fields = append(fields, progressentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, progressentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressentry.FieldTaskID:
		return m.TaskID()
	case progressentry.FieldSequence:
		return m.Sequence()
	case progressentry.FieldEventType:
		return m.EventType()
	case progressentry.FieldAgent:
		return m.Agent()
	case progressentry.FieldInputSummary:
		return m.InputSummary()
	case progressentry.FieldOutputSummary:
		return m.OutputSummary()
	case progressentry.FieldDurationMs:
		return m.DurationMs()
	case progressentry.FieldMetadata:
		return m.Metadata()
	case progressentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case progressentry.FieldSequence:
		return m.OldSequence(ctx)
	case progressentry.FieldEventType:
		return m.OldEventType(ctx)
	case progressentry.FieldAgent:
		return m.OldAgent(ctx)
	case progressentry.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case progressentry.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case progressentry.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case progressentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case progressentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case progressentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case progressentry.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case progressentry.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case progressentry.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case progressentry.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case progressentry.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case progressentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case progressentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, progressentry.FieldSequence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, progressentry.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressentry.FieldSequence:
		return m.AddedSequence()
	case progressentry.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case progressentry.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progressentry.FieldAgent) {
		fields = append(fields, progressentry.FieldAgent)
	}
	if m.FieldCleared(progressentry.FieldInputSummary) {
		fields = append(fields, progressentry.FieldInputSummary)
	}
	if m.FieldCleared(progressentry.FieldOutputSummary) {
		fields = append(fields, progressentry.FieldOutputSummary)
	}
	if m.FieldCleared(progressentry.FieldDurationMs) {
		fields = append(fields, progressentry.FieldDurationMs)
	}
	if m.FieldCleared(progressentry.FieldMetadata) {
		fields = append(fields, progressentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressEntryMutation) ClearField(name string) error {
	switch name {
	case progressentry.FieldAgent:
		m.ClearAgent()
		return nil
	case progressentry.FieldInputSummary:
		m.ClearInputSummary()
		return nil
	case progressentry.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case progressentry.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case progressentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ProgressEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressEntryMutation) ResetField(name string) error {
	switch name {
	case progressentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case progressentry.FieldSequence:
		m.ResetSequence()
		return nil
	case progressentry.FieldEventType:
		m.ResetEventType()
		return nil
	case progressentry.FieldAgent:
		m.ResetAgent()
		return nil
	case progressentry.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case progressentry.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case progressentry.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case progressentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case progressentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressEntry edge %s", name)
}

// RepositoryMutation represents an operation that mutates the Repository nodes in the graph.
type RepositoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	owner           *string
	name            *string
	default_branch  *string
	tracker_project *string
	enabled         *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Repository, error)
	predicates      []predicate.Repository
}

var _ ent.Mutation = (*RepositoryMutation)(nil)

// repositoryOption allows management of the mutation configuration using functional options.
type repositoryOption func(*RepositoryMutation)

// newRepositoryMutation creates new mutation for the Repository entity.
func newRepositoryMutation(c config, op Op, opts ...repositoryOption) *RepositoryMutation {
	m := &RepositoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRepository,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryID sets the ID field of the mutation.
func withRepositoryID(id string) repositoryOption {
	return func(m *RepositoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Repository
		)
		m.oldValue = func(ctx context.Context) (*Repository, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Repository.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepository sets the old Repository of the mutation.
func withRepository(node *Repository) repositoryOption {
	return func(m *RepositoryMutation) {
		m.oldValue = func(context.Context) (*Repository, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Repository entities.
func (m *RepositoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Repository.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *RepositoryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *RepositoryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *RepositoryMutation) ResetOwner() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *RepositoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RepositoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RepositoryMutation) ResetName() {
	m.name = nil
}

// SetDefaultBranch sets the "default_branch" field.
func (m *RepositoryMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *RepositoryMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *RepositoryMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetTrackerProject sets the "tracker_project" field.
func (m *RepositoryMutation) SetTrackerProject(s string) {
	m.tracker_project = &s
}

// TrackerProject returns the value of the "tracker_project" field in the mutation.
func (m *RepositoryMutation) TrackerProject() (r string, exists bool) {
	v := m.tracker_project
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackerProject returns the old "tracker_project" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldTrackerProject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackerProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackerProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackerProject: %w", err)
	}
	return oldValue.TrackerProject, nil
}

// ClearTrackerProject clears the value of the "tracker_project" field.
func (m *RepositoryMutation) ClearTrackerProject() {
	m.tracker_project = nil
	m.clearedFields[repository.FieldTrackerProject] = struct{}{}
}

// TrackerProjectCleared returns if the "tracker_project" field was cleared in this mutation.
func (m *RepositoryMutation) TrackerProjectCleared() bool {
	_, ok := m.clearedFields[repository.FieldTrackerProject]
	return ok
}

// ResetTrackerProject resets all changes to the "tracker_project" field.
func (m *RepositoryMutation) ResetTrackerProject() {
	m.tracker_project = nil
	delete(m.clearedFields, repository.FieldTrackerProject)
}

// SetEnabled sets the "enabled" field.
func (m *RepositoryMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *RepositoryMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *RepositoryMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RepositoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepositoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepositoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RepositoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RepositoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RepositoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RepositoryMutation builder.
func (m *RepositoryMutation) Where(ps ...predicate.Repository) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Repository, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Repository).
func (m *RepositoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner != nil {
		fields = append(fields, repository.FieldOwner)
	}
	if m.name != nil {
		fields = append(fields, repository.FieldName)
	}
	if m.default_branch != nil {
		fields = append(fields, repository.FieldDefaultBranch)
	}
	if m.tracker_project != nil {
		fields = append(fields, repository.FieldTrackerProject)
	}
	if m.enabled != nil {
		fields = append(fields, repository.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, repository.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, repository.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldOwner:
		return m.Owner()
	case repository.FieldName:
		return m.Name()
	case repository.FieldDefaultBranch:
		return m.DefaultBranch()
	case repository.FieldTrackerProject:
		return m.TrackerProject()
	case repository.FieldEnabled:
		return m.Enabled()
	case repository.FieldCreatedAt:
		return m.CreatedAt()
	case repository.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repository.FieldOwner:
		return m.OldOwner(ctx)
	case repository.FieldName:
		return m.OldName(ctx)
	case repository.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case repository.FieldTrackerProject:
		return m.OldTrackerProject(ctx)
	case repository.FieldEnabled:
		return m.OldEnabled(ctx)
	case repository.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case repository.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Repository field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repository.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case repository.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case repository.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case repository.FieldTrackerProject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackerProject(v)
		return nil
	case repository.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case repository.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case repository.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Repository numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repository.FieldTrackerProject) {
		fields = append(fields, repository.FieldTrackerProject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryMutation) ClearField(name string) error {
	switch name {
	case repository.FieldTrackerProject:
		m.ClearTrackerProject()
		return nil
	}
	return fmt.Errorf("unknown Repository nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryMutation) ResetField(name string) error {
	switch name {
	case repository.FieldOwner:
		m.ResetOwner()
		return nil
	case repository.FieldName:
		m.ResetName()
		return nil
	case repository.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case repository.FieldTrackerProject:
		m.ResetTrackerProject()
		return nil
	case repository.FieldEnabled:
		m.ResetEnabled()
		return nil
	case repository.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case repository.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Repository unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Repository edge %s", name)
}

// SessionMemoryMutation represents an operation that mutates the SessionMemory nodes in the graph.
type SessionMemoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	task_id         *string
	phase           *sessionmemory.Phase
	status          *string
	task_context    *map[string]interface{}
	agent_outputs   *map[string]interface{}
	orchestration   *map[string]interface{}
	error_count     *int
	adderror_count  *int
	retry_count     *int
	addretry_count  *int
	last_checkpoint *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SessionMemory, error)
	predicates      []predicate.SessionMemory
}

var _ ent.Mutation = (*SessionMemoryMutation)(nil)

// sessionmemoryOption allows management of the mutation configuration using functional options.
type sessionmemoryOption func(*SessionMemoryMutation)

// newSessionMemoryMutation creates new mutation for the SessionMemory entity.
func newSessionMemoryMutation(c config, op Op, opts ...sessionmemoryOption) *SessionMemoryMutation {
	m := &SessionMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMemoryID sets the ID field of the mutation.
func withSessionMemoryID(id string) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMemory
		)
		m.oldValue = func(ctx context.Context) (*SessionMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMemory sets the old SessionMemory of the mutation.
func withSessionMemory(node *SessionMemory) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		m.oldValue = func(context.Context) (*SessionMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMemory entities.
func (m *SessionMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SessionMemoryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SessionMemoryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SessionMemoryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetPhase sets the "phase" field.
func (m *SessionMemoryMutation) SetPhase(s sessionmemory.Phase) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *SessionMemoryMutation) Phase() (r sessionmemory.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldPhase(ctx context.Context) (v sessionmemory.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *SessionMemoryMutation) ResetPhase() {
	m.phase = nil
}

// SetStatus sets the "status" field.
func (m *SessionMemoryMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMemoryMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMemoryMutation) ResetStatus() {
	m.status = nil
}

// SetTaskContext sets the "task_context" field.
func (m *SessionMemoryMutation) SetTaskContext(value map[string]interface{}) {
	m.task_context = &value
}

// TaskContext returns the value of the "task_context" field in the mutation.
func (m *SessionMemoryMutation) TaskContext() (r map[string]interface{}, exists bool) {
	v := m.task_context
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskContext returns the old "task_context" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldTaskContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskContext: %w", err)
	}
	return oldValue.TaskContext, nil
}

// ClearTaskContext clears the value of the "task_context" field.
func (m *SessionMemoryMutation) ClearTaskContext() {
	m.task_context = nil
	m.clearedFields[sessionmemory.FieldTaskContext] = struct{}{}
}

// TaskContextCleared returns if the "task_context" field was cleared in this mutation.
func (m *SessionMemoryMutation) TaskContextCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldTaskContext]
	return ok
}

// ResetTaskContext resets all changes to the "task_context" field.
func (m *SessionMemoryMutation) ResetTaskContext() {
	m.task_context = nil
	delete(m.clearedFields, sessionmemory.FieldTaskContext)
}

// SetAgentOutputs sets the "agent_outputs" field.
func (m *SessionMemoryMutation) SetAgentOutputs(value map[string]interface{}) {
	m.agent_outputs = &value
}

// AgentOutputs returns the value of the "agent_outputs" field in the mutation.
func (m *SessionMemoryMutation) AgentOutputs() (r map[string]interface{}, exists bool) {
	v := m.agent_outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentOutputs returns the old "agent_outputs" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldAgentOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentOutputs: %w", err)
	}
	return oldValue.AgentOutputs, nil
}

// ClearAgentOutputs clears the value of the "agent_outputs" field.
func (m *SessionMemoryMutation) ClearAgentOutputs() {
	m.agent_outputs = nil
	m.clearedFields[sessionmemory.FieldAgentOutputs] = struct{}{}
}

// AgentOutputsCleared returns if the "agent_outputs" field was cleared in this mutation.
func (m *SessionMemoryMutation) AgentOutputsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldAgentOutputs]
	return ok
}

// ResetAgentOutputs resets all changes to the "agent_outputs" field.
func (m *SessionMemoryMutation) ResetAgentOutputs() {
	m.agent_outputs = nil
	delete(m.clearedFields, sessionmemory.FieldAgentOutputs)
}

// SetOrchestration sets the "orchestration" field.
func (m *SessionMemoryMutation) SetOrchestration(value map[string]interface{}) {
	m.orchestration = &value
}

// Orchestration returns the value of the "orchestration" field in the mutation.
func (m *SessionMemoryMutation) Orchestration() (r map[string]interface{}, exists bool) {
	v := m.orchestration
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestration returns the old "orchestration" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldOrchestration(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestration: %w", err)
	}
	return oldValue.Orchestration, nil
}

// ClearOrchestration clears the value of the "orchestration" field.
func (m *SessionMemoryMutation) ClearOrchestration() {
	m.orchestration = nil
	m.clearedFields[sessionmemory.FieldOrchestration] = struct{}{}
}

// OrchestrationCleared returns if the "orchestration" field was cleared in this mutation.
func (m *SessionMemoryMutation) OrchestrationCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldOrchestration]
	return ok
}

// ResetOrchestration resets all changes to the "orchestration" field.
func (m *SessionMemoryMutation) ResetOrchestration() {
	m.orchestration = nil
	delete(m.clearedFields, sessionmemory.FieldOrchestration)
}

// SetErrorCount sets the "error_count" field.
func (m *SessionMemoryMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *SessionMemoryMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *SessionMemoryMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *SessionMemoryMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *SessionMemoryMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *SessionMemoryMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SessionMemoryMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SessionMemoryMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SessionMemoryMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SessionMemoryMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastCheckpoint sets the "last_checkpoint" field.
func (m *SessionMemoryMutation) SetLastCheckpoint(s string) {
	m.last_checkpoint = &s
}

// LastCheckpoint returns the value of the "last_checkpoint" field in the mutation.
func (m *SessionMemoryMutation) LastCheckpoint() (r string, exists bool) {
	v := m.last_checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheckpoint returns the old "last_checkpoint" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldLastCheckpoint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheckpoint: %w", err)
	}
	return oldValue.LastCheckpoint, nil
}

// ClearLastCheckpoint clears the value of the "last_checkpoint" field.
func (m *SessionMemoryMutation) ClearLastCheckpoint() {
	m.last_checkpoint = nil
	m.clearedFields[sessionmemory.FieldLastCheckpoint] = struct{}{}
}

// LastCheckpointCleared returns if the "last_checkpoint" field was cleared in this mutation.
func (m *SessionMemoryMutation) LastCheckpointCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldLastCheckpoint]
	return ok
}

// ResetLastCheckpoint resets all changes to the "last_checkpoint" field.
func (m *SessionMemoryMutation) ResetLastCheckpoint() {
	m.last_checkpoint = nil
	delete(m.clearedFields, sessionmemory.FieldLastCheckpoint)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionMemoryMutation builder.
func (m *SessionMemoryMutation) Where(ps ...predicate.SessionMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMemory).
func (m *SessionMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMemoryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task_id != nil {
		fields = append(fields, sessionmemory.FieldTaskID)
	}
	if m.phase != nil {
		fields = append(fields, sessionmemory.FieldPhase)
	}
	if m.status != nil {
		fields = append(fields, sessionmemory.FieldStatus)
	}
	if m.task_context != nil {
		fields = append(fields, sessionmemory.FieldTaskContext)
	}
	if m.agent_outputs != nil {
		fields = append(fields, sessionmemory.FieldAgentOutputs)
	}
	if m.orchestration != nil {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.error_count != nil {
		fields = append(fields, sessionmemory.FieldErrorCount)
	}
	if m.retry_count != nil {
		fields = append(fields, sessionmemory.FieldRetryCount)
	}
	if m.last_checkpoint != nil {
		fields = append(fields, sessionmemory.FieldLastCheckpoint)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmemory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.TaskID()
	case sessionmemory.FieldPhase:
		return m.Phase()
	case sessionmemory.FieldStatus:
		return m.Status()
	case sessionmemory.FieldTaskContext:
		return m.TaskContext()
	case sessionmemory.FieldAgentOutputs:
		return m.AgentOutputs()
	case sessionmemory.FieldOrchestration:
		return m.Orchestration()
	case sessionmemory.FieldErrorCount:
		return m.ErrorCount()
	case sessionmemory.FieldRetryCount:
		return m.RetryCount()
	case sessionmemory.FieldLastCheckpoint:
		return m.LastCheckpoint()
	case sessionmemory.FieldCreatedAt:
		return m.CreatedAt()
	case sessionmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.OldTaskID(ctx)
	case sessionmemory.FieldPhase:
		return m.OldPhase(ctx)
	case sessionmemory.FieldStatus:
		return m.OldStatus(ctx)
	case sessionmemory.FieldTaskContext:
		return m.OldTaskContext(ctx)
	case sessionmemory.FieldAgentOutputs:
		return m.OldAgentOutputs(ctx)
	case sessionmemory.FieldOrchestration:
		return m.OldOrchestration(ctx)
	case sessionmemory.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case sessionmemory.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case sessionmemory.FieldLastCheckpoint:
		return m.OldLastCheckpoint(ctx)
	case sessionmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sessionmemory.FieldPhase:
		v, ok := value.(sessionmemory.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case sessionmemory.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sessionmemory.FieldTaskContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskContext(v)
		return nil
	case sessionmemory.FieldAgentOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentOutputs(v)
		return nil
	case sessionmemory.FieldOrchestration:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestration(v)
		return nil
	case sessionmemory.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case sessionmemory.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case sessionmemory.FieldLastCheckpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheckpoint(v)
		return nil
	case sessionmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMemoryMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, sessionmemory.FieldErrorCount)
	}
	if m.addretry_count != nil {
		fields = append(fields, sessionmemory.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldErrorCount:
		return m.AddedErrorCount()
	case sessionmemory.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case sessionmemory.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmemory.FieldTaskContext) {
		fields = append(fields, sessionmemory.FieldTaskContext)
	}
	if m.FieldCleared(sessionmemory.FieldAgentOutputs) {
		fields = append(fields, sessionmemory.FieldAgentOutputs)
	}
	if m.FieldCleared(sessionmemory.FieldOrchestration) {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.FieldCleared(sessionmemory.FieldLastCheckpoint) {
		fields = append(fields, sessionmemory.FieldLastCheckpoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ClearField(name string) error {
	switch name {
	case sessionmemory.FieldTaskContext:
		m.ClearTaskContext()
		return nil
	case sessionmemory.FieldAgentOutputs:
		m.ClearAgentOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ClearOrchestration()
		return nil
	case sessionmemory.FieldLastCheckpoint:
		m.ClearLastCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ResetField(name string) error {
	switch name {
	case sessionmemory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sessionmemory.FieldPhase:
		m.ResetPhase()
		return nil
	case sessionmemory.FieldStatus:
		m.ResetStatus()
		return nil
	case sessionmemory.FieldTaskContext:
		m.ResetTaskContext()
		return nil
	case sessionmemory.FieldAgentOutputs:
		m.ResetAgentOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ResetOrchestration()
		return nil
	case sessionmemory.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case sessionmemory.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case sessionmemory.FieldLastCheckpoint:
		m.ResetLastCheckpoint()
		return nil
	case sessionmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMemoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMemoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMemoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMemoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionMemory edge %s", name)
}

// StaticMemoryMutation represents an operation that mutates the StaticMemory nodes in the graph.
type StaticMemoryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	owner                 *string
	repo                  *string
	version               *int
	addversion            *int
	allowed_paths         *[]string
	appendallowed_paths   []string
	blocked_paths         *[]string
	appendblocked_paths   []string
	max_diff_lines        *int
	addmax_diff_lines     *int
	max_files_per_task    *int
	addmax_files_per_task *int
	tech_stack            *[]string
	appendtech_stack      []string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*StaticMemory, error)
	predicates            []predicate.StaticMemory
}

var _ ent.Mutation = (*StaticMemoryMutation)(nil)

// staticmemoryOption allows management of the mutation configuration using functional options.
type staticmemoryOption func(*StaticMemoryMutation)

// newStaticMemoryMutation creates new mutation for the StaticMemory entity.
func newStaticMemoryMutation(c config, op Op, opts ...staticmemoryOption) *StaticMemoryMutation {
	m := &StaticMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeStaticMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaticMemoryID sets the ID field of the mutation.
func withStaticMemoryID(id string) staticmemoryOption {
	return func(m *StaticMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *StaticMemory
		)
		m.oldValue = func(ctx context.Context) (*StaticMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaticMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaticMemory sets the old StaticMemory of the mutation.
func withStaticMemory(node *StaticMemory) staticmemoryOption {
	return func(m *StaticMemoryMutation) {
		m.oldValue = func(context.Context) (*StaticMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaticMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaticMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StaticMemory entities.
func (m *StaticMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaticMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaticMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaticMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *StaticMemoryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *StaticMemoryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *StaticMemoryMutation) ResetOwner() {
	m.owner = nil
}

// SetRepo sets the "repo" field.
func (m *StaticMemoryMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *StaticMemoryMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ResetRepo resets all changes to the "repo" field.
func (m *StaticMemoryMutation) ResetRepo() {
	m.repo = nil
}

// SetVersion sets the "version" field.
func (m *StaticMemoryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StaticMemoryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StaticMemoryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StaticMemoryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StaticMemoryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAllowedPaths sets the "allowed_paths" field.
func (m *StaticMemoryMutation) SetAllowedPaths(s []string) {
	m.allowed_paths = &s
	m.appendallowed_paths = nil
}

// AllowedPaths returns the value of the "allowed_paths" field in the mutation.
func (m *StaticMemoryMutation) AllowedPaths() (r []string, exists bool) {
	v := m.allowed_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedPaths returns the old "allowed_paths" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldAllowedPaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedPaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedPaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedPaths: %w", err)
	}
	return oldValue.AllowedPaths, nil
}

// AppendAllowedPaths adds s to the "allowed_paths" field.
func (m *StaticMemoryMutation) AppendAllowedPaths(s []string) {
	m.appendallowed_paths = append(m.appendallowed_paths, s...)
}

// AppendedAllowedPaths returns the list of values that were appended to the "allowed_paths" field in this mutation.
func (m *StaticMemoryMutation) AppendedAllowedPaths() ([]string, bool) {
	if len(m.appendallowed_paths) == 0 {
		return nil, false
	}
	return m.appendallowed_paths, true
}

// ClearAllowedPaths clears the value of the "allowed_paths" field.
func (m *StaticMemoryMutation) ClearAllowedPaths() {
	m.allowed_paths = nil
	m.appendallowed_paths = nil
	m.clearedFields[staticmemory.FieldAllowedPaths] = struct{}{}
}

// AllowedPathsCleared returns if the "allowed_paths" field was cleared in this mutation.
func (m *StaticMemoryMutation) AllowedPathsCleared() bool {
	_, ok := m.clearedFields[staticmemory.FieldAllowedPaths]
	return ok
}

// ResetAllowedPaths resets all changes to the "allowed_paths" field.
func (m *StaticMemoryMutation) ResetAllowedPaths() {
	m.allowed_paths = nil
	m.appendallowed_paths = nil
	delete(m.clearedFields, staticmemory.FieldAllowedPaths)
}

// SetBlockedPaths sets the "blocked_paths" field.
func (m *StaticMemoryMutation) SetBlockedPaths(s []string) {
	m.blocked_paths = &s
	m.appendblocked_paths = nil
}

// BlockedPaths returns the value of the "blocked_paths" field in the mutation.
func (m *StaticMemoryMutation) BlockedPaths() (r []string, exists bool) {
	v := m.blocked_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedPaths returns the old "blocked_paths" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldBlockedPaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedPaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedPaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedPaths: %w", err)
	}
	return oldValue.BlockedPaths, nil
}

// AppendBlockedPaths adds s to the "blocked_paths" field.
func (m *StaticMemoryMutation) AppendBlockedPaths(s []string) {
	m.appendblocked_paths = append(m.appendblocked_paths, s...)
}

// AppendedBlockedPaths returns the list of values that were appended to the "blocked_paths" field in this mutation.
func (m *StaticMemoryMutation) AppendedBlockedPaths() ([]string, bool) {
	if len(m.appendblocked_paths) == 0 {
		return nil, false
	}
	return m.appendblocked_paths, true
}

// ClearBlockedPaths clears the value of the "blocked_paths" field.
func (m *StaticMemoryMutation) ClearBlockedPaths() {
	m.blocked_paths = nil
	m.appendblocked_paths = nil
	m.clearedFields[staticmemory.FieldBlockedPaths] = struct{}{}
}

// BlockedPathsCleared returns if the "blocked_paths" field was cleared in this mutation.
func (m *StaticMemoryMutation) BlockedPathsCleared() bool {
	_, ok := m.clearedFields[staticmemory.FieldBlockedPaths]
	return ok
}

// ResetBlockedPaths resets all changes to the "blocked_paths" field.
func (m *StaticMemoryMutation) ResetBlockedPaths() {
	m.blocked_paths = nil
	m.appendblocked_paths = nil
	delete(m.clearedFields, staticmemory.FieldBlockedPaths)
}

// SetMaxDiffLines sets the "max_diff_lines" field.
func (m *StaticMemoryMutation) SetMaxDiffLines(i int) {
	m.max_diff_lines = &i
	m.addmax_diff_lines = nil
}

// MaxDiffLines returns the value of the "max_diff_lines" field in the mutation.
func (m *StaticMemoryMutation) MaxDiffLines() (r int, exists bool) {
	v := m.max_diff_lines
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDiffLines returns the old "max_diff_lines" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldMaxDiffLines(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDiffLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDiffLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDiffLines: %w", err)
	}
	return oldValue.MaxDiffLines, nil
}

// AddMaxDiffLines adds i to the "max_diff_lines" field.
func (m *StaticMemoryMutation) AddMaxDiffLines(i int) {
	if m.addmax_diff_lines != nil {
		*m.addmax_diff_lines += i
	} else {
		m.addmax_diff_lines = &i
	}
}

// AddedMaxDiffLines returns the value that was added to the "max_diff_lines" field in this mutation.
func (m *StaticMemoryMutation) AddedMaxDiffLines() (r int, exists bool) {
	v := m.addmax_diff_lines
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDiffLines resets all changes to the "max_diff_lines" field.
func (m *StaticMemoryMutation) ResetMaxDiffLines() {
	m.max_diff_lines = nil
	m.addmax_diff_lines = nil
}

// SetMaxFilesPerTask sets the "max_files_per_task" field.
func (m *StaticMemoryMutation) SetMaxFilesPerTask(i int) {
	m.max_files_per_task = &i
	m.addmax_files_per_task = nil
}

// MaxFilesPerTask returns the value of the "max_files_per_task" field in the mutation.
func (m *StaticMemoryMutation) MaxFilesPerTask() (r int, exists bool) {
	v := m.max_files_per_task
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxFilesPerTask returns the old "max_files_per_task" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldMaxFilesPerTask(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxFilesPerTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxFilesPerTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxFilesPerTask: %w", err)
	}
	return oldValue.MaxFilesPerTask, nil
}

// AddMaxFilesPerTask adds i to the "max_files_per_task" field.
func (m *StaticMemoryMutation) AddMaxFilesPerTask(i int) {
	if m.addmax_files_per_task != nil {
		*m.addmax_files_per_task += i
	} else {
		m.addmax_files_per_task = &i
	}
}

// AddedMaxFilesPerTask returns the value that was added to the "max_files_per_task" field in this mutation.
func (m *StaticMemoryMutation) AddedMaxFilesPerTask() (r int, exists bool) {
	v := m.addmax_files_per_task
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxFilesPerTask resets all changes to the "max_files_per_task" field.
func (m *StaticMemoryMutation) ResetMaxFilesPerTask() {
	m.max_files_per_task = nil
	m.addmax_files_per_task = nil
}

// SetTechStack sets the "tech_stack" field.
func (m *StaticMemoryMutation) SetTechStack(s []string) {
	m.tech_stack = &s
	m.appendtech_stack = nil
}

// TechStack returns the value of the "tech_stack" field in the mutation.
func (m *StaticMemoryMutation) TechStack() (r []string, exists bool) {
	v := m.tech_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldTechStack returns the old "tech_stack" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldTechStack(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechStack: %w", err)
	}
	return oldValue.TechStack, nil
}

// AppendTechStack adds s to the "tech_stack" field.
func (m *StaticMemoryMutation) AppendTechStack(s []string) {
	m.appendtech_stack = append(m.appendtech_stack, s...)
}

// AppendedTechStack returns the list of values that were appended to the "tech_stack" field in this mutation.
func (m *StaticMemoryMutation) AppendedTechStack() ([]string, bool) {
	if len(m.appendtech_stack) == 0 {
		return nil, false
	}
	return m.appendtech_stack, true
}

// ClearTechStack clears the value of the "tech_stack" field.
func (m *StaticMemoryMutation) ClearTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	m.clearedFields[staticmemory.FieldTechStack] = struct{}{}
}

// TechStackCleared returns if the "tech_stack" field was cleared in this mutation.
func (m *StaticMemoryMutation) TechStackCleared() bool {
	_, ok := m.clearedFields[staticmemory.FieldTechStack]
	return ok
}

// ResetTechStack resets all changes to the "tech_stack" field.
func (m *StaticMemoryMutation) ResetTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	delete(m.clearedFields, staticmemory.FieldTechStack)
}

// SetCreatedAt sets the "created_at" field.
func (m *StaticMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaticMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaticMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaticMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaticMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaticMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StaticMemoryMutation builder.
func (m *StaticMemoryMutation) Where(ps ...predicate.StaticMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaticMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaticMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaticMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaticMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaticMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaticMemory).
func (m *StaticMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaticMemoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner != nil {
		fields = append(fields, staticmemory.FieldOwner)
	}
	if m.repo != nil {
		fields = append(fields, staticmemory.FieldRepo)
	}
	if m.version != nil {
		fields = append(fields, staticmemory.FieldVersion)
	}
	if m.allowed_paths != nil {
		fields = append(fields, staticmemory.FieldAllowedPaths)
	}
	if m.blocked_paths != nil {
		fields = append(fields, staticmemory.FieldBlockedPaths)
	}
	if m.max_diff_lines != nil {
		fields = append(fields, staticmemory.FieldMaxDiffLines)
	}
	if m.max_files_per_task != nil {
		fields = append(fields, staticmemory.FieldMaxFilesPerTask)
	}
	if m.tech_stack != nil {
		fields = append(fields, staticmemory.FieldTechStack)
	}
	if m.created_at != nil {
		fields = append(fields, staticmemory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staticmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaticMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staticmemory.FieldOwner:
		return m.Owner()
	case staticmemory.FieldRepo:
		return m.Repo()
	case staticmemory.FieldVersion:
		return m.Version()
	case staticmemory.FieldAllowedPaths:
		return m.AllowedPaths()
	case staticmemory.FieldBlockedPaths:
		return m.BlockedPaths()
	case staticmemory.FieldMaxDiffLines:
		return m.MaxDiffLines()
	case staticmemory.FieldMaxFilesPerTask:
		return m.MaxFilesPerTask()
	case staticmemory.FieldTechStack:
		return m.TechStack()
	case staticmemory.FieldCreatedAt:
		return m.CreatedAt()
	case staticmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaticMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staticmemory.FieldOwner:
		return m.OldOwner(ctx)
	case staticmemory.FieldRepo:
		return m.OldRepo(ctx)
	case staticmemory.FieldVersion:
		return m.OldVersion(ctx)
	case staticmemory.FieldAllowedPaths:
		return m.OldAllowedPaths(ctx)
	case staticmemory.FieldBlockedPaths:
		return m.OldBlockedPaths(ctx)
	case staticmemory.FieldMaxDiffLines:
		return m.OldMaxDiffLines(ctx)
	case staticmemory.FieldMaxFilesPerTask:
		return m.OldMaxFilesPerTask(ctx)
	case staticmemory.FieldTechStack:
		return m.OldTechStack(ctx)
	case staticmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staticmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StaticMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaticMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staticmemory.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case staticmemory.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case staticmemory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case staticmemory.FieldAllowedPaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedPaths(v)
		return nil
	case staticmemory.FieldBlockedPaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedPaths(v)
		return nil
	case staticmemory.FieldMaxDiffLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDiffLines(v)
		return nil
	case staticmemory.FieldMaxFilesPerTask:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxFilesPerTask(v)
		return nil
	case staticmemory.FieldTechStack:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechStack(v)
		return nil
	case staticmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staticmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StaticMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaticMemoryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, staticmemory.FieldVersion)
	}
	if m.addmax_diff_lines != nil {
		fields = append(fields, staticmemory.FieldMaxDiffLines)
	}
	if m.addmax_files_per_task != nil {
		fields = append(fields, staticmemory.FieldMaxFilesPerTask)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaticMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case staticmemory.FieldVersion:
		return m.AddedVersion()
	case staticmemory.FieldMaxDiffLines:
		return m.AddedMaxDiffLines()
	case staticmemory.FieldMaxFilesPerTask:
		return m.AddedMaxFilesPerTask()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaticMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case staticmemory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case staticmemory.FieldMaxDiffLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDiffLines(v)
		return nil
	case staticmemory.FieldMaxFilesPerTask:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxFilesPerTask(v)
		return nil
	}
	return fmt.Errorf("unknown StaticMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaticMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staticmemory.FieldAllowedPaths) {
		fields = append(fields, staticmemory.FieldAllowedPaths)
	}
	if m.FieldCleared(staticmemory.FieldBlockedPaths) {
		fields = append(fields, staticmemory.FieldBlockedPaths)
	}
	if m.FieldCleared(staticmemory.FieldTechStack) {
		fields = append(fields, staticmemory.FieldTechStack)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaticMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaticMemoryMutation) ClearField(name string) error {
	switch name {
	case staticmemory.FieldAllowedPaths:
		m.ClearAllowedPaths()
		return nil
	case staticmemory.FieldBlockedPaths:
		m.ClearBlockedPaths()
		return nil
	case staticmemory.FieldTechStack:
		m.ClearTechStack()
		return nil
	}
	return fmt.Errorf("unknown StaticMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaticMemoryMutation) ResetField(name string) error {
	switch name {
	case staticmemory.FieldOwner:
		m.ResetOwner()
		return nil
	case staticmemory.FieldRepo:
		m.ResetRepo()
		return nil
	case staticmemory.FieldVersion:
		m.ResetVersion()
		return nil
	case staticmemory.FieldAllowedPaths:
		m.ResetAllowedPaths()
		return nil
	case staticmemory.FieldBlockedPaths:
		m.ResetBlockedPaths()
		return nil
	case staticmemory.FieldMaxDiffLines:
		m.ResetMaxDiffLines()
		return nil
	case staticmemory.FieldMaxFilesPerTask:
		m.ResetMaxFilesPerTask()
		return nil
	case staticmemory.FieldTechStack:
		m.ResetTechStack()
		return nil
	case staticmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staticmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StaticMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaticMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaticMemoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaticMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaticMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaticMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaticMemoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaticMemoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StaticMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaticMemoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StaticMemory edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	repo                     *string
	issue_number             *int
	addissue_number          *int
	title                    *string
	body                     *string
	status                   *task.Status
	plan                     *[]string
	appendplan               []string
	definition_of_done       *[]string
	appenddefinition_of_done []string
	target_files             *[]string
	appendtarget_files       []string
	current_diff             *string
	commit_message           *string
	attempt_count            *int
	addattempt_count         *int
	max_attempts             *int
	addmax_attempts          *int
	last_error               *string
	failure_reason           *string
	parent_task_id           *string
	subtask_index            *int
	addsubtask_index         *int
	is_orchestrated          *bool
	dry_run                  *bool
	branch                   *string
	pr_url                   *string
	pr_number                *int
	addpr_number             *int
	delivery_id              *string
	pod_id                   *string
	last_heartbeat_at        *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	session                  *string
	clearedsession           bool
	progress_entries         map[string]struct{}
	removedprogress_entries  map[string]struct{}
	clearedprogress_entries  bool
	attempt_records          map[string]struct{}
	removedattempt_records   map[string]struct{}
	clearedattempt_records   bool
	checkpoints              map[string]struct{}
	removedcheckpoints       map[string]struct{}
	clearedcheckpoints       bool
	observations             map[string]struct{}
	removedobservations      map[string]struct{}
	clearedobservations      bool
	patches                  map[string]struct{}
	removedpatches           map[string]struct{}
	clearedpatches           bool
	task_events              map[string]struct{}
	removedtask_events       map[string]struct{}
	clearedtask_events       bool
	done                     bool
	oldValue                 func(context.Context) (*Task, error)
	predicates               []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepo sets the "repo" field.
func (m *TaskMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *TaskMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ResetRepo resets all changes to the "repo" field.
func (m *TaskMutation) ResetRepo() {
	m.repo = nil
}

// SetIssueNumber sets the "issue_number" field.
func (m *TaskMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *TaskMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *TaskMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *TaskMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *TaskMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *TaskMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TaskMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *TaskMutation) ClearBody() {
	m.body = nil
	m.clearedFields[task.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *TaskMutation) BodyCleared() bool {
	_, ok := m.clearedFields[task.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *TaskMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, task.FieldBody)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPlan sets the "plan" field.
func (m *TaskMutation) SetPlan(s []string) {
	m.plan = &s
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskMutation) Plan() (r []string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds s to the "plan" field.
func (m *TaskMutation) AppendPlan(s []string) {
	m.appendplan = append(m.appendplan, s...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *TaskMutation) AppendedPlan() ([]string, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *TaskMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[task.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *TaskMutation) PlanCleared() bool {
	_, ok := m.clearedFields[task.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, task.FieldPlan)
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (m *TaskMutation) SetDefinitionOfDone(s []string) {
	m.definition_of_done = &s
	m.appenddefinition_of_done = nil
}

// DefinitionOfDone returns the value of the "definition_of_done" field in the mutation.
func (m *TaskMutation) DefinitionOfDone() (r []string, exists bool) {
	v := m.definition_of_done
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionOfDone returns the old "definition_of_done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDefinitionOfDone(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionOfDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionOfDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionOfDone: %w", err)
	}
	return oldValue.DefinitionOfDone, nil
}

// AppendDefinitionOfDone adds s to the "definition_of_done" field.
func (m *TaskMutation) AppendDefinitionOfDone(s []string) {
	m.appenddefinition_of_done = append(m.appenddefinition_of_done, s...)
}

// AppendedDefinitionOfDone returns the list of values that were appended to the "definition_of_done" field in this mutation.
func (m *TaskMutation) AppendedDefinitionOfDone() ([]string, bool) {
	if len(m.appenddefinition_of_done) == 0 {
		return nil, false
	}
	return m.appenddefinition_of_done, true
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (m *TaskMutation) ClearDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	m.clearedFields[task.FieldDefinitionOfDone] = struct{}{}
}

// DefinitionOfDoneCleared returns if the "definition_of_done" field was cleared in this mutation.
func (m *TaskMutation) DefinitionOfDoneCleared() bool {
	_, ok := m.clearedFields[task.FieldDefinitionOfDone]
	return ok
}

// ResetDefinitionOfDone resets all changes to the "definition_of_done" field.
func (m *TaskMutation) ResetDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	delete(m.clearedFields, task.FieldDefinitionOfDone)
}

// SetTargetFiles sets the "target_files" field.
func (m *TaskMutation) SetTargetFiles(s []string) {
	m.target_files = &s
	m.appendtarget_files = nil
}

// TargetFiles returns the value of the "target_files" field in the mutation.
func (m *TaskMutation) TargetFiles() (r []string, exists bool) {
	v := m.target_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetFiles returns the old "target_files" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTargetFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetFiles: %w", err)
	}
	return oldValue.TargetFiles, nil
}

// AppendTargetFiles adds s to the "target_files" field.
func (m *TaskMutation) AppendTargetFiles(s []string) {
	m.appendtarget_files = append(m.appendtarget_files, s...)
}

// AppendedTargetFiles returns the list of values that were appended to the "target_files" field in this mutation.
func (m *TaskMutation) AppendedTargetFiles() ([]string, bool) {
	if len(m.appendtarget_files) == 0 {
		return nil, false
	}
	return m.appendtarget_files, true
}

// ClearTargetFiles clears the value of the "target_files" field.
func (m *TaskMutation) ClearTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	m.clearedFields[task.FieldTargetFiles] = struct{}{}
}

// TargetFilesCleared returns if the "target_files" field was cleared in this mutation.
func (m *TaskMutation) TargetFilesCleared() bool {
	_, ok := m.clearedFields[task.FieldTargetFiles]
	return ok
}

// ResetTargetFiles resets all changes to the "target_files" field.
func (m *TaskMutation) ResetTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	delete(m.clearedFields, task.FieldTargetFiles)
}

// SetCurrentDiff sets the "current_diff" field.
func (m *TaskMutation) SetCurrentDiff(s string) {
	m.current_diff = &s
}

// CurrentDiff returns the value of the "current_diff" field in the mutation.
func (m *TaskMutation) CurrentDiff() (r string, exists bool) {
	v := m.current_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDiff returns the old "current_diff" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDiff: %w", err)
	}
	return oldValue.CurrentDiff, nil
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (m *TaskMutation) ClearCurrentDiff() {
	m.current_diff = nil
	m.clearedFields[task.FieldCurrentDiff] = struct{}{}
}

// CurrentDiffCleared returns if the "current_diff" field was cleared in this mutation.
func (m *TaskMutation) CurrentDiffCleared() bool {
	_, ok := m.clearedFields[task.FieldCurrentDiff]
	return ok
}

// ResetCurrentDiff resets all changes to the "current_diff" field.
func (m *TaskMutation) ResetCurrentDiff() {
	m.current_diff = nil
	delete(m.clearedFields, task.FieldCurrentDiff)
}

// SetCommitMessage sets the "commit_message" field.
func (m *TaskMutation) SetCommitMessage(s string) {
	m.commit_message = &s
}

// CommitMessage returns the value of the "commit_message" field in the mutation.
func (m *TaskMutation) CommitMessage() (r string, exists bool) {
	v := m.commit_message
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitMessage returns the old "commit_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitMessage: %w", err)
	}
	return oldValue.CommitMessage, nil
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (m *TaskMutation) ClearCommitMessage() {
	m.commit_message = nil
	m.clearedFields[task.FieldCommitMessage] = struct{}{}
}

// CommitMessageCleared returns if the "commit_message" field was cleared in this mutation.
func (m *TaskMutation) CommitMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitMessage]
	return ok
}

// ResetCommitMessage resets all changes to the "commit_message" field.
func (m *TaskMutation) ResetCommitMessage() {
	m.commit_message = nil
	delete(m.clearedFields, task.FieldCommitMessage)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *TaskMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *TaskMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *TaskMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *TaskMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *TaskMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[task.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, task.FieldFailureReason)
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetSubtaskIndex sets the "subtask_index" field.
func (m *TaskMutation) SetSubtaskIndex(i int) {
	m.subtask_index = &i
	m.addsubtask_index = nil
}

// SubtaskIndex returns the value of the "subtask_index" field in the mutation.
func (m *TaskMutation) SubtaskIndex() (r int, exists bool) {
	v := m.subtask_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtaskIndex returns the old "subtask_index" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubtaskIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtaskIndex: %w", err)
	}
	return oldValue.SubtaskIndex, nil
}

// AddSubtaskIndex adds i to the "subtask_index" field.
func (m *TaskMutation) AddSubtaskIndex(i int) {
	if m.addsubtask_index != nil {
		*m.addsubtask_index += i
	} else {
		m.addsubtask_index = &i
	}
}

// AddedSubtaskIndex returns the value that was added to the "subtask_index" field in this mutation.
func (m *TaskMutation) AddedSubtaskIndex() (r int, exists bool) {
	v := m.addsubtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (m *TaskMutation) ClearSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	m.clearedFields[task.FieldSubtaskIndex] = struct{}{}
}

// SubtaskIndexCleared returns if the "subtask_index" field was cleared in this mutation.
func (m *TaskMutation) SubtaskIndexCleared() bool {
	_, ok := m.clearedFields[task.FieldSubtaskIndex]
	return ok
}

// ResetSubtaskIndex resets all changes to the "subtask_index" field.
func (m *TaskMutation) ResetSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	delete(m.clearedFields, task.FieldSubtaskIndex)
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (m *TaskMutation) SetIsOrchestrated(b bool) {
	m.is_orchestrated = &b
}

// IsOrchestrated returns the value of the "is_orchestrated" field in the mutation.
func (m *TaskMutation) IsOrchestrated() (r bool, exists bool) {
	v := m.is_orchestrated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOrchestrated returns the old "is_orchestrated" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsOrchestrated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOrchestrated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOrchestrated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOrchestrated: %w", err)
	}
	return oldValue.IsOrchestrated, nil
}

// ResetIsOrchestrated resets all changes to the "is_orchestrated" field.
func (m *TaskMutation) ResetIsOrchestrated() {
	m.is_orchestrated = nil
}

// SetDryRun sets the "dry_run" field.
func (m *TaskMutation) SetDryRun(b bool) {
	m.dry_run = &b
}

// DryRun returns the value of the "dry_run" field in the mutation.
func (m *TaskMutation) DryRun() (r bool, exists bool) {
	v := m.dry_run
	if v == nil {
		return
	}
	return *v, true
}

// OldDryRun returns the old "dry_run" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDryRun(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDryRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDryRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDryRun: %w", err)
	}
	return oldValue.DryRun, nil
}

// ResetDryRun resets all changes to the "dry_run" field.
func (m *TaskMutation) ResetDryRun() {
	m.dry_run = nil
}

// SetBranch sets the "branch" field.
func (m *TaskMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *TaskMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ClearBranch clears the value of the "branch" field.
func (m *TaskMutation) ClearBranch() {
	m.branch = nil
	m.clearedFields[task.FieldBranch] = struct{}{}
}

// BranchCleared returns if the "branch" field was cleared in this mutation.
func (m *TaskMutation) BranchCleared() bool {
	_, ok := m.clearedFields[task.FieldBranch]
	return ok
}

// ResetBranch resets all changes to the "branch" field.
func (m *TaskMutation) ResetBranch() {
	m.branch = nil
	delete(m.clearedFields, task.FieldBranch)
}

// SetPrURL sets the "pr_url" field.
func (m *TaskMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TaskMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TaskMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[task.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TaskMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[task.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TaskMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, task.FieldPrURL)
}

// SetPrNumber sets the "pr_number" field.
func (m *TaskMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *TaskMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *TaskMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *TaskMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *TaskMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[task.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *TaskMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[task.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *TaskMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, task.FieldPrNumber)
}

// SetDeliveryID sets the "delivery_id" field.
func (m *TaskMutation) SetDeliveryID(s string) {
	m.delivery_id = &s
}

// DeliveryID returns the value of the "delivery_id" field in the mutation.
func (m *TaskMutation) DeliveryID() (r string, exists bool) {
	v := m.delivery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryID returns the old "delivery_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeliveryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryID: %w", err)
	}
	return oldValue.DeliveryID, nil
}

// ClearDeliveryID clears the value of the "delivery_id" field.
func (m *TaskMutation) ClearDeliveryID() {
	m.delivery_id = nil
	m.clearedFields[task.FieldDeliveryID] = struct{}{}
}

// DeliveryIDCleared returns if the "delivery_id" field was cleared in this mutation.
func (m *TaskMutation) DeliveryIDCleared() bool {
	_, ok := m.clearedFields[task.FieldDeliveryID]
	return ok
}

// ResetDeliveryID resets all changes to the "delivery_id" field.
func (m *TaskMutation) ResetDeliveryID() {
	m.delivery_id = nil
	delete(m.clearedFields, task.FieldDeliveryID)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TaskMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TaskMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[task.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, task.FieldDeletedAt)
}

// SetSessionID sets the "session" edge to the SessionMemory entity by id.
func (m *TaskMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (m *TaskMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the SessionMemory entity was cleared.
func (m *TaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *TaskMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddProgressEntryIDs adds the "progress_entries" edge to the ProgressEntry entity by ids.
func (m *TaskMutation) AddProgressEntryIDs(ids ...string) {
	if m.progress_entries == nil {
		m.progress_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.progress_entries[ids[i]] = struct{}{}
	}
}

// ClearProgressEntries clears the "progress_entries" edge to the ProgressEntry entity.
func (m *TaskMutation) ClearProgressEntries() {
	m.clearedprogress_entries = true
}

// ProgressEntriesCleared reports if the "progress_entries" edge to the ProgressEntry entity was cleared.
func (m *TaskMutation) ProgressEntriesCleared() bool {
	return m.clearedprogress_entries
}

// RemoveProgressEntryIDs removes the "progress_entries" edge to the ProgressEntry entity by IDs.
func (m *TaskMutation) RemoveProgressEntryIDs(ids ...string) {
	if m.removedprogress_entries == nil {
		m.removedprogress_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.progress_entries, ids[i])
		m.removedprogress_entries[ids[i]] = struct{}{}
	}
}

// RemovedProgressEntries returns the removed IDs of the "progress_entries" edge to the ProgressEntry entity.
func (m *TaskMutation) RemovedProgressEntriesIDs() (ids []string) {
	for id := range m.removedprogress_entries {
		ids = append(ids, id)
	}
	return
}

// ProgressEntriesIDs returns the "progress_entries" edge IDs in the mutation.
func (m *TaskMutation) ProgressEntriesIDs() (ids []string) {
	for id := range m.progress_entries {
		ids = append(ids, id)
	}
	return
}

// ResetProgressEntries resets all changes to the "progress_entries" edge.
func (m *TaskMutation) ResetProgressEntries() {
	m.progress_entries = nil
	m.clearedprogress_entries = false
	m.removedprogress_entries = nil
}

// AddAttemptRecordIDs adds the "attempt_records" edge to the AttemptRecord entity by ids.
func (m *TaskMutation) AddAttemptRecordIDs(ids ...string) {
	if m.attempt_records == nil {
		m.attempt_records = make(map[string]struct{})
	}
	for i := range ids {
		m.attempt_records[ids[i]] = struct{}{}
	}
}

// ClearAttemptRecords clears the "attempt_records" edge to the AttemptRecord entity.
func (m *TaskMutation) ClearAttemptRecords() {
	m.clearedattempt_records = true
}

// AttemptRecordsCleared reports if the "attempt_records" edge to the AttemptRecord entity was cleared.
func (m *TaskMutation) AttemptRecordsCleared() bool {
	return m.clearedattempt_records
}

// RemoveAttemptRecordIDs removes the "attempt_records" edge to the AttemptRecord entity by IDs.
func (m *TaskMutation) RemoveAttemptRecordIDs(ids ...string) {
	if m.removedattempt_records == nil {
		m.removedattempt_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempt_records, ids[i])
		m.removedattempt_records[ids[i]] = struct{}{}
	}
}

// RemovedAttemptRecords returns the removed IDs of the "attempt_records" edge to the AttemptRecord entity.
func (m *TaskMutation) RemovedAttemptRecordsIDs() (ids []string) {
	for id := range m.removedattempt_records {
		ids = append(ids, id)
	}
	return
}

// AttemptRecordsIDs returns the "attempt_records" edge IDs in the mutation.
func (m *TaskMutation) AttemptRecordsIDs() (ids []string) {
	for id := range m.attempt_records {
		ids = append(ids, id)
	}
	return
}

// ResetAttemptRecords resets all changes to the "attempt_records" edge.
func (m *TaskMutation) ResetAttemptRecords() {
	m.attempt_records = nil
	m.clearedattempt_records = false
	m.removedattempt_records = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *TaskMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *TaskMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *TaskMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *TaskMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *TaskMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddObservationIDs adds the "observations" edge to the Observation entity by ids.
func (m *TaskMutation) AddObservationIDs(ids ...string) {
	if m.observations == nil {
		m.observations = make(map[string]struct{})
	}
	for i := range ids {
		m.observations[ids[i]] = struct{}{}
	}
}

// ClearObservations clears the "observations" edge to the Observation entity.
func (m *TaskMutation) ClearObservations() {
	m.clearedobservations = true
}

// ObservationsCleared reports if the "observations" edge to the Observation entity was cleared.
func (m *TaskMutation) ObservationsCleared() bool {
	return m.clearedobservations
}

// RemoveObservationIDs removes the "observations" edge to the Observation entity by IDs.
func (m *TaskMutation) RemoveObservationIDs(ids ...string) {
	if m.removedobservations == nil {
		m.removedobservations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.observations, ids[i])
		m.removedobservations[ids[i]] = struct{}{}
	}
}

// RemovedObservations returns the removed IDs of the "observations" edge to the Observation entity.
func (m *TaskMutation) RemovedObservationsIDs() (ids []string) {
	for id := range m.removedobservations {
		ids = append(ids, id)
	}
	return
}

// ObservationsIDs returns the "observations" edge IDs in the mutation.
func (m *TaskMutation) ObservationsIDs() (ids []string) {
	for id := range m.observations {
		ids = append(ids, id)
	}
	return
}

// ResetObservations resets all changes to the "observations" edge.
func (m *TaskMutation) ResetObservations() {
	m.observations = nil
	m.clearedobservations = false
	m.removedobservations = nil
}

// AddPatchIDs adds the "patches" edge to the Patch entity by ids.
func (m *TaskMutation) AddPatchIDs(ids ...string) {
	if m.patches == nil {
		m.patches = make(map[string]struct{})
	}
	for i := range ids {
		m.patches[ids[i]] = struct{}{}
	}
}

// ClearPatches clears the "patches" edge to the Patch entity.
func (m *TaskMutation) ClearPatches() {
	m.clearedpatches = true
}

// PatchesCleared reports if the "patches" edge to the Patch entity was cleared.
func (m *TaskMutation) PatchesCleared() bool {
	return m.clearedpatches
}

// RemovePatchIDs removes the "patches" edge to the Patch entity by IDs.
func (m *TaskMutation) RemovePatchIDs(ids ...string) {
	if m.removedpatches == nil {
		m.removedpatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.patches, ids[i])
		m.removedpatches[ids[i]] = struct{}{}
	}
}

// RemovedPatches returns the removed IDs of the "patches" edge to the Patch entity.
func (m *TaskMutation) RemovedPatchesIDs() (ids []string) {
	for id := range m.removedpatches {
		ids = append(ids, id)
	}
	return
}

// PatchesIDs returns the "patches" edge IDs in the mutation.
func (m *TaskMutation) PatchesIDs() (ids []string) {
	for id := range m.patches {
		ids = append(ids, id)
	}
	return
}

// ResetPatches resets all changes to the "patches" edge.
func (m *TaskMutation) ResetPatches() {
	m.patches = nil
	m.clearedpatches = false
	m.removedpatches = nil
}

// AddTaskEventIDs adds the "task_events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddTaskEventIDs(ids ...string) {
	if m.task_events == nil {
		m.task_events = make(map[string]struct{})
	}
	for i := range ids {
		m.task_events[ids[i]] = struct{}{}
	}
}

// ClearTaskEvents clears the "task_events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearTaskEvents() {
	m.clearedtask_events = true
}

// TaskEventsCleared reports if the "task_events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) TaskEventsCleared() bool {
	return m.clearedtask_events
}

// RemoveTaskEventIDs removes the "task_events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveTaskEventIDs(ids ...string) {
	if m.removedtask_events == nil {
		m.removedtask_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.task_events, ids[i])
		m.removedtask_events[ids[i]] = struct{}{}
	}
}

// RemovedTaskEvents returns the removed IDs of the "task_events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedTaskEventsIDs() (ids []string) {
	for id := range m.removedtask_events {
		ids = append(ids, id)
	}
	return
}

// TaskEventsIDs returns the "task_events" edge IDs in the mutation.
func (m *TaskMutation) TaskEventsIDs() (ids []string) {
	for id := range m.task_events {
		ids = append(ids, id)
	}
	return
}

// ResetTaskEvents resets all changes to the "task_events" edge.
func (m *TaskMutation) ResetTaskEvents() {
	m.task_events = nil
	m.clearedtask_events = false
	m.removedtask_events = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.repo != nil {
		fields = append(fields, task.FieldRepo)
	}
	if m.issue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, task.FieldBody)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.plan != nil {
		fields = append(fields, task.FieldPlan)
	}
	if m.definition_of_done != nil {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.target_files != nil {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.current_diff != nil {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.commit_message != nil {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.attempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.failure_reason != nil {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.subtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.is_orchestrated != nil {
		fields = append(fields, task.FieldIsOrchestrated)
	}
	if m.dry_run != nil {
		fields = append(fields, task.FieldDryRun)
	}
	if m.branch != nil {
		fields = append(fields, task.FieldBranch)
	}
	if m.pr_url != nil {
		fields = append(fields, task.FieldPrURL)
	}
	if m.pr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.delivery_id != nil {
		fields = append(fields, task.FieldDeliveryID)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRepo:
		return m.Repo()
	case task.FieldIssueNumber:
		return m.IssueNumber()
	case task.FieldTitle:
		return m.Title()
	case task.FieldBody:
		return m.Body()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPlan:
		return m.Plan()
	case task.FieldDefinitionOfDone:
		return m.DefinitionOfDone()
	case task.FieldTargetFiles:
		return m.TargetFiles()
	case task.FieldCurrentDiff:
		return m.CurrentDiff()
	case task.FieldCommitMessage:
		return m.CommitMessage()
	case task.FieldAttemptCount:
		return m.AttemptCount()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldFailureReason:
		return m.FailureReason()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldSubtaskIndex:
		return m.SubtaskIndex()
	case task.FieldIsOrchestrated:
		return m.IsOrchestrated()
	case task.FieldDryRun:
		return m.DryRun()
	case task.FieldBranch:
		return m.Branch()
	case task.FieldPrURL:
		return m.PrURL()
	case task.FieldPrNumber:
		return m.PrNumber()
	case task.FieldDeliveryID:
		return m.DeliveryID()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldRepo:
		return m.OldRepo(ctx)
	case task.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldBody:
		return m.OldBody(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPlan:
		return m.OldPlan(ctx)
	case task.FieldDefinitionOfDone:
		return m.OldDefinitionOfDone(ctx)
	case task.FieldTargetFiles:
		return m.OldTargetFiles(ctx)
	case task.FieldCurrentDiff:
		return m.OldCurrentDiff(ctx)
	case task.FieldCommitMessage:
		return m.OldCommitMessage(ctx)
	case task.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldSubtaskIndex:
		return m.OldSubtaskIndex(ctx)
	case task.FieldIsOrchestrated:
		return m.OldIsOrchestrated(ctx)
	case task.FieldDryRun:
		return m.OldDryRun(ctx)
	case task.FieldBranch:
		return m.OldBranch(ctx)
	case task.FieldPrURL:
		return m.OldPrURL(ctx)
	case task.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case task.FieldDeliveryID:
		return m.OldDeliveryID(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case task.FieldDefinitionOfDone:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionOfDone(v)
		return nil
	case task.FieldTargetFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetFiles(v)
		return nil
	case task.FieldCurrentDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDiff(v)
		return nil
	case task.FieldCommitMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitMessage(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtaskIndex(v)
		return nil
	case task.FieldIsOrchestrated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOrchestrated(v)
		return nil
	case task.FieldDryRun:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDryRun(v)
		return nil
	case task.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case task.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case task.FieldDeliveryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryID(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addissue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.addattempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.addsubtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.addpr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldIssueNumber:
		return m.AddedIssueNumber()
	case task.FieldAttemptCount:
		return m.AddedAttemptCount()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case task.FieldSubtaskIndex:
		return m.AddedSubtaskIndex()
	case task.FieldPrNumber:
		return m.AddedPrNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtaskIndex(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldBody) {
		fields = append(fields, task.FieldBody)
	}
	if m.FieldCleared(task.FieldPlan) {
		fields = append(fields, task.FieldPlan)
	}
	if m.FieldCleared(task.FieldDefinitionOfDone) {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.FieldCleared(task.FieldTargetFiles) {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.FieldCleared(task.FieldCurrentDiff) {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.FieldCleared(task.FieldCommitMessage) {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	if m.FieldCleared(task.FieldFailureReason) {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldSubtaskIndex) {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.FieldCleared(task.FieldBranch) {
		fields = append(fields, task.FieldBranch)
	}
	if m.FieldCleared(task.FieldPrURL) {
		fields = append(fields, task.FieldPrURL)
	}
	if m.FieldCleared(task.FieldPrNumber) {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.FieldCleared(task.FieldDeliveryID) {
		fields = append(fields, task.FieldDeliveryID)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldDeletedAt) {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldBody:
		m.ClearBody()
		return nil
	case task.FieldPlan:
		m.ClearPlan()
		return nil
	case task.FieldDefinitionOfDone:
		m.ClearDefinitionOfDone()
		return nil
	case task.FieldTargetFiles:
		m.ClearTargetFiles()
		return nil
	case task.FieldCurrentDiff:
		m.ClearCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ClearCommitMessage()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	case task.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ClearSubtaskIndex()
		return nil
	case task.FieldBranch:
		m.ClearBranch()
		return nil
	case task.FieldPrURL:
		m.ClearPrURL()
		return nil
	case task.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case task.FieldDeliveryID:
		m.ClearDeliveryID()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldRepo:
		m.ResetRepo()
		return nil
	case task.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldBody:
		m.ResetBody()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPlan:
		m.ResetPlan()
		return nil
	case task.FieldDefinitionOfDone:
		m.ResetDefinitionOfDone()
		return nil
	case task.FieldTargetFiles:
		m.ResetTargetFiles()
		return nil
	case task.FieldCurrentDiff:
		m.ResetCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ResetCommitMessage()
		return nil
	case task.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ResetSubtaskIndex()
		return nil
	case task.FieldIsOrchestrated:
		m.ResetIsOrchestrated()
		return nil
	case task.FieldDryRun:
		m.ResetDryRun()
		return nil
	case task.FieldBranch:
		m.ResetBranch()
		return nil
	case task.FieldPrURL:
		m.ResetPrURL()
		return nil
	case task.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case task.FieldDeliveryID:
		m.ResetDeliveryID()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.session != nil {
		edges = append(edges, task.EdgeSession)
	}
	if m.progress_entries != nil {
		edges = append(edges, task.EdgeProgressEntries)
	}
	if m.attempt_records != nil {
		edges = append(edges, task.EdgeAttemptRecords)
	}
	if m.checkpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.observations != nil {
		edges = append(edges, task.EdgeObservations)
	}
	if m.patches != nil {
		edges = append(edges, task.EdgePatches)
	}
	if m.task_events != nil {
		edges = append(edges, task.EdgeTaskEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeProgressEntries:
		ids := make([]ent.Value, 0, len(m.progress_entries))
		for id := range m.progress_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAttemptRecords:
		ids := make([]ent.Value, 0, len(m.attempt_records))
		for id := range m.attempt_records {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeObservations:
		ids := make([]ent.Value, 0, len(m.observations))
		for id := range m.observations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgePatches:
		ids := make([]ent.Value, 0, len(m.patches))
		for id := range m.patches {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTaskEvents:
		ids := make([]ent.Value, 0, len(m.task_events))
		for id := range m.task_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedprogress_entries != nil {
		edges = append(edges, task.EdgeProgressEntries)
	}
	if m.removedattempt_records != nil {
		edges = append(edges, task.EdgeAttemptRecords)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.removedobservations != nil {
		edges = append(edges, task.EdgeObservations)
	}
	if m.removedpatches != nil {
		edges = append(edges, task.EdgePatches)
	}
	if m.removedtask_events != nil {
		edges = append(edges, task.EdgeTaskEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProgressEntries:
		ids := make([]ent.Value, 0, len(m.removedprogress_entries))
		for id := range m.removedprogress_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAttemptRecords:
		ids := make([]ent.Value, 0, len(m.removedattempt_records))
		for id := range m.removedattempt_records {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeObservations:
		ids := make([]ent.Value, 0, len(m.removedobservations))
		for id := range m.removedobservations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgePatches:
		ids := make([]ent.Value, 0, len(m.removedpatches))
		for id := range m.removedpatches {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTaskEvents:
		ids := make([]ent.Value, 0, len(m.removedtask_events))
		for id := range m.removedtask_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedsession {
		edges = append(edges, task.EdgeSession)
	}
	if m.clearedprogress_entries {
		edges = append(edges, task.EdgeProgressEntries)
	}
	if m.clearedattempt_records {
		edges = append(edges, task.EdgeAttemptRecords)
	}
	if m.clearedcheckpoints {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.clearedobservations {
		edges = append(edges, task.EdgeObservations)
	}
	if m.clearedpatches {
		edges = append(edges, task.EdgePatches)
	}
	if m.clearedtask_events {
		edges = append(edges, task.EdgeTaskEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSession:
		return m.clearedsession
	case task.EdgeProgressEntries:
		return m.clearedprogress_entries
	case task.EdgeAttemptRecords:
		return m.clearedattempt_records
	case task.EdgeCheckpoints:
		return m.clearedcheckpoints
	case task.EdgeObservations:
		return m.clearedobservations
	case task.EdgePatches:
		return m.clearedpatches
	case task.EdgeTaskEvents:
		return m.clearedtask_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSession:
		m.ResetSession()
		return nil
	case task.EdgeProgressEntries:
		m.ResetProgressEntries()
		return nil
	case task.EdgeAttemptRecords:
		m.ResetAttemptRecords()
		return nil
	case task.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case task.EdgeObservations:
		m.ResetObservations()
		return nil
	case task.EdgePatches:
		m.ResetPatches()
		return nil
	case task.EdgeTaskEvents:
		m.ResetTaskEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	event_type    *string
	phase         *string
	detail        *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TaskEvent, error)
	predicates    []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id string) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskEvent entities.
func (m *TaskEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetEventType sets the "event_type" field.
func (m *TaskEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TaskEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TaskEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPhase sets the "phase" field.
func (m *TaskEventMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskEventMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *TaskEventMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[taskevent.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *TaskEventMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskEventMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, taskevent.FieldPhase)
}

// SetDetail sets the "detail" field.
func (m *TaskEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *TaskEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *TaskEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[taskevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *TaskEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *TaskEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, taskevent.FieldDetail)
}

// SetMetadata sets the "metadata" field.
func (m *TaskEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[taskevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, taskevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task_id != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.event_type != nil {
		fields = append(fields, taskevent.FieldEventType)
	}
	if m.phase != nil {
		fields = append(fields, taskevent.FieldPhase)
	}
	if m.detail != nil {
		fields = append(fields, taskevent.FieldDetail)
	}
	if m.metadata != nil {
		fields = append(fields, taskevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, taskevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldEventType:
		return m.EventType()
	case taskevent.FieldPhase:
		return m.Phase()
	case taskevent.FieldDetail:
		return m.Detail()
	case taskevent.FieldMetadata:
		return m.Metadata()
	case taskevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldEventType:
		return m.OldEventType(ctx)
	case taskevent.FieldPhase:
		return m.OldPhase(ctx)
	case taskevent.FieldDetail:
		return m.OldDetail(ctx)
	case taskevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case taskevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case taskevent.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case taskevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case taskevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldPhase) {
		fields = append(fields, taskevent.FieldPhase)
	}
	if m.FieldCleared(taskevent.FieldDetail) {
		fields = append(fields, taskevent.FieldDetail)
	}
	if m.FieldCleared(taskevent.FieldMetadata) {
		fields = append(fields, taskevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldPhase:
		m.ClearPhase()
		return nil
	case taskevent.FieldDetail:
		m.ClearDetail()
		return nil
	case taskevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldEventType:
		m.ResetEventType()
		return nil
	case taskevent.FieldPhase:
		m.ResetPhase()
		return nil
	case taskevent.FieldDetail:
		m.ResetDetail()
		return nil
	case taskevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case taskevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	delivery_id     *string
	source          *string
	event_type      *string
	payload         *string
	status          *webhookevent.Status
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	next_retry_at   *time.Time
	last_error      *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WebhookEvent, error)
	predicates      []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliveryID sets the "delivery_id" field.
func (m *WebhookEventMutation) SetDeliveryID(s string) {
	m.delivery_id = &s
}

// DeliveryID returns the value of the "delivery_id" field in the mutation.
func (m *WebhookEventMutation) DeliveryID() (r string, exists bool) {
	v := m.delivery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryID returns the old "delivery_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldDeliveryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryID: %w", err)
	}
	return oldValue.DeliveryID, nil
}

// ResetDeliveryID resets all changes to the "delivery_id" field.
func (m *WebhookEventMutation) ResetDeliveryID() {
	m.delivery_id = nil
}

// SetSource sets the "source" field.
func (m *WebhookEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WebhookEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WebhookEventMutation) ResetSource() {
	m.source = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *WebhookEventMutation) SetStatus(w webhookevent.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookEventMutation) Status() (r webhookevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldStatus(ctx context.Context) (v webhookevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookEventMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *WebhookEventMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *WebhookEventMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *WebhookEventMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *WebhookEventMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *WebhookEventMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *WebhookEventMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *WebhookEventMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *WebhookEventMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *WebhookEventMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *WebhookEventMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *WebhookEventMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *WebhookEventMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *WebhookEventMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[webhookevent.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *WebhookEventMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *WebhookEventMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, webhookevent.FieldNextRetryAt)
}

// SetLastError sets the "last_error" field.
func (m *WebhookEventMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *WebhookEventMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *WebhookEventMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[webhookevent.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *WebhookEventMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *WebhookEventMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, webhookevent.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.delivery_id != nil {
		fields = append(fields, webhookevent.FieldDeliveryID)
	}
	if m.source != nil {
		fields = append(fields, webhookevent.FieldSource)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, webhookevent.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, webhookevent.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, webhookevent.FieldMaxAttempts)
	}
	if m.next_retry_at != nil {
		fields = append(fields, webhookevent.FieldNextRetryAt)
	}
	if m.last_error != nil {
		fields = append(fields, webhookevent.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, webhookevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldDeliveryID:
		return m.DeliveryID()
	case webhookevent.FieldSource:
		return m.Source()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldStatus:
		return m.Status()
	case webhookevent.FieldAttempts:
		return m.Attempts()
	case webhookevent.FieldMaxAttempts:
		return m.MaxAttempts()
	case webhookevent.FieldNextRetryAt:
		return m.NextRetryAt()
	case webhookevent.FieldLastError:
		return m.LastError()
	case webhookevent.FieldCreatedAt:
		return m.CreatedAt()
	case webhookevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldDeliveryID:
		return m.OldDeliveryID(ctx)
	case webhookevent.FieldSource:
		return m.OldSource(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldStatus:
		return m.OldStatus(ctx)
	case webhookevent.FieldAttempts:
		return m.OldAttempts(ctx)
	case webhookevent.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case webhookevent.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case webhookevent.FieldLastError:
		return m.OldLastError(ctx)
	case webhookevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldDeliveryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryID(v)
		return nil
	case webhookevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldStatus:
		v, ok := value.(webhookevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case webhookevent.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case webhookevent.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case webhookevent.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case webhookevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, webhookevent.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, webhookevent.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldAttempts:
		return m.AddedAttempts()
	case webhookevent.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case webhookevent.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldNextRetryAt) {
		fields = append(fields, webhookevent.FieldNextRetryAt)
	}
	if m.FieldCleared(webhookevent.FieldLastError) {
		fields = append(fields, webhookevent.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case webhookevent.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldDeliveryID:
		m.ResetDeliveryID()
		return nil
	case webhookevent.FieldSource:
		m.ResetSource()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookevent.FieldAttempts:
		m.ResetAttempts()
		return nil
	case webhookevent.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case webhookevent.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case webhookevent.FieldLastError:
		m.ResetLastError()
		return nil
	case webhookevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
