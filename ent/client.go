// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forgeflow/forgeflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/taskevent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArchivalMemory is the client for interacting with the ArchivalMemory builders.
	ArchivalMemory *ArchivalMemoryClient
	// AttemptRecord is the client for interacting with the AttemptRecord builders.
	AttemptRecord *AttemptRecordClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// LearnedPattern is the client for interacting with the LearnedPattern builders.
	LearnedPattern *LearnedPatternClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// ModelConfigAudit is the client for interacting with the ModelConfigAudit builders.
	ModelConfigAudit *ModelConfigAuditClient
	// Observation is the client for interacting with the Observation builders.
	Observation *ObservationClient
	// Patch is the client for interacting with the Patch builders.
	Patch *PatchClient
	// ProgressEntry is the client for interacting with the ProgressEntry builders.
	ProgressEntry *ProgressEntryClient
	// Repository is the client for interacting with the Repository builders.
	Repository *RepositoryClient
	// SessionMemory is the client for interacting with the SessionMemory builders.
	SessionMemory *SessionMemoryClient
	// StaticMemory is the client for interacting with the StaticMemory builders.
	StaticMemory *StaticMemoryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvent is the client for interacting with the TaskEvent builders.
	TaskEvent *TaskEventClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArchivalMemory = NewArchivalMemoryClient(c.config)
	c.AttemptRecord = NewAttemptRecordClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.LearnedPattern = NewLearnedPatternClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.ModelConfigAudit = NewModelConfigAuditClient(c.config)
	c.Observation = NewObservationClient(c.config)
	c.Patch = NewPatchClient(c.config)
	c.ProgressEntry = NewProgressEntryClient(c.config)
	c.Repository = NewRepositoryClient(c.config)
	c.SessionMemory = NewSessionMemoryClient(c.config)
	c.StaticMemory = NewStaticMemoryClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvent = NewTaskEventClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ArchivalMemory:   NewArchivalMemoryClient(cfg),
		AttemptRecord:    NewAttemptRecordClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		LearnedPattern:   NewLearnedPatternClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		ModelConfigAudit: NewModelConfigAuditClient(cfg),
		Observation:      NewObservationClient(cfg),
		Patch:            NewPatchClient(cfg),
		ProgressEntry:    NewProgressEntryClient(cfg),
		Repository:       NewRepositoryClient(cfg),
		SessionMemory:    NewSessionMemoryClient(cfg),
		StaticMemory:     NewStaticMemoryClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskEvent:        NewTaskEventClient(cfg),
		WebhookEvent:     NewWebhookEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ArchivalMemory:   NewArchivalMemoryClient(cfg),
		AttemptRecord:    NewAttemptRecordClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		LearnedPattern:   NewLearnedPatternClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		ModelConfigAudit: NewModelConfigAuditClient(cfg),
		Observation:      NewObservationClient(cfg),
		Patch:            NewPatchClient(cfg),
		ProgressEntry:    NewProgressEntryClient(cfg),
		Repository:       NewRepositoryClient(cfg),
		SessionMemory:    NewSessionMemoryClient(cfg),
		StaticMemory:     NewStaticMemoryClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskEvent:        NewTaskEventClient(cfg),
		WebhookEvent:     NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArchivalMemory.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ArchivalMemory, c.AttemptRecord, c.Checkpoint, c.LearnedPattern,
		c.ModelConfig, c.ModelConfigAudit, c.Observation, c.Patch, c.ProgressEntry,
		c.Repository, c.SessionMemory, c.StaticMemory, c.Task, c.TaskEvent,
		c.WebhookEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ArchivalMemory, c.AttemptRecord, c.Checkpoint, c.LearnedPattern,
		c.ModelConfig, c.ModelConfigAudit, c.Observation, c.Patch, c.ProgressEntry,
		c.Repository, c.SessionMemory, c.StaticMemory, c.Task, c.TaskEvent,
		c.WebhookEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArchivalMemoryMutation:
		return c.ArchivalMemory.mutate(ctx, m)
	case *AttemptRecordMutation:
		return c.AttemptRecord.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *LearnedPatternMutation:
		return c.LearnedPattern.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *ModelConfigAuditMutation:
		return c.ModelConfigAudit.mutate(ctx, m)
	case *ObservationMutation:
		return c.Observation.mutate(ctx, m)
	case *PatchMutation:
		return c.Patch.mutate(ctx, m)
	case *ProgressEntryMutation:
		return c.ProgressEntry.mutate(ctx, m)
	case *RepositoryMutation:
		return c.Repository.mutate(ctx, m)
	case *SessionMemoryMutation:
		return c.SessionMemory.mutate(ctx, m)
	case *StaticMemoryMutation:
		return c.StaticMemory.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEventMutation:
		return c.TaskEvent.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArchivalMemoryClient is a client for the ArchivalMemory schema.
type ArchivalMemoryClient struct {
	config
}

// NewArchivalMemoryClient returns a client for the ArchivalMemory from the given config.
func NewArchivalMemoryClient(c config) *ArchivalMemoryClient {
	return &ArchivalMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `archivalmemory.Hooks(f(g(h())))`.
func (c *ArchivalMemoryClient) Use(hooks ...Hook) {
	c.hooks.ArchivalMemory = append(c.hooks.ArchivalMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `archivalmemory.Intercept(f(g(h())))`.
func (c *ArchivalMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArchivalMemory = append(c.inters.ArchivalMemory, interceptors...)
}

// Create returns a builder for creating a ArchivalMemory entity.
func (c *ArchivalMemoryClient) Create() *ArchivalMemoryCreate {
	mutation := newArchivalMemoryMutation(c.config, OpCreate)
	return &ArchivalMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArchivalMemory entities.
func (c *ArchivalMemoryClient) CreateBulk(builders ...*ArchivalMemoryCreate) *ArchivalMemoryCreateBulk {
	return &ArchivalMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArchivalMemoryClient) MapCreateBulk(slice any, setFunc func(*ArchivalMemoryCreate, int)) *ArchivalMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArchivalMemoryCreateBulk{err: fmt.Errorf("calling to ArchivalMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArchivalMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArchivalMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArchivalMemory.
func (c *ArchivalMemoryClient) Update() *ArchivalMemoryUpdate {
	mutation := newArchivalMemoryMutation(c.config, OpUpdate)
	return &ArchivalMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArchivalMemoryClient) UpdateOne(_m *ArchivalMemory) *ArchivalMemoryUpdateOne {
	mutation := newArchivalMemoryMutation(c.config, OpUpdateOne, withArchivalMemory(_m))
	return &ArchivalMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArchivalMemoryClient) UpdateOneID(id string) *ArchivalMemoryUpdateOne {
	mutation := newArchivalMemoryMutation(c.config, OpUpdateOne, withArchivalMemoryID(id))
	return &ArchivalMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArchivalMemory.
func (c *ArchivalMemoryClient) Delete() *ArchivalMemoryDelete {
	mutation := newArchivalMemoryMutation(c.config, OpDelete)
	return &ArchivalMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArchivalMemoryClient) DeleteOne(_m *ArchivalMemory) *ArchivalMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArchivalMemoryClient) DeleteOneID(id string) *ArchivalMemoryDeleteOne {
	builder := c.Delete().Where(archivalmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArchivalMemoryDeleteOne{builder}
}

// Query returns a query builder for ArchivalMemory.
func (c *ArchivalMemoryClient) Query() *ArchivalMemoryQuery {
	return &ArchivalMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArchivalMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a ArchivalMemory entity by its id.
func (c *ArchivalMemoryClient) Get(ctx context.Context, id string) (*ArchivalMemory, error) {
	return c.Query().Where(archivalmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArchivalMemoryClient) GetX(ctx context.Context, id string) *ArchivalMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArchivalMemoryClient) Hooks() []Hook {
	return c.hooks.ArchivalMemory
}

// Interceptors returns the client interceptors.
func (c *ArchivalMemoryClient) Interceptors() []Interceptor {
	return c.inters.ArchivalMemory
}

func (c *ArchivalMemoryClient) mutate(ctx context.Context, m *ArchivalMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArchivalMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArchivalMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArchivalMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArchivalMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArchivalMemory mutation op: %q", m.Op())
	}
}

// AttemptRecordClient is a client for the AttemptRecord schema.
type AttemptRecordClient struct {
	config
}

// NewAttemptRecordClient returns a client for the AttemptRecord from the given config.
func NewAttemptRecordClient(c config) *AttemptRecordClient {
	return &AttemptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptrecord.Hooks(f(g(h())))`.
func (c *AttemptRecordClient) Use(hooks ...Hook) {
	c.hooks.AttemptRecord = append(c.hooks.AttemptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptrecord.Intercept(f(g(h())))`.
func (c *AttemptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptRecord = append(c.inters.AttemptRecord, interceptors...)
}

// Create returns a builder for creating a AttemptRecord entity.
func (c *AttemptRecordClient) Create() *AttemptRecordCreate {
	mutation := newAttemptRecordMutation(c.config, OpCreate)
	return &AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptRecord entities.
func (c *AttemptRecordClient) CreateBulk(builders ...*AttemptRecordCreate) *AttemptRecordCreateBulk {
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptRecordClient) MapCreateBulk(slice any, setFunc func(*AttemptRecordCreate, int)) *AttemptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptRecordCreateBulk{err: fmt.Errorf("calling to AttemptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptRecord.
func (c *AttemptRecordClient) Update() *AttemptRecordUpdate {
	mutation := newAttemptRecordMutation(c.config, OpUpdate)
	return &AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptRecordClient) UpdateOne(_m *AttemptRecord) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecord(_m))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptRecordClient) UpdateOneID(id string) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecordID(id))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptRecord.
func (c *AttemptRecordClient) Delete() *AttemptRecordDelete {
	mutation := newAttemptRecordMutation(c.config, OpDelete)
	return &AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptRecordClient) DeleteOne(_m *AttemptRecord) *AttemptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptRecordClient) DeleteOneID(id string) *AttemptRecordDeleteOne {
	builder := c.Delete().Where(attemptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptRecordDeleteOne{builder}
}

// Query returns a query builder for AttemptRecord.
func (c *AttemptRecordClient) Query() *AttemptRecordQuery {
	return &AttemptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptRecord entity by its id.
func (c *AttemptRecordClient) Get(ctx context.Context, id string) (*AttemptRecord, error) {
	return c.Query().Where(attemptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptRecordClient) GetX(ctx context.Context, id string) *AttemptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptRecordClient) Hooks() []Hook {
	return c.hooks.AttemptRecord
}

// Interceptors returns the client interceptors.
func (c *AttemptRecordClient) Interceptors() []Interceptor {
	return c.inters.AttemptRecord
}

func (c *AttemptRecordClient) mutate(ctx context.Context, m *AttemptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptRecord mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// LearnedPatternClient is a client for the LearnedPattern schema.
type LearnedPatternClient struct {
	config
}

// NewLearnedPatternClient returns a client for the LearnedPattern from the given config.
func NewLearnedPatternClient(c config) *LearnedPatternClient {
	return &LearnedPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnedpattern.Hooks(f(g(h())))`.
func (c *LearnedPatternClient) Use(hooks ...Hook) {
	c.hooks.LearnedPattern = append(c.hooks.LearnedPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnedpattern.Intercept(f(g(h())))`.
func (c *LearnedPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnedPattern = append(c.inters.LearnedPattern, interceptors...)
}

// Create returns a builder for creating a LearnedPattern entity.
func (c *LearnedPatternClient) Create() *LearnedPatternCreate {
	mutation := newLearnedPatternMutation(c.config, OpCreate)
	return &LearnedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnedPattern entities.
func (c *LearnedPatternClient) CreateBulk(builders ...*LearnedPatternCreate) *LearnedPatternCreateBulk {
	return &LearnedPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnedPatternClient) MapCreateBulk(slice any, setFunc func(*LearnedPatternCreate, int)) *LearnedPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnedPatternCreateBulk{err: fmt.Errorf("calling to LearnedPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnedPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnedPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnedPattern.
func (c *LearnedPatternClient) Update() *LearnedPatternUpdate {
	mutation := newLearnedPatternMutation(c.config, OpUpdate)
	return &LearnedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnedPatternClient) UpdateOne(_m *LearnedPattern) *LearnedPatternUpdateOne {
	mutation := newLearnedPatternMutation(c.config, OpUpdateOne, withLearnedPattern(_m))
	return &LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnedPatternClient) UpdateOneID(id string) *LearnedPatternUpdateOne {
	mutation := newLearnedPatternMutation(c.config, OpUpdateOne, withLearnedPatternID(id))
	return &LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnedPattern.
func (c *LearnedPatternClient) Delete() *LearnedPatternDelete {
	mutation := newLearnedPatternMutation(c.config, OpDelete)
	return &LearnedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnedPatternClient) DeleteOne(_m *LearnedPattern) *LearnedPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnedPatternClient) DeleteOneID(id string) *LearnedPatternDeleteOne {
	builder := c.Delete().Where(learnedpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnedPatternDeleteOne{builder}
}

// Query returns a query builder for LearnedPattern.
func (c *LearnedPatternClient) Query() *LearnedPatternQuery {
	return &LearnedPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnedPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnedPattern entity by its id.
func (c *LearnedPatternClient) Get(ctx context.Context, id string) (*LearnedPattern, error) {
	return c.Query().Where(learnedpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnedPatternClient) GetX(ctx context.Context, id string) *LearnedPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnedPatternClient) Hooks() []Hook {
	return c.hooks.LearnedPattern
}

// Interceptors returns the client interceptors.
func (c *LearnedPatternClient) Interceptors() []Interceptor {
	return c.inters.LearnedPattern
}

func (c *LearnedPatternClient) mutate(ctx context.Context, m *LearnedPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnedPattern mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(_m *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(_m))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id string) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(_m *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id string) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id string) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id string) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// ModelConfigAuditClient is a client for the ModelConfigAudit schema.
type ModelConfigAuditClient struct {
	config
}

// NewModelConfigAuditClient returns a client for the ModelConfigAudit from the given config.
func NewModelConfigAuditClient(c config) *ModelConfigAuditClient {
	return &ModelConfigAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfigaudit.Hooks(f(g(h())))`.
func (c *ModelConfigAuditClient) Use(hooks ...Hook) {
	c.hooks.ModelConfigAudit = append(c.hooks.ModelConfigAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfigaudit.Intercept(f(g(h())))`.
func (c *ModelConfigAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfigAudit = append(c.inters.ModelConfigAudit, interceptors...)
}

// Create returns a builder for creating a ModelConfigAudit entity.
func (c *ModelConfigAuditClient) Create() *ModelConfigAuditCreate {
	mutation := newModelConfigAuditMutation(c.config, OpCreate)
	return &ModelConfigAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfigAudit entities.
func (c *ModelConfigAuditClient) CreateBulk(builders ...*ModelConfigAuditCreate) *ModelConfigAuditCreateBulk {
	return &ModelConfigAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigAuditClient) MapCreateBulk(slice any, setFunc func(*ModelConfigAuditCreate, int)) *ModelConfigAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigAuditCreateBulk{err: fmt.Errorf("calling to ModelConfigAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Update() *ModelConfigAuditUpdate {
	mutation := newModelConfigAuditMutation(c.config, OpUpdate)
	return &ModelConfigAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigAuditClient) UpdateOne(_m *ModelConfigAudit) *ModelConfigAuditUpdateOne {
	mutation := newModelConfigAuditMutation(c.config, OpUpdateOne, withModelConfigAudit(_m))
	return &ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigAuditClient) UpdateOneID(id string) *ModelConfigAuditUpdateOne {
	mutation := newModelConfigAuditMutation(c.config, OpUpdateOne, withModelConfigAuditID(id))
	return &ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Delete() *ModelConfigAuditDelete {
	mutation := newModelConfigAuditMutation(c.config, OpDelete)
	return &ModelConfigAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigAuditClient) DeleteOne(_m *ModelConfigAudit) *ModelConfigAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigAuditClient) DeleteOneID(id string) *ModelConfigAuditDeleteOne {
	builder := c.Delete().Where(modelconfigaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigAuditDeleteOne{builder}
}

// Query returns a query builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Query() *ModelConfigAuditQuery {
	return &ModelConfigAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfigAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfigAudit entity by its id.
func (c *ModelConfigAuditClient) Get(ctx context.Context, id string) (*ModelConfigAudit, error) {
	return c.Query().Where(modelconfigaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigAuditClient) GetX(ctx context.Context, id string) *ModelConfigAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigAuditClient) Hooks() []Hook {
	return c.hooks.ModelConfigAudit
}

// Interceptors returns the client interceptors.
func (c *ModelConfigAuditClient) Interceptors() []Interceptor {
	return c.inters.ModelConfigAudit
}

func (c *ModelConfigAuditClient) mutate(ctx context.Context, m *ModelConfigAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfigAudit mutation op: %q", m.Op())
	}
}

// ObservationClient is a client for the Observation schema.
type ObservationClient struct {
	config
}

// NewObservationClient returns a client for the Observation from the given config.
func NewObservationClient(c config) *ObservationClient {
	return &ObservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observation.Hooks(f(g(h())))`.
func (c *ObservationClient) Use(hooks ...Hook) {
	c.hooks.Observation = append(c.hooks.Observation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observation.Intercept(f(g(h())))`.
func (c *ObservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Observation = append(c.inters.Observation, interceptors...)
}

// Create returns a builder for creating a Observation entity.
func (c *ObservationClient) Create() *ObservationCreate {
	mutation := newObservationMutation(c.config, OpCreate)
	return &ObservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Observation entities.
func (c *ObservationClient) CreateBulk(builders ...*ObservationCreate) *ObservationCreateBulk {
	return &ObservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservationClient) MapCreateBulk(slice any, setFunc func(*ObservationCreate, int)) *ObservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservationCreateBulk{err: fmt.Errorf("calling to ObservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Observation.
func (c *ObservationClient) Update() *ObservationUpdate {
	mutation := newObservationMutation(c.config, OpUpdate)
	return &ObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservationClient) UpdateOne(_m *Observation) *ObservationUpdateOne {
	mutation := newObservationMutation(c.config, OpUpdateOne, withObservation(_m))
	return &ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservationClient) UpdateOneID(id string) *ObservationUpdateOne {
	mutation := newObservationMutation(c.config, OpUpdateOne, withObservationID(id))
	return &ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Observation.
func (c *ObservationClient) Delete() *ObservationDelete {
	mutation := newObservationMutation(c.config, OpDelete)
	return &ObservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservationClient) DeleteOne(_m *Observation) *ObservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservationClient) DeleteOneID(id string) *ObservationDeleteOne {
	builder := c.Delete().Where(observation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservationDeleteOne{builder}
}

// Query returns a query builder for Observation.
func (c *ObservationClient) Query() *ObservationQuery {
	return &ObservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservation},
		inters: c.Interceptors(),
	}
}

// Get returns a Observation entity by its id.
func (c *ObservationClient) Get(ctx context.Context, id string) (*Observation, error) {
	return c.Query().Where(observation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservationClient) GetX(ctx context.Context, id string) *Observation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObservationClient) Hooks() []Hook {
	return c.hooks.Observation
}

// Interceptors returns the client interceptors.
func (c *ObservationClient) Interceptors() []Interceptor {
	return c.inters.Observation
}

func (c *ObservationClient) mutate(ctx context.Context, m *ObservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Observation mutation op: %q", m.Op())
	}
}

// PatchClient is a client for the Patch schema.
type PatchClient struct {
	config
}

// NewPatchClient returns a client for the Patch from the given config.
func NewPatchClient(c config) *PatchClient {
	return &PatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patch.Hooks(f(g(h())))`.
func (c *PatchClient) Use(hooks ...Hook) {
	c.hooks.Patch = append(c.hooks.Patch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patch.Intercept(f(g(h())))`.
func (c *PatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patch = append(c.inters.Patch, interceptors...)
}

// Create returns a builder for creating a Patch entity.
func (c *PatchClient) Create() *PatchCreate {
	mutation := newPatchMutation(c.config, OpCreate)
	return &PatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patch entities.
func (c *PatchClient) CreateBulk(builders ...*PatchCreate) *PatchCreateBulk {
	return &PatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatchClient) MapCreateBulk(slice any, setFunc func(*PatchCreate, int)) *PatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatchCreateBulk{err: fmt.Errorf("calling to PatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patch.
func (c *PatchClient) Update() *PatchUpdate {
	mutation := newPatchMutation(c.config, OpUpdate)
	return &PatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatchClient) UpdateOne(_m *Patch) *PatchUpdateOne {
	mutation := newPatchMutation(c.config, OpUpdateOne, withPatch(_m))
	return &PatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatchClient) UpdateOneID(id string) *PatchUpdateOne {
	mutation := newPatchMutation(c.config, OpUpdateOne, withPatchID(id))
	return &PatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patch.
func (c *PatchClient) Delete() *PatchDelete {
	mutation := newPatchMutation(c.config, OpDelete)
	return &PatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatchClient) DeleteOne(_m *Patch) *PatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatchClient) DeleteOneID(id string) *PatchDeleteOne {
	builder := c.Delete().Where(patch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatchDeleteOne{builder}
}

// Query returns a query builder for Patch.
func (c *PatchClient) Query() *PatchQuery {
	return &PatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Patch entity by its id.
func (c *PatchClient) Get(ctx context.Context, id string) (*Patch, error) {
	return c.Query().Where(patch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatchClient) GetX(ctx context.Context, id string) *Patch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatchClient) Hooks() []Hook {
	return c.hooks.Patch
}

// Interceptors returns the client interceptors.
func (c *PatchClient) Interceptors() []Interceptor {
	return c.inters.Patch
}

func (c *PatchClient) mutate(ctx context.Context, m *PatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patch mutation op: %q", m.Op())
	}
}

// ProgressEntryClient is a client for the ProgressEntry schema.
type ProgressEntryClient struct {
	config
}

// NewProgressEntryClient returns a client for the ProgressEntry from the given config.
func NewProgressEntryClient(c config) *ProgressEntryClient {
	return &ProgressEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressentry.Hooks(f(g(h())))`.
func (c *ProgressEntryClient) Use(hooks ...Hook) {
	c.hooks.ProgressEntry = append(c.hooks.ProgressEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressentry.Intercept(f(g(h())))`.
func (c *ProgressEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressEntry = append(c.inters.ProgressEntry, interceptors...)
}

// Create returns a builder for creating a ProgressEntry entity.
func (c *ProgressEntryClient) Create() *ProgressEntryCreate {
	mutation := newProgressEntryMutation(c.config, OpCreate)
	return &ProgressEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressEntry entities.
func (c *ProgressEntryClient) CreateBulk(builders ...*ProgressEntryCreate) *ProgressEntryCreateBulk {
	return &ProgressEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressEntryClient) MapCreateBulk(slice any, setFunc func(*ProgressEntryCreate, int)) *ProgressEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressEntryCreateBulk{err: fmt.Errorf("calling to ProgressEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressEntry.
func (c *ProgressEntryClient) Update() *ProgressEntryUpdate {
	mutation := newProgressEntryMutation(c.config, OpUpdate)
	return &ProgressEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressEntryClient) UpdateOne(_m *ProgressEntry) *ProgressEntryUpdateOne {
	mutation := newProgressEntryMutation(c.config, OpUpdateOne, withProgressEntry(_m))
	return &ProgressEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressEntryClient) UpdateOneID(id string) *ProgressEntryUpdateOne {
	mutation := newProgressEntryMutation(c.config, OpUpdateOne, withProgressEntryID(id))
	return &ProgressEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressEntry.
func (c *ProgressEntryClient) Delete() *ProgressEntryDelete {
	mutation := newProgressEntryMutation(c.config, OpDelete)
	return &ProgressEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressEntryClient) DeleteOne(_m *ProgressEntry) *ProgressEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressEntryClient) DeleteOneID(id string) *ProgressEntryDeleteOne {
	builder := c.Delete().Where(progressentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressEntryDeleteOne{builder}
}

// Query returns a query builder for ProgressEntry.
func (c *ProgressEntryClient) Query() *ProgressEntryQuery {
	return &ProgressEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressEntry entity by its id.
func (c *ProgressEntryClient) Get(ctx context.Context, id string) (*ProgressEntry, error) {
	return c.Query().Where(progressentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressEntryClient) GetX(ctx context.Context, id string) *ProgressEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressEntryClient) Hooks() []Hook {
	return c.hooks.ProgressEntry
}

// Interceptors returns the client interceptors.
func (c *ProgressEntryClient) Interceptors() []Interceptor {
	return c.inters.ProgressEntry
}

func (c *ProgressEntryClient) mutate(ctx context.Context, m *ProgressEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressEntry mutation op: %q", m.Op())
	}
}

// RepositoryClient is a client for the Repository schema.
type RepositoryClient struct {
	config
}

// NewRepositoryClient returns a client for the Repository from the given config.
func NewRepositoryClient(c config) *RepositoryClient {
	return &RepositoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repository.Hooks(f(g(h())))`.
func (c *RepositoryClient) Use(hooks ...Hook) {
	c.hooks.Repository = append(c.hooks.Repository, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repository.Intercept(f(g(h())))`.
func (c *RepositoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Repository = append(c.inters.Repository, interceptors...)
}

// Create returns a builder for creating a Repository entity.
func (c *RepositoryClient) Create() *RepositoryCreate {
	mutation := newRepositoryMutation(c.config, OpCreate)
	return &RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Repository entities.
func (c *RepositoryClient) CreateBulk(builders ...*RepositoryCreate) *RepositoryCreateBulk {
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepositoryClient) MapCreateBulk(slice any, setFunc func(*RepositoryCreate, int)) *RepositoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepositoryCreateBulk{err: fmt.Errorf("calling to RepositoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepositoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Repository.
func (c *RepositoryClient) Update() *RepositoryUpdate {
	mutation := newRepositoryMutation(c.config, OpUpdate)
	return &RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepositoryClient) UpdateOne(_m *Repository) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepository(_m))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepositoryClient) UpdateOneID(id string) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepositoryID(id))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Repository.
func (c *RepositoryClient) Delete() *RepositoryDelete {
	mutation := newRepositoryMutation(c.config, OpDelete)
	return &RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepositoryClient) DeleteOne(_m *Repository) *RepositoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepositoryClient) DeleteOneID(id string) *RepositoryDeleteOne {
	builder := c.Delete().Where(repository.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepositoryDeleteOne{builder}
}

// Query returns a query builder for Repository.
func (c *RepositoryClient) Query() *RepositoryQuery {
	return &RepositoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepository},
		inters: c.Interceptors(),
	}
}

// Get returns a Repository entity by its id.
func (c *RepositoryClient) Get(ctx context.Context, id string) (*Repository, error) {
	return c.Query().Where(repository.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepositoryClient) GetX(ctx context.Context, id string) *Repository {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RepositoryClient) Hooks() []Hook {
	return c.hooks.Repository
}

// Interceptors returns the client interceptors.
func (c *RepositoryClient) Interceptors() []Interceptor {
	return c.inters.Repository
}

func (c *RepositoryClient) mutate(ctx context.Context, m *RepositoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Repository mutation op: %q", m.Op())
	}
}

// SessionMemoryClient is a client for the SessionMemory schema.
type SessionMemoryClient struct {
	config
}

// NewSessionMemoryClient returns a client for the SessionMemory from the given config.
func NewSessionMemoryClient(c config) *SessionMemoryClient {
	return &SessionMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmemory.Hooks(f(g(h())))`.
func (c *SessionMemoryClient) Use(hooks ...Hook) {
	c.hooks.SessionMemory = append(c.hooks.SessionMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmemory.Intercept(f(g(h())))`.
func (c *SessionMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMemory = append(c.inters.SessionMemory, interceptors...)
}

// Create returns a builder for creating a SessionMemory entity.
func (c *SessionMemoryClient) Create() *SessionMemoryCreate {
	mutation := newSessionMemoryMutation(c.config, OpCreate)
	return &SessionMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMemory entities.
func (c *SessionMemoryClient) CreateBulk(builders ...*SessionMemoryCreate) *SessionMemoryCreateBulk {
	return &SessionMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMemoryClient) MapCreateBulk(slice any, setFunc func(*SessionMemoryCreate, int)) *SessionMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMemoryCreateBulk{err: fmt.Errorf("calling to SessionMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMemory.
func (c *SessionMemoryClient) Update() *SessionMemoryUpdate {
	mutation := newSessionMemoryMutation(c.config, OpUpdate)
	return &SessionMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMemoryClient) UpdateOne(_m *SessionMemory) *SessionMemoryUpdateOne {
	mutation := newSessionMemoryMutation(c.config, OpUpdateOne, withSessionMemory(_m))
	return &SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMemoryClient) UpdateOneID(id string) *SessionMemoryUpdateOne {
	mutation := newSessionMemoryMutation(c.config, OpUpdateOne, withSessionMemoryID(id))
	return &SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMemory.
func (c *SessionMemoryClient) Delete() *SessionMemoryDelete {
	mutation := newSessionMemoryMutation(c.config, OpDelete)
	return &SessionMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMemoryClient) DeleteOne(_m *SessionMemory) *SessionMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMemoryClient) DeleteOneID(id string) *SessionMemoryDeleteOne {
	builder := c.Delete().Where(sessionmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMemoryDeleteOne{builder}
}

// Query returns a query builder for SessionMemory.
func (c *SessionMemoryClient) Query() *SessionMemoryQuery {
	return &SessionMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMemory entity by its id.
func (c *SessionMemoryClient) Get(ctx context.Context, id string) (*SessionMemory, error) {
	return c.Query().Where(sessionmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMemoryClient) GetX(ctx context.Context, id string) *SessionMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionMemoryClient) Hooks() []Hook {
	return c.hooks.SessionMemory
}

// Interceptors returns the client interceptors.
func (c *SessionMemoryClient) Interceptors() []Interceptor {
	return c.inters.SessionMemory
}

func (c *SessionMemoryClient) mutate(ctx context.Context, m *SessionMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMemory mutation op: %q", m.Op())
	}
}

// StaticMemoryClient is a client for the StaticMemory schema.
type StaticMemoryClient struct {
	config
}

// NewStaticMemoryClient returns a client for the StaticMemory from the given config.
func NewStaticMemoryClient(c config) *StaticMemoryClient {
	return &StaticMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staticmemory.Hooks(f(g(h())))`.
func (c *StaticMemoryClient) Use(hooks ...Hook) {
	c.hooks.StaticMemory = append(c.hooks.StaticMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staticmemory.Intercept(f(g(h())))`.
func (c *StaticMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaticMemory = append(c.inters.StaticMemory, interceptors...)
}

// Create returns a builder for creating a StaticMemory entity.
func (c *StaticMemoryClient) Create() *StaticMemoryCreate {
	mutation := newStaticMemoryMutation(c.config, OpCreate)
	return &StaticMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaticMemory entities.
func (c *StaticMemoryClient) CreateBulk(builders ...*StaticMemoryCreate) *StaticMemoryCreateBulk {
	return &StaticMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaticMemoryClient) MapCreateBulk(slice any, setFunc func(*StaticMemoryCreate, int)) *StaticMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaticMemoryCreateBulk{err: fmt.Errorf("calling to StaticMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaticMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaticMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaticMemory.
func (c *StaticMemoryClient) Update() *StaticMemoryUpdate {
	mutation := newStaticMemoryMutation(c.config, OpUpdate)
	return &StaticMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaticMemoryClient) UpdateOne(_m *StaticMemory) *StaticMemoryUpdateOne {
	mutation := newStaticMemoryMutation(c.config, OpUpdateOne, withStaticMemory(_m))
	return &StaticMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaticMemoryClient) UpdateOneID(id string) *StaticMemoryUpdateOne {
	mutation := newStaticMemoryMutation(c.config, OpUpdateOne, withStaticMemoryID(id))
	return &StaticMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaticMemory.
func (c *StaticMemoryClient) Delete() *StaticMemoryDelete {
	mutation := newStaticMemoryMutation(c.config, OpDelete)
	return &StaticMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaticMemoryClient) DeleteOne(_m *StaticMemory) *StaticMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaticMemoryClient) DeleteOneID(id string) *StaticMemoryDeleteOne {
	builder := c.Delete().Where(staticmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaticMemoryDeleteOne{builder}
}

// Query returns a query builder for StaticMemory.
func (c *StaticMemoryClient) Query() *StaticMemoryQuery {
	return &StaticMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaticMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a StaticMemory entity by its id.
func (c *StaticMemoryClient) Get(ctx context.Context, id string) (*StaticMemory, error) {
	return c.Query().Where(staticmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaticMemoryClient) GetX(ctx context.Context, id string) *StaticMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaticMemoryClient) Hooks() []Hook {
	return c.hooks.StaticMemory
}

// Interceptors returns the client interceptors.
func (c *StaticMemoryClient) Interceptors() []Interceptor {
	return c.inters.StaticMemory
}

func (c *StaticMemoryClient) mutate(ctx context.Context, m *StaticMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaticMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaticMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaticMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaticMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StaticMemory mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Task.
func (c *TaskClient) QuerySession(_m *Task) *SessionMemoryQuery {
	query := (&SessionMemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(sessionmemory.Table, sessionmemory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, task.SessionTable, task.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProgressEntries queries the progress_entries edge of a Task.
func (c *TaskClient) QueryProgressEntries(_m *Task) *ProgressEntryQuery {
	query := (&ProgressEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(progressentry.Table, progressentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ProgressEntriesTable, task.ProgressEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttemptRecords queries the attempt_records edge of a Task.
func (c *TaskClient) QueryAttemptRecords(_m *Task) *AttemptRecordQuery {
	query := (&AttemptRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(attemptrecord.Table, attemptrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AttemptRecordsTable, task.AttemptRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a Task.
func (c *TaskClient) QueryCheckpoints(_m *Task) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CheckpointsTable, task.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryObservations queries the observations edge of a Task.
func (c *TaskClient) QueryObservations(_m *Task) *ObservationQuery {
	query := (&ObservationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(observation.Table, observation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ObservationsTable, task.ObservationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatches queries the patches edge of a Task.
func (c *TaskClient) QueryPatches(_m *Task) *PatchQuery {
	query := (&PatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(patch.Table, patch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.PatchesTable, task.PatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTaskEvents queries the task_events edge of a Task.
func (c *TaskClient) QueryTaskEvents(_m *Task) *TaskEventQuery {
	query := (&TaskEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskevent.Table, taskevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.TaskEventsTable, task.TaskEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskEventClient is a client for the TaskEvent schema.
type TaskEventClient struct {
	config
}

// NewTaskEventClient returns a client for the TaskEvent from the given config.
func NewTaskEventClient(c config) *TaskEventClient {
	return &TaskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevent.Hooks(f(g(h())))`.
func (c *TaskEventClient) Use(hooks ...Hook) {
	c.hooks.TaskEvent = append(c.hooks.TaskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevent.Intercept(f(g(h())))`.
func (c *TaskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvent = append(c.inters.TaskEvent, interceptors...)
}

// Create returns a builder for creating a TaskEvent entity.
func (c *TaskEventClient) Create() *TaskEventCreate {
	mutation := newTaskEventMutation(c.config, OpCreate)
	return &TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvent entities.
func (c *TaskEventClient) CreateBulk(builders ...*TaskEventCreate) *TaskEventCreateBulk {
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEventClient) MapCreateBulk(slice any, setFunc func(*TaskEventCreate, int)) *TaskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEventCreateBulk{err: fmt.Errorf("calling to TaskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvent.
func (c *TaskEventClient) Update() *TaskEventUpdate {
	mutation := newTaskEventMutation(c.config, OpUpdate)
	return &TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEventClient) UpdateOne(_m *TaskEvent) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEvent(_m))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEventClient) UpdateOneID(id string) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEventID(id))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvent.
func (c *TaskEventClient) Delete() *TaskEventDelete {
	mutation := newTaskEventMutation(c.config, OpDelete)
	return &TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEventClient) DeleteOne(_m *TaskEvent) *TaskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEventClient) DeleteOneID(id string) *TaskEventDeleteOne {
	builder := c.Delete().Where(taskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEventDeleteOne{builder}
}

// Query returns a query builder for TaskEvent.
func (c *TaskEventClient) Query() *TaskEventQuery {
	return &TaskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvent entity by its id.
func (c *TaskEventClient) Get(ctx context.Context, id string) (*TaskEvent, error) {
	return c.Query().Where(taskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEventClient) GetX(ctx context.Context, id string) *TaskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskEventClient) Hooks() []Hook {
	return c.hooks.TaskEvent
}

// Interceptors returns the client interceptors.
func (c *TaskEventClient) Interceptors() []Interceptor {
	return c.inters.TaskEvent
}

func (c *TaskEventClient) mutate(ctx context.Context, m *TaskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvent mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id string) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id string) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id string) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id string) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArchivalMemory, AttemptRecord, Checkpoint, LearnedPattern, ModelConfig,
		ModelConfigAudit, Observation, Patch, ProgressEntry, Repository, SessionMemory,
		StaticMemory, Task, TaskEvent, WebhookEvent []ent.Hook
	}
	inters struct {
		ArchivalMemory, AttemptRecord, Checkpoint, LearnedPattern, ModelConfig,
		ModelConfigAudit, Observation, Patch, ProgressEntry, Repository, SessionMemory,
		StaticMemory, Task, TaskEvent, WebhookEvent []ent.Interceptor
	}
)
