package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/modelconfig"
	"github.com/forgeflow/forgeflow/pkg/config"
)

// ModelConfigService manages runtime model settings. One row per purpose
// overrides the YAML defaults; every change is mirrored into an immutable
// audit row.
type ModelConfigService struct {
	client *ent.Client
}

// NewModelConfigService creates a new ModelConfigService.
func NewModelConfigService(client *ent.Client) *ModelConfigService {
	if client == nil {
		panic("ModelConfigService requires a non-nil ent client")
	}
	return &ModelConfigService{client: client}
}

// ModelConfigInput describes one purpose's settings.
type ModelConfigInput struct {
	Purpose         string  `json:"purpose"`
	Provider        string  `json:"provider"`
	Model           string  `json:"model"`
	MaxTokens       int     `json:"max_tokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	ReasoningEffort string  `json:"reasoning_effort,omitempty"`
	ChangedBy       string  `json:"changed_by,omitempty"`
}

var validPurposes = map[string]modelconfig.Purpose{
	"plan":      modelconfig.PurposePlan,
	"code":      modelconfig.PurposeCode,
	"fix":       modelconfig.PurposeFix,
	"reflect":   modelconfig.PurposeReflect,
	"summarize": modelconfig.PurposeSummarize,
	"embed":     modelconfig.PurposeEmbed,
}

// Get returns the stored settings for a purpose, or ErrNotFound when the
// purpose runs on YAML defaults.
func (s *ModelConfigService) Get(ctx context.Context, purpose string) (*ent.ModelConfig, error) {
	p, ok := validPurposes[purpose]
	if !ok {
		return nil, NewValidationError("purpose", "unknown purpose")
	}
	row, err := s.client.ModelConfig.Query().
		Where(modelconfig.PurposeEQ(p)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("model config for %q: %w", purpose, ErrNotFound)
		}
		return nil, fmt.Errorf("query model config: %w", err)
	}
	return row, nil
}

// List returns all stored overrides ordered by purpose.
func (s *ModelConfigService) List(ctx context.Context) ([]*ent.ModelConfig, error) {
	rows, err := s.client.ModelConfig.Query().
		Order(ent.Asc(modelconfig.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list model configs: %w", err)
	}
	return rows, nil
}

// Put creates or replaces the settings for a purpose and writes an audit row
// carrying the previous and new snapshots in the same transaction.
func (s *ModelConfigService) Put(ctx context.Context, input ModelConfigInput) (*ent.ModelConfig, error) {
	p, ok := validPurposes[input.Purpose]
	if !ok {
		return nil, NewValidationError("purpose", "unknown purpose")
	}
	if input.Provider != "anthropic" && input.Provider != "openai" {
		return nil, NewValidationError("provider", "must be anthropic or openai")
	}
	if input.Model == "" {
		return nil, NewValidationError("model", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("Failed to rollback model config tx", "error", rbErr)
			}
		}
	}()

	existing, err := tx.ModelConfig.Query().
		Where(modelconfig.PurposeEQ(p)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query existing model config: %w", err)
	}
	err = nil

	var previous map[string]interface{}
	var row *ent.ModelConfig
	if existing != nil {
		previous = snapshotModelConfig(existing)
		upd := tx.ModelConfig.UpdateOne(existing).
			SetProvider(input.Provider).
			SetModel(input.Model).
			SetReasoningEffort(input.ReasoningEffort)
		if input.MaxTokens > 0 {
			upd.SetMaxTokens(input.MaxTokens)
		}
		if input.Temperature > 0 {
			upd.SetTemperature(input.Temperature)
		}
		row, err = upd.Save(ctx)
	} else {
		create := tx.ModelConfig.Create().
			SetID(uuid.New().String()).
			SetPurpose(p).
			SetProvider(input.Provider).
			SetModel(input.Model).
			SetReasoningEffort(input.ReasoningEffort)
		if input.MaxTokens > 0 {
			create.SetMaxTokens(input.MaxTokens)
		}
		if input.Temperature > 0 {
			create.SetTemperature(input.Temperature)
		}
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save model config: %w", err)
	}

	audit := tx.ModelConfigAudit.Create().
		SetID(uuid.New().String()).
		SetPurpose(input.Purpose).
		SetCurrent(snapshotModelConfig(row)).
		SetChangedBy(input.ChangedBy)
	if previous != nil {
		audit.SetPrevious(previous)
	}
	if _, err = audit.Save(ctx); err != nil {
		return nil, fmt.Errorf("save model config audit: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit model config tx: %w", err)
	}
	slog.Info("Model config updated",
		"purpose", input.Purpose,
		"provider", input.Provider,
		"model", input.Model,
		"changed_by", input.ChangedBy)
	return row, nil
}

// Overrides returns the stored rows as config settings keyed by purpose,
// ready to be laid over the YAML defaults at startup.
func (s *ModelConfigService) Overrides(ctx context.Context) (map[string]config.ModelSettings, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]config.ModelSettings, len(rows))
	for _, row := range rows {
		out[string(row.Purpose)] = config.ModelSettings{
			Provider:        row.Provider,
			Model:           row.Model,
			MaxTokens:       row.MaxTokens,
			Temperature:     row.Temperature,
			ReasoningEffort: row.ReasoningEffort,
		}
	}
	return out, nil
}

func snapshotModelConfig(row *ent.ModelConfig) map[string]interface{} {
	return map[string]interface{}{
		"provider":         row.Provider,
		"model":            row.Model,
		"max_tokens":       row.MaxTokens,
		"temperature":      row.Temperature,
		"reasoning_effort": row.ReasoningEffort,
	}
}
