package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
)

func sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("webhook-secret")
	payload := []byte(`{"action":"labeled"}`)
	s := &WebhookService{secret: secret}

	assert.NoError(t, s.VerifySignature(payload, sign(secret, payload)))

	err := s.VerifySignature(payload, sign([]byte("wrong-secret"), payload))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	err = s.VerifySignature([]byte(`{"action":"tampered"}`), sign(secret, payload))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// No secret configured: verification is skipped.
	open := &WebhookService{}
	assert.NoError(t, open.VerifySignature(payload, ""))
}

func TestParseTaskRequest(t *testing.T) {
	event := &ent.WebhookEvent{
		DeliveryID: "d-1",
		Payload: `{
			"action": "labeled",
			"repo": "org/repo",
			"issue": {"number": 42, "title": "Fix retries", "body": "details"},
			"dry_run": true
		}`,
	}
	req, err := ParseTaskRequest(event)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, "org/repo", req.Repo)
	assert.Equal(t, 42, req.IssueNumber)
	assert.Equal(t, "Fix retries", req.Title)
	assert.True(t, req.DryRun)
	assert.Equal(t, "d-1", req.DeliveryID)
}

func TestParseTaskRequestIgnoresOtherActions(t *testing.T) {
	event := &ent.WebhookEvent{
		Payload: `{"action": "closed", "repo": "org/repo", "issue": {"number": 1}}`,
	}
	req, err := ParseTaskRequest(event)
	require.NoError(t, err)
	assert.Nil(t, req)
}

func TestParseTaskRequestRejectsIncomplete(t *testing.T) {
	event := &ent.WebhookEvent{
		Payload: `{"action": "opened", "issue": {"title": "no repo"}}`,
	}
	_, err := ParseTaskRequest(event)
	assert.True(t, IsValidationError(err))
}
