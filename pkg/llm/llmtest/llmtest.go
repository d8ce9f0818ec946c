// Package llmtest provides scripted fakes for the llm interfaces.
package llmtest

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/forgeflow/forgeflow/pkg/llm"
)

// ScriptedCompleter returns canned responses in order, tracking the requests
// it received. Safe for concurrent use.
type ScriptedCompleter struct {
	mu        sync.Mutex
	responses []llm.Response
	errs      []error
	next      int

	Requests []llm.Request
}

// Respond appends a successful canned response.
func (s *ScriptedCompleter) Respond(content string) *ScriptedCompleter {
	s.responses = append(s.responses, llm.Response{Content: content, Model: "scripted"})
	s.errs = append(s.errs, nil)
	return s
}

// Fail appends a canned error.
func (s *ScriptedCompleter) Fail(err error) *ScriptedCompleter {
	s.responses = append(s.responses, llm.Response{})
	s.errs = append(s.errs, err)
	return s
}

// Complete implements llm.Completer.
func (s *ScriptedCompleter) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, req)
	if s.next >= len(s.responses) {
		return llm.Response{}, fmt.Errorf("scripted completer exhausted after %d responses", len(s.responses))
	}
	i := s.next
	s.next++
	return s.responses[i], s.errs[i]
}

// HashEmbedder is a deterministic local embedder for tests: token hashes
// bucketed into a fixed-width vector. Equal texts embed equally; similarity
// is meaningful enough for threshold tests.
type HashEmbedder struct{}

// Embed implements llm.Embedder.
func (HashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, llm.EmbeddingDimension)
		h := fnv.New32a()
		word := make([]byte, 0, 16)
		flush := func() {
			if len(word) == 0 {
				return
			}
			h.Reset()
			h.Write(word)
			v[h.Sum32()%llm.EmbeddingDimension]++
			word = word[:0]
		}
		for j := 0; j < len(t); j++ {
			c := t[j]
			if c == ' ' || c == '\n' || c == '\t' {
				flush()
				continue
			}
			word = append(word, c|0x20)
		}
		flush()
		out[i] = v
	}
	return out, nil
}

// Dimension implements llm.Embedder.
func (HashEmbedder) Dimension() int { return llm.EmbeddingDimension }
