package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/arisng/agent-research/pkg/llm"
)

// scriptedLLM implements llm.Client with canned replies consumed in
// order, capturing every prompt for assertions.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []string
	err     error
	prompts []string
}

func (s *scriptedLLM) Complete(_ context.Context, messages []llm.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(messages) > 0 {
		s.prompts = append(s.prompts, messages[len(messages)-1].Content)
	}
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

// stubSearcher implements Searcher with a fixed result or error.
type stubSearcher struct {
	result string
	err    error
	calls  int
}

func (s *stubSearcher) Search(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.result, s.err
}

// fakeAdmin implements DatabaseAdmin, recording the operation and
// arguments of each call.
type fakeAdmin struct {
	ops     []string
	args    []string
	results map[string]string
	err     error
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{results: make(map[string]string)}
}

func (f *fakeAdmin) record(op string, args ...string) (string, error) {
	f.ops = append(f.ops, op)
	f.args = append(f.args, args...)
	if f.err != nil {
		return "", f.err
	}
	if out, ok := f.results[op]; ok {
		return out, nil
	}
	return fmt.Sprintf("%s ok", op), nil
}

func (f *fakeAdmin) CreateDatabase(_ context.Context, name string) (string, error) {
	return f.record("create-database", name)
}

func (f *fakeAdmin) CreateTable(_ context.Context, name, columnDefs string) (string, error) {
	return f.record("create-table", name, columnDefs)
}

func (f *fakeAdmin) Query(_ context.Context, sqlText string) (string, error) {
	return f.record("query", sqlText)
}

func (f *fakeAdmin) ListDatabases(_ context.Context) (string, error) {
	return f.record("list-databases")
}

func (f *fakeAdmin) ListTables(_ context.Context) (string, error) {
	return f.record("list-tables")
}

// stubHandler implements Handler with a fixed response.
type stubHandler struct {
	result string
	err    error
	calls  int
}

func (h *stubHandler) Handle(_ context.Context, _ string) (string, error) {
	h.calls++
	return h.result, h.err
}
