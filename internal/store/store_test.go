package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"textkit/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "textkit.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func insertOp(t *testing.T, st *Store, tool, input, output string, at time.Time) int64 {
	t.Helper()
	id, err := st.InsertOperation(context.Background(), model.Operation{
		CreatedAt:  at,
		Tool:       tool,
		Input:      input,
		Output:     output,
		DurationUs: 42,
	})
	if err != nil {
		t.Fatalf("failed to insert operation: %v", err)
	}
	return id
}

func TestInsertAndList(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	insertOp(t, st, model.ToolCaesar, "Hello", "Khoor", base)
	insertOp(t, st, model.ToolReverse, "abc", "cba", base.Add(time.Minute))

	ops, err := st.ListOperations(context.Background(), model.HistoryFilter{})
	if err != nil {
		t.Fatalf("failed to list operations: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if ops[0].Tool != model.ToolCaesar || ops[1].Tool != model.ToolReverse {
		t.Fatalf("unexpected order: %s, %s", ops[0].Tool, ops[1].Tool)
	}
	if ops[0].Input != "Hello" || ops[0].Output != "Khoor" {
		t.Fatalf("unexpected first operation: %+v", ops[0])
	}
	if !ops[1].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected created_at: %v", ops[1].CreatedAt)
	}
}

func TestListFilters(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		tool := model.ToolCalc
		if i%2 == 1 {
			tool = model.ToolAnalyze
		}
		insertOp(t, st, tool, "in", "out", base.Add(time.Duration(i)*time.Minute))
	}

	ops, err := st.ListOperations(context.Background(), model.HistoryFilter{Tool: model.ToolCalc})
	if err != nil {
		t.Fatalf("failed to list by tool: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 calc operations, got %d", len(ops))
	}

	since := base.Add(3 * time.Minute)
	ops, err = st.ListOperations(context.Background(), model.HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("failed to list since: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations since %v, got %d", since, len(ops))
	}

	ops, err = st.ListOperations(context.Background(), model.HistoryFilter{Last: 2})
	if err != nil {
		t.Fatalf("failed to list last: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected last 2 operations, got %d", len(ops))
	}
	if !ops[1].CreatedAt.Equal(base.Add(4 * time.Minute)) {
		t.Fatalf("expected newest operation last, got %v", ops[1].CreatedAt)
	}
}

func TestCountByTool(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	insertOp(t, st, model.ToolCaesar, "a", "b", base)
	insertOp(t, st, model.ToolCaesar, "c", "d", base.Add(time.Second))
	insertOp(t, st, model.ToolCapitalize, "e", "E", base.Add(2*time.Second))

	counts, err := st.CountByTool(context.Background())
	if err != nil {
		t.Fatalf("failed to count by tool: %v", err)
	}
	if counts[model.ToolCaesar] != 2 || counts[model.ToolCapitalize] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestClear(t *testing.T) {
	st := openTestStore(t)
	insertOp(t, st, model.ToolReverse, "ab", "ba", time.Now().UTC())
	if err := st.Clear(context.Background()); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	ops, err := st.ListOperations(context.Background(), model.HistoryFilter{})
	if err != nil {
		t.Fatalf("failed to list after clear: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected empty history, got %d operations", len(ops))
	}
}
