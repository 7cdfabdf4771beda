package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "typelint.dev/pkg/typelint/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.ts"), "export type B = string;\n")
	writeTestFile(t, filepath.Join(root, "a", "a.ts"), "export type A = string;\n")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "a.ts"), filepath.Join(root, "b.ts")}
	if len(visited) != len(want) {
		t.Fatalf("Walk() visited %v, want %v", visited, want)
	}

	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("Walk() visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestLocalSourceFSAdapter_Walk_CancelledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.ts"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := adapter.Walk(ctx, m.Path(root), func(string, fs.DirEntry, error) error { return nil })
	if err == nil {
		t.Fatalf("Walk() expected context error")
	}
}

func TestLocalSourceFSAdapter_FindFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "users", "user.dto.ts"), "")
	writeTestFile(t, filepath.Join(root, "users", "user.entity.ts"), "")
	writeTestFile(t, filepath.Join(root, "users", "user.service.ts"), "")
	writeTestFile(t, filepath.Join(root, "legacy", "old.dto.ts"), "")
	writeTestFile(t, filepath.Join(root, "root.dto.ts"), "")

	matcher, err := NewFileMatcher([]string{"*.dto.ts", "*.entity.ts"}, []string{"legacy/**"})
	if err != nil {
		t.Fatalf("NewFileMatcher() error = %v", err)
	}

	files, err := adapter.FindFiles(context.Background(), m.Path(root), matcher)
	if err != nil {
		t.Fatalf("FindFiles() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "root.dto.ts")),
		m.Path(filepath.Join(root, "users", "user.dto.ts")),
		m.Path(filepath.Join(root, "users", "user.entity.ts")),
	}

	if len(files) != len(want) {
		t.Fatalf("FindFiles() = %v, want %v", files, want)
	}

	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("FindFiles()[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestLocalSourceFSAdapter_FindFiles_MissingRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.FindFiles(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), nil)
	if err == nil {
		t.Fatalf("FindFiles() expected error for missing root")
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "user.types.ts")
	content := "export interface User { id: string }\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	present := filepath.Join(root, "index.ts")
	writeTestFile(t, present, "")

	ok, err := adapter.Exists(context.Background(), m.Path(present))
	if err != nil || !ok {
		t.Fatalf("Exists(present) = %v, %v", ok, err)
	}

	ok, err = adapter.Exists(context.Background(), m.Path(filepath.Join(root, "missing.ts")))
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}
}

func TestLocalSourceFSAdapter_WriteFile_CreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "docs", "nested", "extracted-types.md")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("# doc\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "# doc\n" {
		t.Fatalf("WriteFile() wrote %q", string(got))
	}
}

func TestLocalSourceFSAdapter_RelPathAndJoin(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	joined := adapter.JoinPath(ctx, "src", "core", "index.ts")
	if joined != m.Path(filepath.Join("src", "core", "index.ts")) {
		t.Fatalf("JoinPath() = %s", joined)
	}

	rel, err := adapter.RelPath(ctx, m.Path("src"), joined)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if rel != m.Path(filepath.Join("core", "index.ts")) {
		t.Fatalf("RelPath() = %s", rel)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
