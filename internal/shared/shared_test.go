package shared

import (
	"path/filepath"
	"strings"
	"testing"

	tu "github.com/ewhitmore/glossa/internal/testing"
)

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "glossa.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}

	tu.AssertDirExists(t, filepath.Dir(path))
	tu.AssertFileExists(t, path)

	logger.Info("tui session started")
	if content := tu.MustReadFile(t, path); !strings.Contains(content, "tui session started") {
		t.Errorf("expected log line in file, got %q", content)
	}
}

func TestFormatAdded(t *testing.T) {
	tc := []struct {
		name  string
		added string
		want  string
	}{
		{
			name:  "rfc3339 timestamp",
			added: "2024-01-01T10:30:00.000Z",
			want:  "2024-01-01",
		},
		{
			name:  "timestamp with offset",
			added: "2023-06-15T00:00:00+02:00",
			want:  "2023-06-15",
		},
		{
			name:  "empty string",
			added: "",
			want:  "",
		},
		{
			name:  "unparseable passes through",
			added: "yesterday",
			want:  "yesterday",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAdded(tt.added)
			if got != tt.want {
				t.Errorf("FormatAdded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tc := []struct {
		name string
		word string
		want string
	}{
		{name: "mixed case", word: "HeLLo", want: "hello"},
		{name: "surrounding whitespace", word: "  cat  ", want: "cat"},
		{name: "already normalized", word: "dog", want: "dog"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWord(tt.word)
			if got != tt.want {
				t.Errorf("NormalizeWord() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected distinct IDs")
	}
}
