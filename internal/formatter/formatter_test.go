package formatter

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/ewhitmore/glossa/internal/models"
)

func sampleDetail() *models.WordDetail {
	return &models.WordDetail{
		Word: "hello",
		Phonetics: []models.Phonetic{
			{Text: "/həˈləʊ/", Audio: "https://cdn/hello.mp3"},
			{Text: "", Audio: "https://cdn/silent.mp3"},
		},
		Meanings: []models.Meaning{
			{
				PartOfSpeech: "exclamation",
				Definitions: []models.Definition{
					{Definition: "used as a greeting", Example: "hello there, Katie!"},
					{Definition: "used to express surprise"},
				},
			},
			{
				PartOfSpeech: "noun",
				Definitions: []models.Definition{
					{Definition: "an utterance of 'hello'"},
				},
			},
		},
	}
}

func TestWordListToCSV(t *testing.T) {
	words := []models.WordSummary{{Word: "cat"}, {Word: "dog"}}

	data, err := WordListToCSV(words)
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Word" {
		t.Errorf("expected Word header, got %s", records[0][0])
	}
	if records[1][0] != "cat" || records[2][0] != "dog" {
		t.Errorf("unexpected rows %v", records[1:])
	}
}

func TestFavoritesToCSV(t *testing.T) {
	favorites := []models.FavoriteEntry{
		{Word: "cat", Added: "2024-01-01T10:00:00Z"},
	}

	data, err := FavoritesToCSV(favorites)
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][0] != "cat" || records[1][1] != "2024-01-01" {
		t.Errorf("unexpected row %v", records[1])
	}
}

func TestHistoryToCSV(t *testing.T) {
	history := []models.HistoryEntry{
		{Word: "dog", Added: "2024-02-02T10:00:00Z"},
	}

	data, err := HistoryToCSV(history)
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	output := string(data)
	if !strings.Contains(output, "Word,Viewed") {
		t.Errorf("expected Viewed header, got %s", output)
	}
	if !strings.Contains(output, "dog,2024-02-02") {
		t.Errorf("expected formatted row, got %s", output)
	}
}

func TestDetailToMarkdown(t *testing.T) {
	output := string(DetailToMarkdown(sampleDetail()))

	for _, want := range []string{
		"# hello",
		"- /həˈləʊ/ ([audio](https://cdn/hello.mp3))",
		"## exclamation",
		"1. used as a greeting",
		"> hello there, Katie!",
		"2. used to express surprise",
		"## noun",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q:\n%s", want, output)
		}
	}

	// Phonetics without text render nothing.
	if strings.Contains(output, "silent.mp3") {
		t.Error("text-less phonetic should be skipped")
	}
}

func TestDetailToText(t *testing.T) {
	output := string(DetailToText(sampleDetail()))

	for _, want := range []string{
		"hello\n",
		"  /həˈləʊ/",
		"exclamation",
		"  1. used as a greeting",
		"     e.g. hello there, Katie!",
		"noun",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q:\n%s", want, output)
		}
	}
}

func TestFavoritesToText(t *testing.T) {
	favorites := []models.FavoriteEntry{
		{Word: "cat", Added: "2024-01-01T10:00:00Z"},
		{Word: "dog"},
	}

	output := string(FavoritesToText(favorites))

	if !strings.Contains(output, "cat (added 2024-01-01)") {
		t.Errorf("unexpected output %s", output)
	}
	if !strings.Contains(output, "dog\n") {
		t.Errorf("entry without timestamp should render bare, got %s", output)
	}
}

func TestHistoryToText(t *testing.T) {
	history := []models.HistoryEntry{
		{Word: "fox", Added: "2024-03-03T10:00:00Z"},
	}

	output := string(HistoryToText(history))
	if !strings.Contains(output, "fox (viewed 2024-03-03)") {
		t.Errorf("unexpected output %s", output)
	}
}
