// package formatter renders dictionary data to output formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

// WordListToCSV converts a word list to CSV with a single Word column.
func WordListToCSV(words []models.WordSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Word"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, word := range words {
		if err := writer.Write([]string{word.Word}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FavoritesToCSV converts favorites to CSV with Word and Added columns.
func FavoritesToCSV(favorites []models.FavoriteEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Word", "Added"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, favorite := range favorites {
		record := []string{favorite.Word, shared.FormatAdded(favorite.Added)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// HistoryToCSV converts history entries to CSV with Word and Viewed columns.
func HistoryToCSV(history []models.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Word", "Viewed"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range history {
		record := []string{entry.Word, shared.FormatAdded(entry.Added)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// DetailToMarkdown converts a word detail to Markdown with phonetics and
// numbered definitions grouped by part of speech.
func DetailToMarkdown(detail *models.WordDetail) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", detail.Word))

	if len(detail.Phonetics) > 0 {
		for _, phonetic := range detail.Phonetics {
			if phonetic.Text == "" {
				continue
			}
			if phonetic.Audio != "" {
				buf.WriteString(fmt.Sprintf("- %s ([audio](%s))\n", phonetic.Text, phonetic.Audio))
			} else {
				buf.WriteString(fmt.Sprintf("- %s\n", phonetic.Text))
			}
		}
		buf.WriteString("\n")
	}

	for _, meaning := range detail.Meanings {
		buf.WriteString(fmt.Sprintf("## %s\n\n", meaning.PartOfSpeech))
		for i, definition := range meaning.Definitions {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, definition.Definition))
			if definition.Example != "" {
				buf.WriteString(fmt.Sprintf("   > %s\n", definition.Example))
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// DetailToText converts a word detail to indented plain text for terminal output.
func DetailToText(detail *models.WordDetail) []byte {
	var buf bytes.Buffer

	buf.WriteString(detail.Word + "\n")

	for _, phonetic := range detail.Phonetics {
		if phonetic.Text != "" {
			buf.WriteString(fmt.Sprintf("  %s\n", phonetic.Text))
		}
	}

	for _, meaning := range detail.Meanings {
		buf.WriteString(fmt.Sprintf("\n%s\n", meaning.PartOfSpeech))
		for i, definition := range meaning.Definitions {
			buf.WriteString(fmt.Sprintf("  %d. %s\n", i+1, definition.Definition))
			if definition.Example != "" {
				buf.WriteString(fmt.Sprintf("     e.g. %s\n", definition.Example))
			}
		}
	}

	return buf.Bytes()
}

// FavoritesToText renders favorites as "word (added date)" lines.
func FavoritesToText(favorites []models.FavoriteEntry) []byte {
	var buf bytes.Buffer
	for _, favorite := range favorites {
		added := shared.FormatAdded(favorite.Added)
		if added != "" {
			buf.WriteString(fmt.Sprintf("%s (added %s)\n", favorite.Word, added))
		} else {
			buf.WriteString(favorite.Word + "\n")
		}
	}
	return buf.Bytes()
}

// HistoryToText renders history entries as "word (viewed date)" lines.
func HistoryToText(history []models.HistoryEntry) []byte {
	var buf bytes.Buffer
	for _, entry := range history {
		viewed := shared.FormatAdded(entry.Added)
		if viewed != "" {
			buf.WriteString(fmt.Sprintf("%s (viewed %s)\n", entry.Word, viewed))
		} else {
			buf.WriteString(entry.Word + "\n")
		}
	}
	return buf.Bytes()
}
