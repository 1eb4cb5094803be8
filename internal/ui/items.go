package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

var (
	_ list.Item = wordItem{}
	_ list.Item = favoriteItem{}
	_ list.Item = historyItem{}
)

// wordItem wraps [models.WordSummary] to implement [list.Item].
type wordItem struct {
	word      models.WordSummary
	favorited bool
}

func (i wordItem) FilterValue() string { return i.word.Word }
func (i wordItem) Title() string       { return i.word.Word }
func (i wordItem) Description() string {
	if i.favorited {
		return "★ favorite"
	}
	return ""
}

// favoriteItem wraps [models.FavoriteEntry] to implement [list.Item].
type favoriteItem struct {
	entry models.FavoriteEntry
}

func (i favoriteItem) FilterValue() string { return i.entry.Word }
func (i favoriteItem) Title() string       { return i.entry.Word }
func (i favoriteItem) Description() string {
	if added := shared.FormatAdded(i.entry.Added); added != "" {
		return fmt.Sprintf("added %s", added)
	}
	return ""
}

// historyItem wraps [models.HistoryEntry] to implement [list.Item].
type historyItem struct {
	entry models.HistoryEntry
}

func (i historyItem) FilterValue() string { return i.entry.Word }
func (i historyItem) Title() string       { return i.entry.Word }
func (i historyItem) Description() string {
	if viewed := shared.FormatAdded(i.entry.Added); viewed != "" {
		return fmt.Sprintf("viewed %s", viewed)
	}
	return ""
}
