package ui

import (
	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/pager"
)

// wordsFetchedMsg resolves a word-list advance started by [Model.advanceWords].
type wordsFetchedMsg struct {
	adv   pager.Advance
	batch []models.WordSummary
	err   error
}

// favoritesFetchedMsg resolves a favorites advance.
type favoritesFetchedMsg struct {
	adv   pager.Advance
	batch []models.FavoriteEntry
	err   error
}

// historyFetchedMsg resolves a history advance.
type historyFetchedMsg struct {
	adv   pager.Advance
	batch []models.HistoryEntry
	err   error
}

// detailFetchedMsg carries the result of a word detail lookup.
type detailFetchedMsg struct {
	detail *models.WordDetail
	err    error
}

// favoriteToggledMsg reports the server outcome of an optimistic favorite
// toggle. The marker was already flipped when the toggle was issued.
type favoriteToggledMsg struct {
	word      string
	favorited bool
	err       error
}
