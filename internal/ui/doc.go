// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a tabbed workflow for browsing the dictionary:
//  1. [WordListView] : Scroll the word list; pages load as the cursor nears the end
//  2. [FavoritesView] : Browse favorited words
//  3. [HistoryView] : Browse recently viewed words
//  4. [DetailView] : Phonetics and meanings for one word
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Each tab is backed by a [pager.Pager]; scroll-triggered advances go through the
// pager's Begin/Complete handshake so duplicate loads are suppressed and results
// that resolve after a reset are dropped.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, f, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
