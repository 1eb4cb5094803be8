package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/pager"
	"github.com/ewhitmore/glossa/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	WordListView ViewState = iota
	FavoritesView
	HistoryView
	DetailView
)

// scrollThreshold is how close to the bottom of a list the cursor must be
// before the next advance is requested.
const scrollThreshold = 3

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	api    services.API
	view   ViewState
	tab    ViewState
	width  int
	height int

	words     *pager.Pager[models.WordSummary]
	favorites *pager.Pager[models.FavoriteEntry]
	history   *pager.Pager[models.HistoryEntry]

	wordList     list.Model
	favoriteList list.Model
	historyList  list.Model

	favorited map[string]bool
	detail    *models.WordDetail
	status    string

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model over the dictionary API. The word list
// advances two pages of five entries at a time; favorites and history advance
// one page of ten.
func NewModel(ctx context.Context, api services.API) *Model {
	m := &Model{
		ctx:       ctx,
		api:       api,
		view:      WordListView,
		tab:       WordListView,
		favorited: make(map[string]bool),
		help:      help.New(),
		keys:      newKeyMap(),
	}

	m.words = pager.New(func(ctx context.Context, page, limit int) ([]models.WordSummary, error) {
		words, _, err := api.Entries(ctx, page, limit)
		return words, err
	}, 5, 2)
	m.favorites = pager.New(func(ctx context.Context, page, limit int) ([]models.FavoriteEntry, error) {
		favorites, _, err := api.Favorites(ctx, page, limit)
		return favorites, err
	}, 10, 1)
	m.history = pager.New(func(ctx context.Context, page, limit int) ([]models.HistoryEntry, error) {
		entries, _, err := api.History(ctx, page, limit)
		return entries, err
	}, 10, 1)

	m.wordList = newTabList("Words")
	m.favoriteList = newTabList("Favorites")
	m.historyList = newTabList("History")

	return m
}

func newTabList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

// Init starts the first word-list advance and loads favorites so the word
// list can render its favorite markers.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.advanceWords(), m.advanceFavorites())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wordList.SetSize(msg.Width-4, msg.Height-8)
		m.favoriteList.SetSize(msg.Width-4, msg.Height-8)
		m.historyList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.view == DetailView {
			return m.handleDetailKeys(msg)
		}
		return m.handleTabKeys(msg)

	case wordsFetchedMsg:
		if !m.words.Complete(msg.adv, msg.batch, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.status = "Could not load words"
			return m, nil
		}
		m.status = ""
		m.syncWordItems()
		return m, nil

	case favoritesFetchedMsg:
		if !m.favorites.Complete(msg.adv, msg.batch, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.status = "Could not load favorites"
			return m, nil
		}
		m.status = ""
		for _, entry := range msg.batch {
			m.favorited[entry.Word] = true
		}
		m.syncFavoriteItems()
		m.syncWordItems()
		return m, nil

	case historyFetchedMsg:
		if !m.history.Complete(msg.adv, msg.batch, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.status = "Could not load history"
			return m, nil
		}
		m.status = ""
		m.syncHistoryItems()
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.status = "Could not load word detail"
			return m, nil
		}
		m.status = ""
		m.detail = msg.detail
		m.view = DetailView
		// Opening a detail records a history entry server-side, so the
		// cached history tab is stale.
		m.history.Reset()
		m.syncHistoryItems()
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not update favorite for %q", msg.word)
			return m, nil
		}
		m.status = ""
		m.favorites.Reset()
		m.syncFavoriteItems()
		return m, m.advanceFavorites()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.view == DetailView {
		return m.renderDetail()
	}
	return m.renderTab()
}

func (m *Model) handleTabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.nextTab):
		return m, m.switchTab(nextTab(m.tab))
	case key.Matches(msg, m.keys.words):
		return m, m.switchTab(WordListView)
	case key.Matches(msg, m.keys.favs):
		return m, m.switchTab(FavoritesView)
	case key.Matches(msg, m.keys.history):
		return m, m.switchTab(HistoryView)
	case key.Matches(msg, m.keys.enter):
		if word := m.selectedWord(); word != "" {
			return m, m.fetchDetail(word)
		}
		return m, nil
	case key.Matches(msg, m.keys.favorite):
		return m, m.toggleFavorite(m.selectedWord())
	case key.Matches(msg, m.keys.showHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	model, cmd := m.updateLists(msg)
	if advance := m.advanceActive(); advance != nil {
		return model, tea.Batch(cmd, advance)
	}
	return model, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = m.tab
		m.detail = nil
		return m, m.advanceStaleHistory()
	case key.Matches(msg, m.keys.favorite):
		if m.detail != nil {
			return m, m.toggleFavorite(m.detail.Word)
		}
	}
	return m, nil
}

func nextTab(tab ViewState) ViewState {
	switch tab {
	case WordListView:
		return FavoritesView
	case FavoritesView:
		return HistoryView
	default:
		return WordListView
	}
}

// switchTab activates a tab and starts its first advance if it has never
// loaded.
func (m *Model) switchTab(tab ViewState) tea.Cmd {
	m.tab = tab
	m.view = tab
	m.status = ""

	switch tab {
	case FavoritesView:
		if m.favorites.Len() == 0 && m.favorites.HasMore() {
			return m.advanceFavorites()
		}
	case HistoryView:
		if m.history.Len() == 0 && m.history.HasMore() {
			return m.advanceHistory()
		}
	}
	return nil
}

// advanceStaleHistory reloads the history tab after a detail view reset it.
func (m *Model) advanceStaleHistory() tea.Cmd {
	if m.tab == HistoryView && m.history.Len() == 0 {
		return m.advanceHistory()
	}
	return nil
}

// advanceActive requests the next pages for the active tab when the cursor
// is within scrollThreshold rows of the bottom. The pager's loading gate
// suppresses duplicate requests while one is in flight.
func (m *Model) advanceActive() tea.Cmd {
	switch m.tab {
	case WordListView:
		if nearEnd(m.wordList) {
			return m.advanceWords()
		}
	case FavoritesView:
		if nearEnd(m.favoriteList) {
			return m.advanceFavorites()
		}
	case HistoryView:
		if nearEnd(m.historyList) {
			return m.advanceHistory()
		}
	}
	return nil
}

func nearEnd(l list.Model) bool {
	n := len(l.Items())
	return n > 0 && l.Index() >= n-scrollThreshold
}

func (m *Model) advanceWords() tea.Cmd {
	adv, ok := m.words.Begin()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		batch, err := m.words.FetchPages(m.ctx, adv.Pages)
		return wordsFetchedMsg{adv: adv, batch: batch, err: err}
	}
}

func (m *Model) advanceFavorites() tea.Cmd {
	adv, ok := m.favorites.Begin()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		batch, err := m.favorites.FetchPages(m.ctx, adv.Pages)
		return favoritesFetchedMsg{adv: adv, batch: batch, err: err}
	}
}

func (m *Model) advanceHistory() tea.Cmd {
	adv, ok := m.history.Begin()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		batch, err := m.history.FetchPages(m.ctx, adv.Pages)
		return historyFetchedMsg{adv: adv, batch: batch, err: err}
	}
}

func (m *Model) fetchDetail(word string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.api.Entry(m.ctx, word)
		return detailFetchedMsg{detail: detail, err: err}
	}
}

// toggleFavorite flips the marker immediately and reports the server outcome
// via [favoriteToggledMsg]. A server failure leaves the optimistic marker in
// place and surfaces in the status line.
func (m *Model) toggleFavorite(word string) tea.Cmd {
	if word == "" {
		return nil
	}
	was := m.favorited[word]
	m.favorited[word] = !was
	m.syncWordItems()

	return func() tea.Msg {
		var err error
		if was {
			err = m.api.Unfavorite(m.ctx, word)
		} else {
			err = m.api.Favorite(m.ctx, word)
		}
		return favoriteToggledMsg{word: word, favorited: !was, err: err}
	}
}

func (m *Model) selectedWord() string {
	var selected list.Item
	switch m.tab {
	case WordListView:
		selected = m.wordList.SelectedItem()
	case FavoritesView:
		selected = m.favoriteList.SelectedItem()
	case HistoryView:
		selected = m.historyList.SelectedItem()
	}

	switch item := selected.(type) {
	case wordItem:
		return item.word.Word
	case favoriteItem:
		return item.entry.Word
	case historyItem:
		return item.entry.Word
	default:
		return ""
	}
}

func (m *Model) syncWordItems() {
	items := make([]list.Item, m.words.Len())
	for i, word := range m.words.Items() {
		items[i] = wordItem{word: word, favorited: m.favorited[word.Word]}
	}
	m.wordList.SetItems(items)
}

func (m *Model) syncFavoriteItems() {
	items := make([]list.Item, m.favorites.Len())
	for i, entry := range m.favorites.Items() {
		items[i] = favoriteItem{entry: entry}
	}
	m.favoriteList.SetItems(items)
}

func (m *Model) syncHistoryItems() {
	items := make([]list.Item, m.history.Len())
	for i, entry := range m.history.Items() {
		items[i] = historyItem{entry: entry}
	}
	m.historyList.SetItems(items)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case WordListView:
		m.wordList, cmd = m.wordList.Update(msg)
	case FavoritesView:
		m.favoriteList, cmd = m.favoriteList.Update(msg)
	case HistoryView:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

func (m *Model) renderTab() string {
	var listView string
	var loading bool
	switch m.tab {
	case WordListView:
		listView = m.wordList.View()
		loading = m.words.Loading()
	case FavoritesView:
		listView = m.favoriteList.View()
		loading = m.favorites.Loading()
	case HistoryView:
		listView = m.historyList.View()
		loading = m.history.Loading()
	}

	footer := m.help.View(m.keys)
	if loading {
		footer = styles.warn.Render("loading…") + "\n" + footer
	}
	if m.status != "" {
		footer = styles.err.Render(m.status) + "\n" + footer
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", m.renderTabBar(), listView, footer)
}

func (m *Model) renderTabBar() string {
	tabs := []struct {
		view  ViewState
		label string
	}{
		{WordListView, "[1] Words"},
		{FavoritesView, "[2] Favorites"},
		{HistoryView, "[3] History"},
	}

	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if t.view == m.tab {
			parts[i] = styles.ok.Render(t.label)
		} else {
			parts[i] = styles.help.Render(t.label)
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.err.Render("No word loaded\n\nPress esc to go back")
	}

	var b strings.Builder
	title := m.detail.Word
	if m.favorited[m.detail.Word] {
		title += " ★"
	}
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n")

	for _, phonetic := range m.detail.Phonetics {
		if phonetic.Text != "" {
			b.WriteString(styles.help.Render(phonetic.Text))
			b.WriteString("\n")
		}
	}

	for _, meaning := range m.detail.Meanings {
		b.WriteString("\n")
		b.WriteString(styles.ok.Render(meaning.PartOfSpeech))
		b.WriteString("\n")
		for i, definition := range meaning.Definitions {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, definition.Definition))
			if definition.Example != "" {
				b.WriteString(styles.help.Render(fmt.Sprintf("     e.g. %s", definition.Example)))
				b.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(m.status))
		b.WriteString("\n")
	}

	helpKeys := []key.Binding{m.keys.favorite, m.keys.back, m.keys.quit}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))

	return b.String()
}
