package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/board/internal/weekgrid"
	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

// Fetcher is the slice of the API the board needs.
type Fetcher interface {
	FetchClients(ctx context.Context, city model.City, weekKey string) ([]model.ClientCard, error)
	ClientDetail(ctx context.Context, id string) (model.ClientDetail, error)
	UpdateClient(ctx context.Context, id string, upd model.ClientUpdate) error
	DeleteClient(ctx context.Context, id string) error
}

// Model states
type mode int

const (
	modeBoard mode = iota
	modeDetail
	modeEdit
	modeConfirmDelete
	modeJump
	modeHelp
)

// edit surface focus
const (
	focusName = iota
	focusResult
)

// messages
type clientsLoadedMsg struct {
	req   FetchRequest
	cards []model.ClientCard
	err   error
}

type detailLoadedMsg struct {
	id     string
	detail model.ClientDetail
	err    error
}

type clientSavedMsg struct {
	id  string
	err error
}

type clientDeletedMsg struct {
	id  string
	err error
}

// Model is the interactive weekly board.
type Model struct {
	svc  Fetcher
	ctx  context.Context
	mode mode

	store *ScheduleStore
	grid  *weekgrid.Grid
	sel   Selection

	// detail view
	detail        model.ClientDetail
	detailLoading bool
	detailErr     string
	detailScroll  int

	// edit surface
	nameInput   textinput.Model
	resultIndex int
	editFocus   int
	editErr     string
	saving      bool

	// jump-to-date
	jumpInput textinput.Model

	status      string
	authExpired bool
	now         func() time.Time

	termWidth  int
	termHeight int
}

// New creates the board model for a city. The first fetch happens in Init.
func New(svc Fetcher, city model.City) Model {
	name := textinput.New()
	name.Placeholder = "Client name"
	name.CharLimit = 128
	name.Prompt = ""

	jump := textinput.New()
	jump.Placeholder = "YYYY-MM-DD"
	jump.CharLimit = 10
	jump.Prompt = ""

	return Model{
		svc:       svc,
		ctx:       context.Background(),
		mode:      modeBoard,
		store:     NewStore(city),
		grid:      weekgrid.New(),
		nameInput: name,
		jumpInput: jump,
		status:    "h/l days · j/k cards · [/] weeks · enter detail · e edit · d delete · g go to date · c city · r refresh · ? help",
		now:       time.Now,
	}
}

// Init issues the fetch for the week containing today.
func (m Model) Init() tea.Cmd {
	return m.fetch(m.store.Initialize(m.now()))
}

func (m *Model) fetch(req FetchRequest) tea.Cmd {
	return func() tea.Msg {
		cards, err := m.svc.FetchClients(m.ctx, req.City, req.WeekKey)
		return clientsLoadedMsg{req: req, cards: cards, err: err}
	}
}

func (m *Model) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.svc.ClientDetail(m.ctx, id)
		return detailLoadedMsg{id: id, detail: detail, err: err}
	}
}

func (m *Model) save(id string, upd model.ClientUpdate) tea.Cmd {
	return func() tea.Msg {
		return clientSavedMsg{id: id, err: m.svc.UpdateClient(m.ctx, id, upd)}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		return clientDeletedMsg{id: id, err: m.svc.DeleteClient(m.ctx, id)}
	}
}

func (m *Model) syncGrid() {
	b := m.store.Buckets()
	m.grid.SetWeek(m.store.Window(), b)
	if b.Stray > 0 {
		m.status = fmt.Sprintf("WARN: %d record(s) outside the requested week were hidden", b.Stray)
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case clientsLoadedMsg:
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		if !m.store.Apply(msg.req, msg.cards, msg.err) {
			break // superseded response, discard
		}
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error() + " (showing last loaded week)"
			break
		}
		m.syncGrid()

	case detailLoadedMsg:
		if m.sel.ViewingID() != msg.id {
			break // detail was closed or reopened for someone else
		}
		m.detailLoading = false
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		if msg.err != nil {
			m.detailErr = msg.err.Error()
			break
		}
		m.detail = msg.detail

	case clientSavedMsg:
		m.saving = false
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		if msg.err != nil {
			// stay in the edit surface, inputs untouched
			m.editErr = msg.err.Error()
			break
		}
		m.sel.CloseEdit()
		m.mode = modeBoard
		m.status = "Saved"
		m.nameInput.Blur()
		cmds = append(cmds, m.fetch(m.store.Refetch()))

	case clientDeletedMsg:
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error()
			break
		}
		m.status = "Deleted"
		cmds = append(cmds, m.fetch(m.store.Refetch()))

	case tea.MouseClickMsg:
		// a click on the surrounding board dismisses the modal, same as
		// esc; clicks on the modal's own content do not
		if m.mode == modeDetail || m.mode == modeEdit || m.mode == modeConfirmDelete {
			if !m.modalHit(msg.X, msg.Y) {
				m.dismissModal()
			}
		}

	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeBoard
			}
		case modeDetail:
			m.updateDetail(msg)
		case modeEdit:
			cmds = append(cmds, m.updateEdit(msg))
		case modeConfirmDelete:
			cmds = append(cmds, m.updateConfirmDelete(msg))
		case modeJump:
			cmds = append(cmds, m.updateJump(msg))
		case modeBoard:
			cmds = append(cmds, m.updateBoard(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) dismissModal() {
	switch m.mode {
	case modeDetail:
		m.sel.CloseDetail()
	case modeEdit:
		m.sel.CloseEdit()
		m.nameInput.Blur()
		m.status = "Edit cancelled"
	case modeConfirmDelete:
		m.sel.CancelDelete()
	}
	m.mode = modeBoard
}

func (m *Model) updateBoard(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	// day movement; pushing past the edge navigates a week
	case "h", "left":
		if !m.grid.MoveDay(-1) {
			m.grid.SelectDay(6)
			return m.fetch(m.store.GoToOffset(-1))
		}
	case "l", "right":
		if !m.grid.MoveDay(1) {
			m.grid.SelectDay(0)
			return m.fetch(m.store.GoToOffset(1))
		}

	// card movement
	case "j", "down":
		m.grid.MoveCard(1)
	case "k", "up":
		m.grid.MoveCard(-1)

	// week navigation
	case "[", "pgup":
		return m.fetch(m.store.GoToOffset(-1))
	case "]", "pgdown":
		return m.fetch(m.store.GoToOffset(1))
	case "t":
		return m.fetch(m.store.JumpTo(m.now()))
	case "g":
		m.mode = modeJump
		m.jumpInput.Reset()
		m.status = "Go to date"
		return tea.Batch(m.jumpInput.Focus(), textinput.Blink)

	// record actions
	case "enter", "v":
		if c := m.grid.ActiveCard(); c != nil {
			m.sel.OpenDetail(c.ID)
			m.mode = modeDetail
			m.detail = model.ClientDetail{}
			m.detailLoading = true
			m.detailErr = ""
			m.detailScroll = 0
			return m.loadDetail(c.ID)
		}
	case "e", "i":
		if c := m.grid.ActiveCard(); c != nil {
			m.openEdit(*c)
			return tea.Batch(m.nameInput.Focus(), textinput.Blink)
		}
	case "d":
		if c := m.grid.ActiveCard(); c != nil {
			m.sel.RequestDelete(c.ID)
			m.mode = modeConfirmDelete
		}

	// filters and refresh
	case "c":
		return m.fetch(m.store.SetCity(m.store.City().Next()))
	case "r":
		return m.fetch(m.store.Refetch())

	case "?":
		m.mode = modeHelp
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) openEdit(card model.ClientCard) {
	m.sel.OpenEdit(card)
	m.mode = modeEdit
	m.editErr = ""
	m.editFocus = focusName
	m.nameInput.SetValue(card.Name)
	m.nameInput.CursorEnd()
	m.resultIndex = 0
	for i, r := range model.ResultOptions() {
		if r == card.Result {
			m.resultIndex = i
		}
	}
}

func (m *Model) updateDetail(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.dismissModal()
	case "j", "down":
		m.detailScroll++
	case "k", "up":
		if m.detailScroll > 0 {
			m.detailScroll--
		}
	}
}

func (m *Model) updateEdit(msg tea.KeyPressMsg) tea.Cmd {
	if m.saving {
		return nil // a save is in flight; let it resolve
	}
	switch msg.String() {
	case "esc":
		m.dismissModal()
		return nil
	case "tab", "shift+tab":
		if m.editFocus == focusName {
			m.editFocus = focusResult
			m.nameInput.Blur()
		} else {
			m.editFocus = focusName
			return m.nameInput.Focus()
		}
		return nil
	case "enter":
		return m.submitEdit()
	}

	if m.editFocus == focusResult {
		options := model.ResultOptions()
		switch msg.String() {
		case "j", "down", "l", "right":
			m.resultIndex = (m.resultIndex + 1) % len(options)
		case "k", "up", "h", "left":
			m.resultIndex = (m.resultIndex + len(options) - 1) % len(options)
		}
		return nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *Model) submitEdit() tea.Cmd {
	editing := m.sel.Editing()
	if editing == nil {
		m.mode = modeBoard
		return nil
	}

	var upd model.ClientUpdate
	if name := strings.TrimSpace(m.nameInput.Value()); name != "" && name != editing.Name {
		upd.Name = name
	}
	if chosen := model.ResultOptions()[m.resultIndex]; chosen != editing.Result {
		upd.Result = &chosen
	}
	if upd.Empty() {
		m.dismissModal()
		return nil
	}

	m.saving = true
	m.editErr = ""
	return m.save(editing.ID, upd)
}

func (m *Model) updateConfirmDelete(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		id := m.sel.DeletingID()
		m.sel.CancelDelete()
		m.mode = modeBoard
		if id != "" {
			return m.remove(id)
		}
	case "n", "esc", "q":
		m.dismissModal()
	}
	return nil
}

func (m *Model) updateJump(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.jumpInput.Value())
		m.mode = modeBoard
		m.jumpInput.Blur()
		if raw == "" {
			return nil
		}
		date, err := time.ParseInLocation(schedule.KeyLayout, raw, time.Local)
		if err != nil {
			m.status = fmt.Sprintf("Bad date %q, want YYYY-MM-DD", raw)
			return nil
		}
		return m.fetch(m.store.JumpTo(date))
	case "esc":
		m.mode = modeBoard
		m.jumpInput.Blur()
		m.status = "Jump cancelled"
	default:
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return cmd
	}
	return nil
}

// AuthExpired reports whether the board quit because the session died.
func (m Model) AuthExpired() bool {
	return m.authExpired
}

// Run opens the board in the alternate screen.
func Run(svc Fetcher, city model.City) error {
	p := tea.NewProgram(New(svc, city), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.AuthExpired() {
		return errors.New("board: session expired, run 'beethoven login'")
	}
	return nil
}
