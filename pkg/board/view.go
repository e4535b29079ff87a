package board

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	todayStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	faintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeCard     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("213")).Padding(0, 1)
	inactiveCard   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	scoreBarFilled = "█"
	scoreBarEmpty  = "░"
)

func resultColor(r model.ClientResult) color.Color {
	switch r {
	case model.ResultBought:
		return lipgloss.Color("42")
	case model.ResultNotBought:
		return lipgloss.Color("203")
	case model.ResultPrepayment:
		return lipgloss.Color("220")
	}
	return lipgloss.Color("241")
}

// View renders the board and whatever modal is open.
func (m Model) View() string {
	body := m.viewBoardArea()

	switch m.mode {
	case modeDetail, modeEdit, modeConfirmDelete:
		body += "\n\n" + m.currentModal()
	case modeJump:
		body += "\n\nGo to date: " + m.jumpInput.View()
	case modeHelp:
		body += "\n\n" + m.viewHelp()
	}

	status := m.status
	if m.store.Status() == StatusError && m.store.Err() != nil {
		status = errStyle.Render("ERR: " + m.store.Err().Error() + " (showing last loaded week)")
	}
	return body + "\n\n" + faintStyle.Render(status)
}

// viewBoardArea is everything rendered above the modal: the header plus the
// day columns (or the loading line).
func (m Model) viewBoardArea() string {
	body := m.viewHeader()
	if m.store.Loading() {
		body += "\n\n" + faintStyle.Render("Loading week "+m.store.Window().Key()+" ...")
	} else {
		body += "\n" + m.viewColumns()
	}
	return body
}

// currentModal renders the open detail, edit, or delete surface, or "".
func (m Model) currentModal() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeEdit:
		return m.viewEdit()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}
	return ""
}

// modalHit reports whether a click at terminal cell (x, y) lands inside the
// open modal's rendered box. Clicks there interact with the content; only
// clicks on the surrounding board dismiss it.
func (m Model) modalHit(x, y int) bool {
	modal := m.currentModal()
	if modal == "" {
		return false
	}
	top := strings.Count(m.viewBoardArea(), "\n") + 2
	return y >= top && y < top+lipgloss.Height(modal) && x < lipgloss.Width(modal)
}

func (m Model) viewHeader() string {
	w := m.store.Window()
	label := fmt.Sprintf("%s – %s", w.Start.Format("Jan 2"), w.End.Format("Jan 2, 2006"))
	city := m.store.City().Label()
	return headerStyle.Render("Week "+label) + faintStyle.Render("  ·  "+city)
}

func (m Model) viewColumns() string {
	if m.store.Window().Start.IsZero() {
		return ""
	}
	width := m.columnWidth()
	dayIdx, cardIdx := m.grid.Cursor()
	todayKey := schedule.DayKey(m.now())

	cols := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		key := m.grid.DayKey(i)
		if key == "" {
			// first fetch failed; fall back to the window's own days
			key = schedule.DayKey(m.store.Window().Days[i])
		}
		title := fmt.Sprintf("%s %s", dayNames[i], strings.TrimPrefix(key[8:], "0"))
		switch {
		case key == todayKey:
			title = todayStyle.Render(title + " ●")
		case i == dayIdx:
			title = headerStyle.Render(title)
		default:
			title = faintStyle.Render(title)
		}

		lines := []string{title}
		cards := m.grid.Cards(i)
		if len(cards) == 0 {
			lines = append(lines, faintStyle.Render("  –"))
		}
		for j, c := range cards {
			style := inactiveCard
			if i == dayIdx && j == cardIdx {
				style = activeCard
			}
			lines = append(lines, style.Width(width).Render(m.renderCard(c, width-4)))
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderCard(c model.ClientCard, width int) string {
	lines := []string{
		faintStyle.Render(c.LessonDatetime.Format("15:04")) + " " + truncate(c.Name, width-6),
	}
	if c.TeacherName != "" {
		lines = append(lines, truncate("♪ "+c.TeacherName, width))
	}
	if c.ManagerName != "" {
		lines = append(lines, truncate("☎ "+c.ManagerName, width))
	}
	footer := ""
	if c.Result != model.ResultNone {
		footer = lipgloss.NewStyle().Foreground(resultColor(c.Result)).Render(c.Result.Label())
	}
	if s := c.Score(); s != 0 {
		if footer != "" {
			footer += " "
		}
		footer += faintStyle.Render(fmt.Sprintf("%d/10", s))
	}
	if footer != "" {
		lines = append(lines, footer)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDetail() string {
	if m.detailLoading {
		return modalStyle.Render("Loading client ...")
	}
	if m.detailErr != "" {
		return modalStyle.Render(errStyle.Render("Could not load client: "+m.detailErr) + "\n\nesc to close")
	}

	d := m.detail
	var b strings.Builder
	b.WriteString(headerStyle.Render(d.Name) + "\n")
	b.WriteString(faintStyle.Render(d.LessonDatetime.Format("Monday, Jan 2 2006 at 15:04")) + "\n")
	if d.Result != model.ResultNone {
		b.WriteString(lipgloss.NewStyle().Foreground(resultColor(d.Result)).Render(d.Result.Label()) + "\n")
	}

	if len(d.Recordings) == 0 {
		b.WriteString("\n" + faintStyle.Render("No recordings uploaded yet"))
	}
	for _, rec := range d.Recordings {
		b.WriteString("\n" + m.renderRecording(rec))
	}

	lines := strings.Split(b.String(), "\n")
	height := m.modalHeight()
	start := m.detailScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	view := strings.Join(lines[start:end], "\n")
	return modalStyle.Render(view + "\n\n" + faintStyle.Render("j/k scroll · esc close"))
}

func (m Model) renderRecording(rec model.RecordingDetail) string {
	var b strings.Builder
	title := rec.EmployeeRole.Label() + "  " + rec.EmployeeName
	if len(rec.Directions) > 0 {
		labels := make([]string, 0, len(rec.Directions))
		for _, d := range rec.Directions {
			labels = append(labels, d.Label())
		}
		title += faintStyle.Render(" (" + strings.Join(labels, ", ") + ")")
	}
	b.WriteString(headerStyle.Render(title) + "\n")

	if rec.Status != model.StatusDone {
		b.WriteString(faintStyle.Render(rec.Status.Label()) + "\n")
		return b.String()
	}
	if rec.Score != 0 {
		b.WriteString(scoreBar(rec.Score) + "\n")
	}
	if rec.Analysis != "" {
		b.WriteString(rec.Analysis + "\n")
	}
	return b.String()
}

func scoreBar(score int) string {
	color := lipgloss.Color("203")
	if score >= 7 {
		color = lipgloss.Color("42")
	} else if score >= 4 {
		color = lipgloss.Color("220")
	}
	bar := strings.Repeat(scoreBarFilled, score) + strings.Repeat(scoreBarEmpty, 10-score)
	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %d/10", bar, score))
}

func (m Model) viewEdit() string {
	editing := m.sel.Editing()
	if editing == nil {
		return ""
	}

	nameLabel := "  Name:   "
	resultLabel := "  Result: "
	if m.editFocus == focusName {
		nameLabel = "→ Name:   "
	} else {
		resultLabel = "→ Result: "
	}

	chosen := model.ResultOptions()[m.resultIndex]
	result := lipgloss.NewStyle().Foreground(resultColor(chosen)).Render(chosen.Label())
	if m.editFocus == focusResult {
		result = "‹ " + result + " ›"
	}

	lines := []string{
		headerStyle.Render("Edit client"),
		"",
		nameLabel + m.nameInput.View(),
		resultLabel + result,
	}
	if m.editErr != "" {
		lines = append(lines, "", errStyle.Render("Save failed: "+m.editErr))
	}
	footer := "tab switch field · enter save · esc cancel"
	if m.saving {
		footer = "Saving ..."
	}
	lines = append(lines, "", faintStyle.Render(footer))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewConfirmDelete() string {
	return modalStyle.Render(
		warnStyle.Render("Delete this client and all their recordings?") +
			"\n\n" + faintStyle.Render("y confirm · n cancel"))
}

func (m Model) viewHelp() string {
	help := strings.Join([]string{
		"h/l, ←/→   move across days (past the edge changes week)",
		"j/k, ↑/↓   move between cards",
		"[ / ]      previous / next week",
		"t          jump to today's week",
		"g          go to a specific date",
		"enter, v   open client detail",
		"e, i       edit name and sales result",
		"d          delete (asks for confirmation)",
		"c          switch city",
		"r          refetch the current week",
		"q          quit",
	}, "\n")
	return modalStyle.Render(headerStyle.Render("Keys") + "\n\n" + help)
}

func (m Model) columnWidth() int {
	if m.termWidth <= 0 {
		return 18
	}
	w := m.termWidth/7 - 1
	if w < 14 {
		w = 14
	}
	if w > 28 {
		w = 28
	}
	return w
}

func (m Model) modalHeight() int {
	if m.termHeight <= 0 {
		return 20
	}
	h := m.termHeight - 8
	if h < 5 {
		h = 5
	}
	return h
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
