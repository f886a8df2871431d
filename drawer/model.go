package drawer

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zupos/board"
	"zupos/board/piece"
	nt "zupos/entity"
	"zupos/style"
)

// Kind is the input used for a field.
type Kind string

const (
	Text   Kind = "text"
	Choice Kind = "choice"
	Check  Kind = "check"
)

const (
	pressSubmit = "submit"
	pressReset  = "reset"
	pressCancel = "cancel"
)

// Field is one input of the form.
type Field struct {
	Name      string   `yaml:"name"`
	Label     string   `yaml:"label"`
	Kind      Kind     `yaml:"kind"`
	Options   []string `yaml:"options,omitempty"`
	MaxLength int      `yaml:"maxLength,omitempty"`
}

// Config holds the drawer chrome.
type Config struct {
	Title              string `yaml:"title"`
	EditTitle          string `yaml:"editTitle,omitempty"`
	Subtitle           string `yaml:"subtitle,omitempty"`
	SubmitLabel        string `yaml:"submitLabel"`
	ResetLabel         string `yaml:"resetLabel"`
	CancelLabel        string `yaml:"cancelLabel"`
	ShowUnsavedWarning bool   `yaml:"showUnsavedWarning"`
	Width              int    `yaml:"width"`
}

// Model is a side panel hosting a form session.
// It emits SubmitMsg and ClosedMsg and expects ResultMsg after a submit.
type Model struct {
	cfg     Config
	fields  []Field
	session Session
	board   board.Board

	width  int
	height int
}

// New creates a closed drawer with fields.
func (cfg Config) New(fields []Field, validator Validator) Model {

	if cfg.SubmitLabel == "" {
		cfg.SubmitLabel = "Save"
	}
	if cfg.ResetLabel == "" {
		cfg.ResetLabel = "Reset"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	if cfg.Width <= 0 {
		cfg.Width = 48
	}

	return Model{
		cfg:     cfg,
		fields:  fields,
		session: NewSession(validator, cfg.ShowUnsavedWarning),
	}
}

// Open shows the drawer in mode with baseline values.
func (m Model) Open(mode Mode, baseline Values) Model {

	m.session = m.session.Open(mode, baseline)
	m.board = m.buildBoard()
	return m
}

// Set changes a field as if it were typed, keeping focus.
func (m Model) Set(field string, value any) Model {

	ssn, ok := m.session.Set(field, value)
	if !ok {
		return m
	}

	rank, file := m.board.Position()
	m.session = ssn
	m.board = m.buildBoard().Focus(rank, file)
	return m
}

// Session returns the form state.
func (m Model) Session() Session {
	return m.session
}

// IsOpen reports whether the drawer is showing.
func (m Model) IsOpen() bool {
	return m.session.State().IsOpen()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ResultMsg:
		return m.result(msg.Err)

	case *piece.PressedMsg:
		switch msg.Id {
		case pressSubmit:
			return m.submit()
		case pressReset:
			return m.reset(), nil
		case pressCancel:
			return m.requestClose()
		}

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// Layers renders the drawer against the right edge, followed by the confirm
// prompt when closing a dirty form.
func (m Model) Layers() []*lipgloss.Layer {

	var content strings.Builder

	content.WriteString(style.TitleStyle.Render(m.title()) + "\n")
	if m.cfg.Subtitle != "" {
		content.WriteString(style.MutedStyle.Render(m.cfg.Subtitle) + "\n")
	}
	content.WriteString("\n")

	lines := strings.Split(m.board.Render(), "\n")
	for i, line := range lines {
		content.WriteString(line + "\n")
		if i < len(m.fields) {
			if msg := m.session.Error(m.fields[i].Name); msg != "" {
				content.WriteString(style.ErrorStyle.Render("  "+msg) + "\n")
			}
		}
	}

	switch {
	case m.session.IsSubmitting():
		content.WriteString("\n" + style.MutedStyle.Render("Saving…"))
	case m.session.Failure() != nil:
		content.WriteString("\n" + style.ErrorStyle.Render(m.session.Failure().Error()))
	}

	height := max(1, m.height-2)
	panel := style.DialogStyle.Width(m.cfg.Width).Height(height).Render(content.String())
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer("drawer", panel).X(max(0, m.width-lipgloss.Width(panel))),
	}

	if m.session.State() == ClosingConfirm {
		prompt := style.DialogStyle.Render("Discard unsaved changes?\n\n" + style.MutedStyle.Render("y: discard  n: keep editing"))
		x := max(0, (m.width-lipgloss.Width(prompt))/2)
		y := max(0, (m.height-lipgloss.Height(prompt))/2)
		layers = append(layers, lipgloss.NewLayer("confirm", prompt).X(x).Y(y))
	}

	return layers
}

// unexported

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	switch m.session.State() {
	case Closed, Submitting:
		return m, nil

	case ClosingConfirm:
		switch msg.String() {
		case "y", "enter":
			m.session, _ = m.session.ConfirmDiscard()
			return m, closedCmd(false)
		case "n", "esc":
			m.session, _ = m.session.CancelClose()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.requestClose()
	case "ctrl+s":
		return m.submit()
	case "ctrl+r":
		return m.reset(), nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	m = m.sync()
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {

	ssn, ok := m.session.Submit()
	m.session = ssn
	if !ok {
		return m, nil
	}

	m.board = m.board.SetDisabled(true)
	submit := SubmitMsg{Mode: ssn.Mode(), Values: ssn.Values()}
	return m, func() tea.Msg { return submit }
}

func (m Model) result(err error) (Model, tea.Cmd) {

	if err != nil {
		m.session, _ = m.session.SubmitFailed(err)
		m.board = m.board.SetDisabled(false)
		return m, nil
	}

	ssn, ok := m.session.SubmitSucceeded()
	m.session = ssn
	if !ok {
		return m, nil
	}
	return m, closedCmd(true)
}

func (m Model) requestClose() (Model, tea.Cmd) {

	ssn, ok := m.session.RequestClose()
	m.session = ssn
	if ok && ssn.State() == Closed {
		return m, closedCmd(false)
	}
	return m, nil
}

func (m Model) reset() Model {

	ssn, ok := m.session.Reset()
	if ok {
		m.session = ssn
		m.board = m.buildBoard()
	}
	return m
}

// sync copies input values from the board into the session.
func (m Model) sync() Model {

	for i, fld := range m.fields {
		pc := m.board.At(i, 1)

		var val any
		switch pc := pc.(type) {
		case piece.Checkbox:
			val = pc.Checked()
		case nil:
			continue
		default:
			val = pc.Value()
		}

		if (nt.Value{Raw: val}).Equal(m.session.Value(fld.Name)) {
			continue
		}
		m.session, _ = m.session.Set(fld.Name, val)
	}
	return m
}

func (m Model) buildBoard() board.Board {

	labelWidth := 0
	for _, fld := range m.fields {
		labelWidth = max(labelWidth, lipgloss.Width(fld.Label)+1)
	}

	var ranks [][]board.Piece
	for _, fld := range m.fields {
		val := m.session.Value(fld.Name)
		ranks = append(ranks, []board.Piece{
			piece.NewLabel(fld.Label, labelWidth, style.MutedStyle),
			input(fld, val, m.cfg.Width-labelWidth-6),
		})
	}

	ranks = append(ranks, []board.Piece{
		piece.NewButton(pressSubmit, m.cfg.SubmitLabel),
		piece.NewButton(pressReset, m.cfg.ResetLabel),
		piece.NewButton(pressCancel, m.cfg.CancelLabel),
	})

	return board.New(ranks)
}

func (m Model) title() string {
	if m.session.Mode() == Edit && m.cfg.EditTitle != "" {
		return m.cfg.EditTitle
	}
	return m.cfg.Title
}

func input(fld Field, val any, width int) board.Piece {

	switch fld.Kind {
	case Check:
		on, _ := val.(bool)
		return piece.NewCheckbox(on, "")
	case Choice:
		current, _ := val.(string)
		return piece.NewChoice(fld.Options, current)
	}

	text, _ := val.(string)
	return piece.NewTextInput(text, fld.MaxLength, width)
}

func closedCmd(submitted bool) tea.Cmd {
	return func() tea.Msg { return ClosedMsg{Submitted: submitted} }
}
