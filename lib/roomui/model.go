// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomui implements the interactive terminal browser for
// rooms and bookings: a two-pane bubbletea application with the room
// list on the left, the selected room's bookings on the right, and
// modal forms for creating and rescheduling bookings.
//
// The model never mutates the cache directly. Every data operation
// goes through the orchestrator as an asynchronous command, and the
// completion message re-snapshots the store, so the view always
// reflects confirmed service state.
package roomui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/roomctl/roomctl/lib/intent"
	"github.com/roomctl/roomctl/lib/roomapi"
	"github.com/roomctl/roomctl/lib/roomstate"
)

// FocusRegion identifies which pane has keyboard focus.
type FocusRegion int

const (
	// FocusRooms means navigation keys move the room list cursor.
	FocusRooms FocusRegion = iota
	// FocusBookings means navigation keys move the booking list cursor.
	FocusBookings
	// FocusForm means keystrokes go to the active booking form.
	FocusForm
)

// refreshDoneMsg is sent when an asynchronous refresh completes.
type refreshDoneMsg struct {
	outcome intent.Outcome
}

// actionDoneMsg is sent when an asynchronous booking mutation (create,
// cancel, reschedule) completes.
type actionDoneMsg struct {
	outcome intent.Outcome
}

// Model is the top-level bubbletea model for the room browser.
type Model struct {
	orchestrator *intent.Orchestrator
	theme        Theme
	keys         KeyMap
	renderer     *lipgloss.Renderer

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Cache snapshot and cursors. entries is re-read from the store
	// after every completed operation.
	entries       []roomstate.RoomEntry
	roomCursor    int
	bookingCursor int

	focus FocusRegion
	form  *BookingForm

	// Status bar state. notice holds the last outcome message; busy is
	// true while an operation is in flight.
	notice      string
	noticeError bool
	busy        bool
}

// NewModel creates a room browser over the given orchestrator. The
// initial view shows whatever the orchestrator's store already holds;
// Init schedules a refresh.
func NewModel(orchestrator *intent.Orchestrator) Model {
	return Model{
		orchestrator: orchestrator,
		theme:        DefaultTheme,
		keys:         DefaultKeyMap,
		renderer:     newRenderer(),
		entries:      orchestrator.Store().Rooms(),
	}
}

// Init schedules the initial refresh.
func (model Model) Init() tea.Cmd {
	return model.refreshCommand()
}

func (model Model) refreshCommand() tea.Cmd {
	orchestrator := model.orchestrator
	return func() tea.Msg {
		return refreshDoneMsg{outcome: orchestrator.Refresh(context.Background())}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case refreshDoneMsg:
		model.busy = false
		model.applyOutcome(message.outcome)
		return model, nil

	case actionDoneMsg:
		model.busy = false
		model.applyOutcome(message.outcome)
		return model, nil

	case tea.KeyMsg:
		if model.focus == FocusForm {
			return model.updateForm(message)
		}
		return model.updateBrowse(message)
	}

	// Cursor blink and other component messages while a form is open.
	if model.form != nil {
		input := &model.form.inputs[model.form.focusIdx]
		var command tea.Cmd
		*input, command = input.Update(message)
		return model, command
	}
	return model, nil
}

// applyOutcome folds a completed operation into the model: record the
// message for the status bar and re-snapshot the cache.
func (model *Model) applyOutcome(outcome intent.Outcome) {
	model.notice = outcome.Message
	model.noticeError = !outcome.OK
	model.entries = model.orchestrator.Store().Rooms()

	// Keep the room cursor on the room the operation touched when we
	// know it, so a compound create lands on the new room.
	if outcome.RoomID != "" {
		for index, entry := range model.entries {
			if entry.Room.ID == outcome.RoomID {
				model.roomCursor = index
				break
			}
		}
	}
	model.clampCursors()
}

func (model *Model) clampCursors() {
	if model.roomCursor >= len(model.entries) {
		model.roomCursor = len(model.entries) - 1
	}
	if model.roomCursor < 0 {
		model.roomCursor = 0
	}
	bookings := model.selectedBookings()
	if model.bookingCursor >= len(bookings) {
		model.bookingCursor = len(bookings) - 1
	}
	if model.bookingCursor < 0 {
		model.bookingCursor = 0
	}
}

func (model Model) selectedRoom() *roomstate.RoomEntry {
	if model.roomCursor < 0 || model.roomCursor >= len(model.entries) {
		return nil
	}
	return &model.entries[model.roomCursor]
}

func (model Model) selectedBookings() []roomapi.Booking {
	entry := model.selectedRoom()
	if entry == nil {
		return nil
	}
	return entry.Bookings
}

func (model Model) updateBrowse(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Refresh):
		model.busy = true
		model.notice = ""
		return model, model.refreshCommand()

	case key.Matches(message, model.keys.FocusToggle):
		if model.focus == FocusRooms {
			model.focus = FocusBookings
		} else {
			model.focus = FocusRooms
		}
		model.clampCursors()
		return model, nil

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
		return model, nil

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
		return model, nil

	case key.Matches(message, model.keys.Home):
		model.moveCursorTo(0)
		return model, nil

	case key.Matches(message, model.keys.End):
		model.moveCursorTo(1 << 30)
		return model, nil

	case key.Matches(message, model.keys.NewBooking):
		roomName := ""
		if entry := model.selectedRoom(); entry != nil {
			roomName = entry.Room.Name
		}
		model.form = newCreateForm(model.theme, model.renderer, roomName)
		model.focus = FocusForm
		return model, nil

	case key.Matches(message, model.keys.Reschedule):
		entry := model.selectedRoom()
		bookings := model.selectedBookings()
		if entry == nil || model.bookingCursor >= len(bookings) {
			return model, nil
		}
		booking := bookings[model.bookingCursor]
		model.form = newRescheduleForm(model.theme, model.renderer,
			entry.Room.ID, booking.ID, booking.StartAt, booking.EndAt)
		model.focus = FocusForm
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		entry := model.selectedRoom()
		bookings := model.selectedBookings()
		if entry == nil || model.bookingCursor >= len(bookings) {
			return model, nil
		}
		booking := bookings[model.bookingCursor]
		model.busy = true
		orchestrator := model.orchestrator
		roomID, bookingID := entry.Room.ID, booking.ID
		return model, func() tea.Msg {
			return actionDoneMsg{outcome: orchestrator.CancelBooking(context.Background(), roomID, bookingID)}
		}
	}
	return model, nil
}

func (model *Model) moveCursor(delta int) {
	if model.focus == FocusBookings {
		model.bookingCursor += delta
	} else {
		model.roomCursor += delta
		model.bookingCursor = 0
	}
	model.clampCursors()
}

func (model *Model) moveCursorTo(position int) {
	if model.focus == FocusBookings {
		model.bookingCursor = position
	} else {
		model.roomCursor = position
		model.bookingCursor = 0
	}
	model.clampCursors()
}

func (model Model) updateForm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitted, canceled, command := model.form.Update(message)
	if canceled {
		model.form = nil
		model.focus = FocusRooms
		return model, nil
	}
	if !submitted {
		return model, command
	}

	form := model.form
	model.form = nil
	model.focus = FocusRooms
	model.busy = true

	switch form.mode {
	case formCreate:
		return model, model.createCommand(form)
	case formReschedule:
		return model, model.rescheduleCommand(form)
	}
	return model, nil
}

// createCommand builds the create-booking command from a submitted
// form. A room name that matches a cached room books that room; any
// other name requests room creation first.
func (model Model) createCommand(form *BookingForm) tea.Cmd {
	parameters := intent.CreateBookingParams{
		RoomName: form.value(createFieldRoom),
		Capacity: intent.ParseCapacity(form.value(createFieldCapacity)),
		Title:    form.value(createFieldTitle),
		StartAt:  form.value(createFieldStart),
		EndAt:    form.value(createFieldEnd),
	}
	for _, entry := range model.entries {
		if entry.Room.Name == parameters.RoomName {
			parameters.RoomID = entry.Room.ID
			break
		}
	}

	orchestrator := model.orchestrator
	return func() tea.Msg {
		return actionDoneMsg{outcome: orchestrator.CreateBooking(context.Background(), parameters)}
	}
}

func (model Model) rescheduleCommand(form *BookingForm) tea.Cmd {
	times := intent.StaticTimes{
		StartAt: form.value(rescheduleFieldStart),
		EndAt:   form.value(rescheduleFieldEnd),
	}
	orchestrator := model.orchestrator
	roomID, bookingID := form.roomID, form.bookingID
	return func() tea.Msg {
		return actionDoneMsg{outcome: orchestrator.RescheduleBooking(context.Background(), roomID, bookingID, times)}
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}

	headerStyle := model.renderer.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	header := headerStyle.Render("roomctl")

	var body string
	if model.form != nil {
		body = lipgloss.Place(model.width, model.bodyHeight(),
			lipgloss.Center, lipgloss.Center, model.form.View())
	} else {
		body = model.panesView()
	}

	return strings.Join([]string{header, body, model.statusView(), model.helpView()}, "\n")
}

func (model Model) bodyHeight() int {
	// Header, status bar, and help line each take one row.
	height := model.height - 3
	if height < 3 {
		height = 3
	}
	return height
}

func (model Model) panesView() string {
	paneHeight := model.bodyHeight()
	roomsWidth := model.width * 2 / 5
	if roomsWidth < 24 {
		roomsWidth = 24
	}
	bookingsWidth := model.width - roomsWidth

	rooms := model.paneStyle(model.focus == FocusRooms).
		Width(roomsWidth - 2).
		Height(paneHeight - 2).
		Render(model.roomsPane(roomsWidth-2, paneHeight-2))
	bookings := model.paneStyle(model.focus == FocusBookings).
		Width(bookingsWidth - 2).
		Height(paneHeight - 2).
		Render(model.bookingsPane(bookingsWidth-2, paneHeight-2))

	return lipgloss.JoinHorizontal(lipgloss.Top, rooms, bookings)
}

func (model Model) paneStyle(focused bool) lipgloss.Style {
	style := model.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor)
	if focused {
		style = style.BorderForeground(model.theme.HeaderForeground)
	}
	return style
}

func (model Model) roomsPane(width, height int) string {
	if len(model.entries) == 0 {
		return model.renderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render("no rooms — press n to book one")
	}

	selectedStyle := model.renderer.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)
	normalStyle := model.renderer.NewStyle().
		Foreground(model.theme.NormalText)

	var lines []string
	for index, entry := range visibleWindow(model.entries, model.roomCursor, height) {
		absolute := windowStart(len(model.entries), model.roomCursor, height) + index
		row := fmt.Sprintf("%s  (cap %d, %d bookings)",
			entry.Room.Name, entry.Room.Capacity, len(entry.Bookings))
		row = ansi.Truncate(row, width, "…")
		if absolute == model.roomCursor {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, normalStyle.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func (model Model) bookingsPane(width, height int) string {
	bookings := model.selectedBookings()
	if len(bookings) == 0 {
		return model.renderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render("no bookings")
	}

	selectedStyle := model.renderer.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)
	normalStyle := model.renderer.NewStyle().
		Foreground(model.theme.NormalText)

	var lines []string
	for index, booking := range visibleWindow(bookings, model.bookingCursor, height) {
		absolute := windowStart(len(bookings), model.bookingCursor, height) + index
		statusStyle := model.renderer.NewStyle().
			Foreground(model.theme.StatusColor(booking.Status))
		row := fmt.Sprintf("%s  %s → %s  ", booking.Title, booking.StartAt, booking.EndAt)
		// Leave room for the status tag at the end of the row.
		if available := width - ansi.StringWidth(booking.Status); available > 0 {
			row = ansi.Truncate(row, available, "…")
		}
		if absolute == model.bookingCursor && model.focus == FocusBookings {
			lines = append(lines, selectedStyle.Render(row)+statusStyle.Render(booking.Status))
		} else {
			lines = append(lines, normalStyle.Render(row)+statusStyle.Render(booking.Status))
		}
	}
	return strings.Join(lines, "\n")
}

func (model Model) statusView() string {
	if model.busy {
		return model.renderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render("working...")
	}
	if model.notice == "" {
		return ""
	}
	color := model.theme.NoticeOK
	if model.noticeError {
		color = model.theme.NoticeError
	}
	return model.renderer.NewStyle().Foreground(color).Render(model.notice)
}

func (model Model) helpView() string {
	bindings := []key.Binding{
		model.keys.Up, model.keys.Down, model.keys.FocusToggle,
		model.keys.Refresh, model.keys.NewBooking,
		model.keys.Reschedule, model.keys.Cancel, model.keys.Quit,
	}
	var parts []string
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return model.renderer.NewStyle().
		Foreground(model.theme.HelpText).
		Render(strings.Join(parts, "  "))
}

// windowStart computes the first visible index so that the cursor
// stays inside a window of the given height.
func windowStart(total, cursor, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}

func visibleWindow[T any](items []T, cursor, height int) []T {
	start := windowStart(len(items), cursor, height)
	end := start + height
	if height <= 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
