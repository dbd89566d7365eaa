// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formMode int

const (
	formCreate formMode = iota
	formReschedule
)

// Field indices for the create form. The reschedule form reuses the
// start/end ordering with only two fields.
const (
	createFieldRoom = iota
	createFieldCapacity
	createFieldTitle
	createFieldStart
	createFieldEnd
	createFieldCount
)

const (
	rescheduleFieldStart = iota
	rescheduleFieldEnd
	rescheduleFieldCount
)

// BookingForm is the modal input form for creating or rescheduling a
// booking. It owns a column of text inputs; Enter on the last field
// submits, Escape cancels, Tab and the arrow keys move focus.
type BookingForm struct {
	mode     formMode
	heading  string
	labels   []string
	inputs   []textinput.Model
	focusIdx int

	// Reschedule target, carried so the model doesn't have to track
	// which booking the form was opened for.
	roomID    string
	bookingID string

	theme    Theme
	renderer *lipgloss.Renderer
}

// newCreateForm builds the new-booking form. The room field is
// prefilled with the currently selected room's name; editing it to a
// name the cache doesn't know requests room creation.
func newCreateForm(theme Theme, renderer *lipgloss.Renderer, roomName string) *BookingForm {
	form := &BookingForm{
		mode:     formCreate,
		heading:  "New booking",
		labels:   []string{"Room", "Capacity", "Title", "Start", "End"},
		theme:    theme,
		renderer: renderer,
	}
	placeholders := []string{"room name", "1", "defaults to room name", "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z"}
	for index := 0; index < createFieldCount; index++ {
		form.inputs = append(form.inputs, newFormInput(placeholders[index]))
	}
	form.inputs[createFieldRoom].SetValue(roomName)
	form.inputs[0].Focus()
	return form
}

// newRescheduleForm builds the reschedule form for one booking, with
// the current window prefilled so Enter twice keeps a value as-is.
func newRescheduleForm(theme Theme, renderer *lipgloss.Renderer, roomID, bookingID, startAt, endAt string) *BookingForm {
	form := &BookingForm{
		mode:      formReschedule,
		heading:   "Reschedule booking",
		labels:    []string{"Start", "End"},
		roomID:    roomID,
		bookingID: bookingID,
		theme:     theme,
		renderer:  renderer,
	}
	for index := 0; index < rescheduleFieldCount; index++ {
		form.inputs = append(form.inputs, newFormInput(""))
	}
	form.inputs[rescheduleFieldStart].SetValue(startAt)
	form.inputs[rescheduleFieldEnd].SetValue(endAt)
	form.inputs[0].Focus()
	return form
}

func newFormInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 120
	input.Width = 40
	return input
}

// Update processes one key message. submitted is true when the user
// accepted the form, canceled when they dismissed it; the form is
// done either way.
func (form *BookingForm) Update(message tea.KeyMsg) (submitted, canceled bool, command tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		return false, true, nil

	case tea.KeyEnter:
		if form.focusIdx == len(form.inputs)-1 {
			return true, false, nil
		}
		form.setFocus(form.focusIdx + 1)
		return false, false, nil

	case tea.KeyTab, tea.KeyDown:
		form.setFocus((form.focusIdx + 1) % len(form.inputs))
		return false, false, nil

	case tea.KeyShiftTab, tea.KeyUp:
		form.setFocus((form.focusIdx + len(form.inputs) - 1) % len(form.inputs))
		return false, false, nil
	}

	form.inputs[form.focusIdx], command = form.inputs[form.focusIdx].Update(message)
	return false, false, command
}

func (form *BookingForm) setFocus(index int) {
	form.inputs[form.focusIdx].Blur()
	form.focusIdx = index
	form.inputs[form.focusIdx].Focus()
}

func (form *BookingForm) value(index int) string {
	return strings.TrimSpace(form.inputs[index].Value())
}

// View renders the form inside a rounded border.
func (form *BookingForm) View() string {
	headingStyle := form.renderer.NewStyle().
		Bold(true).
		Foreground(form.theme.HeaderForeground)
	labelStyle := form.renderer.NewStyle().
		Foreground(form.theme.FaintText).
		Width(10)
	focusedLabelStyle := labelStyle.
		Foreground(form.theme.NormalText).
		Bold(true)
	footerStyle := form.renderer.NewStyle().
		Foreground(form.theme.HelpText)
	borderStyle := form.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(form.theme.BorderColor).
		Padding(0, 1)

	lines := []string{headingStyle.Render(form.heading), ""}
	for index, input := range form.inputs {
		style := labelStyle
		if index == form.focusIdx {
			style = focusedLabelStyle
		}
		lines = append(lines, style.Render(form.labels[index])+input.View())
	}
	lines = append(lines, "", footerStyle.Render("Enter next/submit  Tab move  Esc cancel"))

	return borderStyle.Render(strings.Join(lines, "\n"))
}
