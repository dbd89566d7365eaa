// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/roomctl/roomctl/lib/roomapi"
)

// Theme defines the color palette for the room browser. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Booking status colors.
	StatusActive   lipgloss.Color
	StatusCanceled lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	NoticeOK    lipgloss.Color
	NoticeError lipgloss.Color
}

// StatusColor returns the color for a booking status string.
// Unknown values render faint.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case roomapi.StatusActive:
		return theme.StatusActive
	case roomapi.StatusCanceled:
		return theme.StatusCanceled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusActive:   lipgloss.Color("114"), // green
	StatusCanceled: lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeOK:    lipgloss.Color("114"),
	NoticeError: lipgloss.Color("196"),
}

// newRenderer builds a lipgloss renderer pinned to the ANSI256
// profile. Pinning avoids re-detection against stdout, which is
// unreliable once bubbletea owns the terminal.
func newRenderer() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer
}
