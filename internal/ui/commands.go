// Package ui provides the slash command system for LeaseGuard's TUI.
// Commands allow users to control the TUI without leaving the chat interface.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ═══════════════════════════════════════════════════════════════════════════════
// COMMAND MESSAGE TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// ShowHelpMsg requests opening the help overlay.
type ShowHelpMsg struct{}

// ToggleThemeMsg requests flipping between the light and dark palettes.
type ToggleThemeMsg struct{}

// OpenDocumentMsg requests analyzing the lease document at Path.
type OpenDocumentMsg struct {
	Path string
}

// NewSessionMsg requests clearing the analysis, transcript and insights.
type NewSessionMsg struct{}

// CommandErrorMsg signals an invalid or failed command.
type CommandErrorMsg struct {
	Command string
	Error   string
}

// ═══════════════════════════════════════════════════════════════════════════════
// COMMAND ROUTER
// ═══════════════════════════════════════════════════════════════════════════════

// HandleCommand parses and routes slash commands to their handlers.
// This is the main entry point for all input starting with '/'.
//
// Supported commands:
//   - /open, /o <path>   - Upload and analyze a lease document
//   - /new, /n           - Clear the session and start over
//   - /theme, /t         - Toggle between light and dark mode
//   - /help, /h, /?      - Show the help overlay
//   - /quit, /q, /exit   - Exit the application
func HandleCommand(input string) tea.Cmd {
	// Remove leading slash and split into parts
	input = strings.TrimPrefix(input, "/")
	parts := strings.Fields(input)

	if len(parts) == 0 {
		return cmdUnknown("")
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "open", "o":
		return cmdOpen(args)

	case "new", "n":
		return cmdNew()

	case "theme", "t":
		return cmdTheme()

	case "help", "h", "?":
		return cmdHelp()

	case "quit", "q", "exit":
		return tea.Quit

	default:
		return cmdUnknown(cmd)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// INDIVIDUAL COMMAND HANDLERS
// ═══════════════════════════════════════════════════════════════════════════════

// cmdOpen requests analysis of a document. The path may contain spaces, so the
// remaining fields are rejoined rather than taking only the first.
func cmdOpen(args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return CommandErrorMsg{
				Command: "open",
				Error:   "usage: /open <path to lease document>",
			}
		}
	}

	path := strings.Join(args, " ")
	return func() tea.Msg {
		return OpenDocumentMsg{Path: path}
	}
}

// cmdNew clears the session state.
func cmdNew() tea.Cmd {
	return func() tea.Msg {
		return NewSessionMsg{}
	}
}

// cmdTheme toggles the color palette.
func cmdTheme() tea.Cmd {
	return func() tea.Msg {
		return ToggleThemeMsg{}
	}
}

// cmdHelp opens the help overlay showing commands and keybindings.
func cmdHelp() tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{}
	}
}

// cmdUnknown reports an unrecognized command.
func cmdUnknown(cmd string) tea.Cmd {
	return func() tea.Msg {
		return CommandErrorMsg{
			Command: cmd,
			Error:   fmt.Sprintf("unknown command: /%s (try /help)", cmd),
		}
	}
}
