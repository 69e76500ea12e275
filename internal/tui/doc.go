// Package tui provides the terminal user interface for gitdash.
//
// It handles:
//   - Interactive prompts (using survey)
//   - Structured logging and status reporting (Splog)
//   - Progress spinners for remote operations (using bubbletea)
//
// Colors live in the style subpackage.
package tui
