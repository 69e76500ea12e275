// Package style holds the lipgloss colors used by gitdash output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColors drops colors when NO_COLOR is set or output is not a terminal
func ConfigureColors(isTTY bool) {
	if os.Getenv("NO_COLOR") != "" || !isTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func colored(color, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Render(branchName + " (current)")
	}
	return colored("12", branchName)
}

// ColorHash colors an abbreviated commit hash
func ColorHash(hash string) string {
	return colored("3", hash)
}

// ColorStaged colors entries that are in the index
func ColorStaged(text string) string {
	return colored("2", text)
}

// ColorUnstaged colors worktree modifications
func ColorUnstaged(text string) string {
	return colored("1", text)
}

// ColorUntracked colors untracked paths
func ColorUntracked(text string) string {
	return colored("5", text)
}

// ColorRenamed colors renames in either category
func ColorRenamed(text string) string {
	return colored("6", text)
}

// ColorHeader renders a section header
func ColorHeader(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return colored("8", text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return colored("1", text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return colored("2", text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return colored("3", text)
}
