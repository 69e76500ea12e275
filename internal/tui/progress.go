package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskDoneMsg carries the result of the task behind a spinner
type taskDoneMsg struct {
	err error
}

// spinnerModel shows a spinner next to a title until its task finishes
type spinnerModel struct {
	title   string
	spinner spinner.Model
	done    bool
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{title: title, spinner: s}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}

// RunWithSpinner runs task while a spinner with title is shown. Without a
// TTY the title is logged once and task runs directly. Keys are not read so
// Ctrl+C still reaches the process and cancels the task's context.
func RunWithSpinner(splog *Splog, title string, task func() error) error {
	if !IsTTY() {
		splog.Info("%s", title)
		return task()
	}

	splog.SetQuiet(true)
	defer splog.SetQuiet(false)

	p := tea.NewProgram(newSpinnerModel(title), tea.WithInput(nil), tea.WithOutput(os.Stdout))

	// The task outlives a failed program so its cleanup always completes
	result := make(chan error, 1)
	go func() {
		err := task()
		result <- err
		p.Send(taskDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		splog.Debug("spinner stopped: %v", err)
	}
	return <-result
}
