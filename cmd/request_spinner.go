package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type requestDoneMsg struct {
	err error
}

type requestSpinnerModel struct {
	spinner spinner.Model
	label   string
	request tea.Cmd
	err     error
	done    bool
}

func newRequestSpinnerModel(label string, request tea.Cmd) requestSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return requestSpinnerModel{
		spinner: s,
		label:   label,
		request: request,
	}
}

func (m requestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m requestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWithSpinner performs the HTTP round trip behind a spinner on stderr.
// JSON output mode skips the spinner entirely.
func runWithSpinner(cmd *cobra.Command, plain bool, request func(context.Context) error) error {
	if plain {
		return request(cmd.Context())
	}

	return runRequestSpinner(cmd.Context(), cmd.ErrOrStderr(), request)
}

func runRequestSpinner(ctx context.Context, output io.Writer, request func(context.Context) error) error {
	requestCmd := func() tea.Msg {
		return requestDoneMsg{err: request(ctx)}
	}

	p := tea.NewProgram(
		newRequestSpinnerModel("Contacting visualization server...", requestCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(requestSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
