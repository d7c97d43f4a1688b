/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	rs485 "github.com/allbin/go-rs485"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <port>",
	Short: "Watch the RS485 configuration in real-time",
	Long: `Continuously re-read and display the RS485 configuration of the
specified serial port.

Useful when another process (or the bootloader, or a device-tree overlay
taking effect) may be changing the line-driver settings. Press q to quit.

Examples:
  rs485ctl watch /dev/ttyS0
  rs485ctl watch /dev/ttyS0 --interval 2s`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		f, err := openPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		m := newWatchModel(portPath, f)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 500*time.Millisecond, "Poll interval")
}

type watchKeys struct {
	Quit key.Binding
	Help key.Binding
}

func (k watchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k watchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

func newWatchKeys() watchKeys {
	return watchKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#cba6f7")).
			Background(lipgloss.Color("#313244")).
			Padding(0, 1)

	watchOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	watchOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	watchErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	watchDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type watchTickMsg time.Time

type watchReadMsg struct {
	cfg *rs485.Config
	err error
}

type watchModel struct {
	portPath string
	f        *os.File
	cfg      *rs485.Config
	err      error
	lastRead time.Time
	keys     watchKeys
	help     help.Model
}

func newWatchModel(portPath string, f *os.File) watchModel {
	return watchModel{
		portPath: portPath,
		f:        f,
		keys:     newWatchKeys(),
		help:     help.New(),
	}
}

func (m watchModel) readConfig() tea.Cmd {
	f := m.f
	return func() tea.Msg {
		cfg, err := rs485.GetConfig(f)
		return watchReadMsg{cfg: cfg, err: err}
	}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return m.readConfig()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case watchReadMsg:
		m.cfg = msg.cfg
		m.err = msg.err
		m.lastRead = time.Now()
		return m, m.tick()

	case watchTickMsg:
		return m, m.readConfig()
	}

	return m, nil
}

func (m watchModel) View() string {
	s := watchTitleStyle.Render(fmt.Sprintf("RS485 %s", m.portPath)) + "\n\n"

	if m.err != nil {
		s += watchErrStyle.Render(fmt.Sprintf("read failed: %v", m.err)) + "\n"
	} else if m.cfg == nil {
		s += watchDimStyle.Render("reading...") + "\n"
	} else {
		rows := []struct {
			label string
			state bool
		}{
			{"enabled", m.cfg.Enabled()},
			{"rts-on-send", m.cfg.RTSOnSend()},
			{"rts-after-send", m.cfg.RTSAfterSend()},
			{"rx-during-tx", m.cfg.RXDuringTX()},
		}
		for _, row := range rows {
			state := formatSignalState(row.state)
			if row.state {
				state = watchOnStyle.Render(state)
			} else {
				state = watchOffStyle.Render(state)
			}
			s += fmt.Sprintf("  %-15s %s\n", row.label, state)
		}
		s += fmt.Sprintf("  %-15s %d ms\n", "delay-before", m.cfg.DelayBeforeSendMs())
		s += fmt.Sprintf("  %-15s %d ms\n", "delay-after", m.cfg.DelayAfterSendMs())
	}

	if !m.lastRead.IsZero() {
		s += "\n" + watchDimStyle.Render(fmt.Sprintf("last read %s", m.lastRead.Format("15:04:05.000"))) + "\n"
	}

	s += "\n" + m.help.View(m.keys)
	return s
}
