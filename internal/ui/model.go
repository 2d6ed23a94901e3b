package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"devctl/internal/system"
	"devctl/internal/tools"
)

type model struct {
	order    []tools.ToolSpec
	results  map[string]tools.CheckResult
	checking int

	brewChecked bool
	brewPath    string
	brewErr     error
	outdated    map[string]string

	installing    bool
	bootstrapping bool
	instList      []tools.ToolSpec
	instIndex     int
	spin          spinner.Model
	prog          progress.Model

	ops        list.Model
	extraCount int

	ti            textinput.Model
	slashVisible  bool
	slashFiltered []SlashCmd
	slashIndex    int

	width  int
	height int

	cwd          string
	home         string
	now          time.Time
	git          system.GitInfo
	lastGitCheck time.Time
	notice       string

	watch   *fsnotify.Watcher
	watchCh chan struct{}

	quitting bool
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "type / for commands"
	ti.Prompt = "❯ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	ti.CharLimit = 120
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(Vitesse.Yellow)

	pr := progress.New(
		progress.WithGradient(string(Vitesse.Secondary), string(Vitesse.Primary)),
		progress.WithWidth(30),
	)

	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()

	return model{
		order:    tools.InstallList(),
		results:  make(map[string]tools.CheckResult),
		outdated: make(map[string]string),
		spin:     sp,
		prog:     pr,
		ops:      newOpsList(),
		ti:       ti,
		cwd:      cwd,
		home:     home,
		now:      time.Now(),
		width:    80,
		height:   24,
	}
}

// InitialModel is the dashboard entry point used by app.Start.
func InitialModel() tea.Model {
	return initialModel()
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		manifestCmd(),
		outdatedCmd(),
		tickCmd(),
		gitInfoCmd(m.cwd),
		startWatchCmd(),
		textinput.Blink,
	)
}

// missingTools returns the checked-and-absent tools that brew can install.
func (m model) missingTools() []tools.ToolSpec {
	var out []tools.ToolSpec
	for _, t := range m.order {
		res, ok := m.results[t.Name]
		if !ok || res.Installed || t.Package == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m model) missingCount() int { return len(m.missingTools()) }
