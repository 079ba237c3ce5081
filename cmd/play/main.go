// Interactive terminal Hangman against a wordlist word, plus a solver mode
// that plays a chosen target automatically and prints its guess trace.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/MattFisher/hangman-bench/internal/dataset"
	"github.com/MattFisher/hangman-bench/internal/hangman"
)

type Config struct {
	wordlist string
	length   int
	maxWrong int
	solve    string
	strategy string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.StringVar(&c.wordlist, "wordlist", "wordlist.txt", "Wordlist to draw target words from")
	fs.IntVar(&c.length, "length", 6, "Target word length for interactive play")
	fs.IntVar(&c.maxWrong, "maxwrong", 10, "Maximum wrong guesses")
	fs.StringVar(&c.solve, "solve", "", "Solve this target word automatically instead of playing")
	fs.StringVar(&c.strategy, "strategy", hangman.InfoGain.String(), "Solver strategy: freq_raw, coverage, or info_gain")
	return fs.Parse(args)
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}

	words, err := dataset.ReadWordlist(cfg.wordlist)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load wordlist")
	}
	dict, err := hangman.NewDictionary(words)
	if err != nil {
		log.Fatal().Err(err).Msg("malformed dictionary")
	}

	if cfg.solve != "" {
		if err := runSolver(cfg, dict); err != nil {
			log.Fatal().Err(err).Msg("solver failed")
		}
		return
	}

	bin := dict.WordsOfLength(cfg.length)
	if len(bin) == 0 {
		log.Fatal().Int("length", cfg.length).Msg("no words of that length")
	}
	target := bin[rand.Intn(len(bin))]
	game, err := hangman.NewGame(target, cfg.maxWrong)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}

	if _, err := tea.NewProgram(initialModel(game)).Run(); err != nil {
		log.Fatal().Err(err).Msg("tui error")
	}
}

func runSolver(cfg *Config, dict *hangman.Dictionary) error {
	strategy, err := hangman.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}
	target := strings.ToLower(cfg.solve)
	if !dict.Contains(target) {
		return fmt.Errorf("target %q is not in the wordlist", target)
	}
	sim := &hangman.Simulator{Dict: dict, MaxWrong: cfg.maxWrong}
	res, err := sim.Play(target, strategy)
	if err != nil {
		return err
	}
	for i, g := range res.Trace {
		verdict := "wrong"
		if g.Correct {
			verdict = "correct"
		}
		fmt.Printf("%2d. %c  %s\n", i+1, g.Letter, verdict)
	}
	outcome := "lost"
	if res.Won {
		outcome = "won"
	}
	fmt.Printf("%s: %s with %d wrong guesses (%s)\n", target, outcome, res.Wrong, strategy)
	return nil
}

type model struct {
	textInput textinput.Model
	game      *hangman.Game
	status    string
}

func initialModel(game *hangman.Game) model {
	ti := textinput.New()
	ti.Placeholder = "Guess a letter"
	ti.Focus()
	ti.CharLimit = 1
	ti.Width = 20
	return model{textInput: ti, game: game}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.game.Over() {
				return m, tea.Quit
			}
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			if len(input) != 1 {
				m.status = "Type a single letter and hit enter."
				return m, nil
			}
			letter := input[0]
			if letter >= 'A' && letter <= 'Z' {
				letter += 'a' - 'A'
			}
			if letter < 'a' || letter > 'z' {
				m.status = "Letters only."
				return m, nil
			}
			if m.game.Guessed(letter) {
				m.status = fmt.Sprintf("Already tried %q.", input)
				return m, nil
			}
			correct, err := m.game.Guess(letter)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			if correct {
				m.status = fmt.Sprintf("%q is in the word!", input)
			} else {
				m.status = fmt.Sprintf("No %q.", input)
			}
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + m.game.Board() + "\n\n")
	fmt.Fprintf(&b, "  Remaining guesses: %d\n", m.game.Remaining())
	if wrong := m.game.WrongLetters(); wrong != "" {
		fmt.Fprintf(&b, "  Wrong letters: %s\n", wrong)
	}
	if m.status != "" {
		b.WriteString("\n  " + m.status + "\n")
	}
	switch {
	case m.game.Won():
		b.WriteString("\n  You won! Hit enter to exit.\n")
	case m.game.Lost():
		fmt.Fprintf(&b, "\n  You lost. The word was %q. Hit enter to exit.\n", m.game.Target())
	default:
		b.WriteString("\n" + m.textInput.View() + "\n")
	}
	b.WriteString("\n  " + strings.Repeat("-", 25) + "\n  (esc to quit)\n")
	return b.String()
}
