package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/danielolaszy/bva/internal/rank"
	"github.com/danielolaszy/bva/internal/transcript"
	"github.com/danielolaszy/bva/pkg/models"
)

// commandHandler handles a specific shell command.
type commandHandler func(args []string) error

// REPL is the interactive shell around one Session.
type REPL struct {
	session  *Session
	rl       *readline.Instance
	ctx      context.Context
	commands map[string]commandHandler
}

// NewREPL creates an interactive shell for a connected session.
func NewREPL(s *Session) (*REPL, error) {
	if s == nil {
		return nil, fmt.Errorf("session is required")
	}

	r := &REPL{
		session:  s,
		commands: make(map[string]commandHandler),
	}
	r.registerCommands()

	return r, nil
}

// Run starts the shell loop. A command failure is reported and the
// shell keeps going; only exit, Ctrl+D, or a readline failure end it.
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	prompt := cyan("bva> ")

	historyFile, err := transcript.HistoryFile()
	if err != nil {
		historyFile = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	r.rl = rl
	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if err == io.EOF {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

// processInput dispatches a single line of input.
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := parts[0]
	args := parts[1:]

	if handler, ok := r.commands[command]; ok {
		return handler(args)
	}

	return fmt.Errorf("unknown command %q, type 'help' for available commands", command)
}

// registerCommands registers all shell commands.
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["list"] = r.cmdList
	r.commands["show"] = r.cmdShow
	r.commands["assess"] = r.cmdAssess
	r.commands["save"] = r.cmdSave
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
}

// printWelcome prints the welcome message.
func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n", cyan("Business Value Assessment"))
	fmt.Printf("Connected to project %s\n", r.session.Project())
	fmt.Println()
	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()
}

// cmdHelp shows help information.
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Available Commands:"))
	fmt.Println("  list [unassessed]   List backlog issues ranked by business value")
	fmt.Println("  show KEY            Show one issue's summary, story, and assessment")
	fmt.Println("  assess KEY [ctx..]  Run the granularity gate and assess business value")
	fmt.Println("  save                Write the last assessment back to JIRA")
	fmt.Println("  help, ?             Show this help")
	fmt.Println("  exit, quit          Disconnect and leave the shell")
	fmt.Println()
	return nil
}

// cmdList lists the ranked backlog.
func (r *REPL) cmdList(args []string) error {
	unassessedOnly := len(args) > 0 && strings.EqualFold(args[0], "unassessed")

	ranked, err := r.session.List(unassessedOnly)
	if err != nil {
		return err
	}

	if len(ranked) == 0 {
		fmt.Println("No matching issues found.")
		return nil
	}

	PrintRanked(ranked)
	return nil
}

// cmdShow shows one issue.
func (r *REPL) cmdShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show KEY")
	}

	issue, err := r.session.Issue(args[0])
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("\n%s %s\n", bold(issue.Key+":"), issue.Summary)
	fmt.Printf("\n%s\n%s\n", bold("Story:"), StoryFor(issue))
	if issue.BusinessValue != "" {
		fmt.Printf("\n%s\n%s\n", bold("Stored assessment:"), issue.BusinessValue)
	} else {
		fmt.Printf("\n%s\n", bold("No stored assessment."))
	}
	fmt.Println()
	return nil
}

// cmdAssess runs the gate and assessment for one issue. Any arguments
// after the key are passed to the model as additional context.
func (r *REPL) cmdAssess(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: assess KEY [additional context...]")
	}

	key := args[0]
	extraContext := strings.Join(args[1:], " ")

	fmt.Printf("Checking granularity of %s...\n", key)
	assessment, err := r.session.Assess(r.ctx, key, extraContext)
	if errors.Is(err, ErrNotGranular) {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s this story is not granular enough for assessment; refine it first.\n", yellow("Rejected:"))
		return nil
	}
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s story is granular.\n\n", green("OK:"))
	fmt.Println(assessment.Text)
	fmt.Println()
	fmt.Printf("Type 'save' to write this assessment to %s.\n", assessment.IssueKey)
	return nil
}

// cmdSave writes the pending assessment back to JIRA.
func (r *REPL) cmdSave(args []string) error {
	last := r.session.Last()
	if last == nil {
		return ErrNoAssessment
	}

	if err := r.session.Save(); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s business value updated for %s\n", green("Saved:"), last.IssueKey)
	return nil
}

// cmdExit leaves the shell.
func (r *REPL) cmdExit(args []string) error {
	fmt.Println("Goodbye!")
	return io.EOF
}

// PrintRanked renders a ranked issue listing, starring high-value
// issues and appending the label where one was parsed.
func PrintRanked(ranked []rank.RankedIssue) {
	bold := color.New(color.Bold).SprintFunc()
	for _, entry := range ranked {
		star := ""
		if entry.Label == models.LabelHigh {
			star = "* "
		}

		line := fmt.Sprintf("%s%s: %s", star, bold(entry.Issue.Key), entry.Issue.Summary)
		if entry.Label != models.LabelUnknown {
			line += fmt.Sprintf("  (BV: %s)", entry.Label)
		}
		fmt.Println(line)
	}
}
