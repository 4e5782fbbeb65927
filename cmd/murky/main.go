package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Autoparallel/murky"
	"github.com/bits-and-blooms/bitset"
	"github.com/urfave/cli/v2"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	app := newApp(log, os.Stdin, os.Stdout, os.Stderr)

	if err := app.newCLI().Run(os.Args); err != nil {
		log.Error("murky failed", "err", err)
		os.Exit(1)
	}
}

// App holds the I/O surfaces for one CLI invocation,
// so tests can drive it without touching the process streams.
type App struct {
	log *slog.Logger

	in          io.Reader
	out, errOut io.Writer
}

func newApp(log *slog.Logger, in io.Reader, out, errOut io.Writer) *App {
	return &App{log: log, in: in, out: out, errOut: errOut}
}

func (a *App) newCLI() *cli.App {
	return &cli.App{
		Name:      "murky",
		Usage:     "build a Merkle hash tree over string leaves and print it",
		ArgsUsage: "[leaf ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read leaves from `PATH`, one per line (\"-\" for stdin)",
			},
			&cli.BoolFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "print only the root digest",
			},
			&cli.StringFlag{
				Name:    "levels",
				Aliases: []string{"l"},
				Usage:   "print only the selected stored levels (0 is the root), e.g. \"0,2-3\"",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before:    a.init,
		Action:    a.run,
		Writer:    a.out,
		ErrWriter: a.errOut,
	}
}

func (a *App) init(c *cli.Context) error {
	if c.Bool("verbose") {
		a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return nil
}

func (a *App) run(c *cli.Context) error {
	leaves, err := a.collectLeaves(c)
	if err != nil {
		return err
	}

	tr, err := murky.NewTree(leaves)
	if err != nil {
		return err
	}

	a.log.Debug("built tree", "leaves", len(leaves), "levels", tr.NumLevels())

	switch {
	case c.Bool("root"):
		fmt.Fprintln(a.out, tr.RootHash())

	case c.IsSet("levels"):
		sel, err := parseLevelSpec(c.String("levels"), tr.NumLevels())
		if err != nil {
			return err
		}

		a.printLevels(tr, sel)

	default:
		fmt.Fprint(a.out, tr)
	}

	return nil
}

// collectLeaves gathers leaves from the positional arguments,
// or from --file when it is set.
func (a *App) collectLeaves(c *cli.Context) ([]string, error) {
	path := c.String("file")
	if path == "" {
		return c.Args().Slice(), nil
	}

	if c.Args().Len() > 0 {
		return nil, errors.New("leaves must come from arguments or from --file, not both")
	}

	if path == "-" {
		return readLeafLines(a.in)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening leaf file: %w", err)
	}
	defer f.Close()

	leaves, err := readLeafLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return leaves, nil
}

// readLeafLines reads one leaf per line.
// Blank lines are kept: the empty string is a valid leaf.
func readLeafLines(r io.Reader) ([]string, error) {
	var leaves []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		leaves = append(leaves, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// printLevels writes the selected levels in storage order,
// labeled the same way as the full rendering.
func (a *App) printLevels(tr *murky.Tree, sel *bitset.BitSet) {
	for i := 0; i < tr.NumLevels(); i++ {
		if !sel.Test(uint(i)) {
			continue
		}

		level := tr.Level(i)

		if len(level) == 1 {
			fmt.Fprintln(a.out, "Root Hash:")
		} else {
			fmt.Fprintf(a.out, "Level %d:\n", i)
		}

		for _, d := range level {
			fmt.Fprintf(a.out, "  %s\n", d)
		}
	}
}
