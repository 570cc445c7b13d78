package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/ichiban/refute"
	"github.com/ichiban/refute/engine"
)

// Version is a version of this build.
var Version = "refute/0.1"

func main() {
	var (
		interactive bool
		verbose     bool
		maxRounds   int
		maxClauses  int
		workers     int
		timeout     time.Duration
	)
	pflag.BoolVarP(&interactive, "interactive", "i", false, `add clauses and re-solve at a prompt`)
	pflag.BoolVarP(&verbose, "verbose", "v", false, `dump the working set after every round`)
	pflag.IntVar(&maxRounds, "max-rounds", 0, `give up after this many saturation rounds (0: no bound)`)
	pflag.IntVar(&maxClauses, "max-clauses", 0, `give up once the working set exceeds this many clauses (0: no bound)`)
	pflag.IntVar(&workers, "workers", 0, `goroutines resolving clause pairs within a round (0: one per CPU)`)
	pflag.DurationVar(&timeout, "timeout", 0, `give up after this long (0: no deadline)`)
	pflag.Parse()

	var in io.Reader = os.Stdin
	if args := pflag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open %s: %v", args[0], err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	p, err := refute.Parse(in)
	if err != nil {
		log.Fatalf("failed to read problem: %v", err)
	}

	var opts []engine.Option
	if maxRounds != 0 {
		opts = append(opts, engine.WithMaxRounds(maxRounds))
	}
	if maxClauses != 0 {
		opts = append(opts, engine.WithMaxClauses(maxClauses))
	}
	if workers != 0 {
		opts = append(opts, engine.WithWorkers(workers))
	}
	if verbose {
		opts = append(opts, engine.WithDebug(os.Stderr))
	}

	if interactive {
		session(p, opts, timeout)
		return
	}

	status := solve(p, opts, timeout)
	fmt.Println(status)
	if status == engine.Indet {
		os.Exit(2)
	}
}

func solve(p *refute.Problem, opts []engine.Option, timeout time.Duration) engine.Status {
	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return p.Solver(opts...).Solve(ctx)
}

// session runs an interactive loop: each input line is either a command or a
// clause to add to the problem before the next solve.
func session(p *refute.Problem, opts []engine.Option, timeout time.Duration) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Fatalf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "refute> ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	_, _ = fmt.Fprintf(t, "%s: solve, list, quit, or a clause line\n", Version)
	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		switch line = strings.TrimSpace(line); line {
		case "":
		case "quit":
			return
		case "list":
			for _, c := range p.Clauses {
				_, _ = fmt.Fprintln(t, c)
			}
		case "solve":
			_, _ = fmt.Fprintln(t, solve(p, opts, timeout))
		default:
			c, err := p.ParseClause(line)
			if err != nil {
				log.Printf("bad clause: %v", err)
				continue
			}
			p.Clauses = append(p.Clauses, c)
		}
	}
}
