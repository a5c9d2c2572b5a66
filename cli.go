package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/beka-birhanu/maze-solver/codec"
	"github.com/beka-birhanu/maze-solver/config"
	logger "github.com/beka-birhanu/maze-solver/infrastruture/log"
	"github.com/beka-birhanu/maze-solver/infrastruture/token"
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/render"
	"github.com/beka-birhanu/maze-solver/service"
)

var errUsage = errors.New("bad usage")

// loadFlags are shared by the commands that read a maze file.
type loadFlags struct {
	strict bool
	seed   int64
}

func (lf *loadFlags) register(fs *flag.FlagSet) {
	strictDefault := strings.EqualFold(config.Envs.RolePolicy, string(codec.PolicyStrict))
	fs.BoolVar(&lf.strict, "strict", strictDefault, "reject files without an entrance or exit instead of assigning them")
	fs.Int64Var(&lf.seed, "seed", config.Envs.Seed, "seed for the stochastic algorithms")
}

func (lf *loadFlags) policy() codec.Policy {
	if lf.strict {
		return codec.PolicyStrict
	}
	return codec.PolicyNormalize
}

// parseArgs parses fs over args and returns the positional arguments. Flags
// may come before or after them; "--" ends flag parsing.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func newRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// localSolver builds a solver service without storage, logging to stderr.
func localSolver(seed int64) (*service.Solver, error) {
	solverLogger, err := logger.New("SOLVER", "", os.Stderr)
	if err != nil {
		return nil, err
	}
	return service.NewSolver(nil, nil, solverLogger, &service.Options{Seed: seed})
}

func runSolve(ctx context.Context, args []string) error {
	return solveCommand(ctx, args, os.Stdout)
}

func solveCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	var lf loadFlags
	lf.register(fs)
	algorithm := fs.String("algorithm", config.Envs.Algorithm, "search algorithm, see the benchmark command for the list")
	animation := fs.Bool("animation", false, "replay every step of the search")
	delay := fs.Float64("delay", float64(config.Envs.DelayMS)/1000, "seconds between animation frames")
	direction := fs.String("direction", config.Envs.Direction, "animation order: top-down or bottom-up")
	hints := fs.Bool("hints", false, "mark dead ends, corners and junctions off the path")
	files, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return errUsage
	}
	dir, err := render.ParseDirection(*direction)
	if err != nil {
		return err
	}

	m, err := codec.LoadFile(files[0], codec.WithPolicy(lf.policy()))
	if err != nil {
		return err
	}
	svc, err := localSolver(lf.seed)
	if err != nil {
		return err
	}

	result, err := svc.Solve(ctx, m, *algorithm)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Fprintf(out, "%s found no path\n", *algorithm)
		return errNoPath
	}

	renderer := render.TextRenderer{Hints: *hints}
	if *animation {
		animator, err := render.NewAnimator(out, renderer, render.AnimatorOptions{
			Delay:     time.Duration(*delay * float64(time.Second)),
			Direction: dir,
			Clear:     out == os.Stdout,
		})
		if err != nil {
			return err
		}
		if err := animator.Play(ctx, m, result.Steps); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, renderer.Render(m, result.Path()))
	}

	fmt.Fprintf(out, "algorithm=%s length=%d steps=%d elapsed=%s\n",
		result.Algorithm, len(result.Path()), len(result.Steps), result.Elapsed)
	return nil
}

func runGenerate(args []string) error {
	return generateCommand(args, os.Stdout)
}

func generateCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	width := fs.Int("width", 10, "number of columns")
	height := fs.Int("height", 10, "number of rows")
	generator := fs.String("generator", string(maze.GenWilson), "carving algorithm: backtracker, kruskal, prim or wilson")
	seed := fs.Int64("seed", config.Envs.Seed, "seed of the random source")
	show := fs.Bool("print", false, "also print the maze")
	files, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return errUsage
	}

	m, err := maze.Generate(*width, *height, maze.Generator(*generator), newRandom(*seed))
	if err != nil {
		return err
	}
	if err := codec.DumpFile(m, files[0]); err != nil {
		return err
	}

	if *show {
		fmt.Fprint(out, m)
	}
	fmt.Fprintf(out, "wrote %dx%d %s maze to %s\n", m.Width(), m.Height(), *generator, files[0])
	return nil
}

func runBenchmark(ctx context.Context, args []string) error {
	return benchmarkCommand(ctx, args, os.Stdout)
}

func benchmarkCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	var lf loadFlags
	lf.register(fs)
	algorithms := fs.String("algorithms", "", "comma separated algorithms to time, all when empty")
	files, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return errUsage
	}

	m, err := codec.LoadFile(files[0], codec.WithPolicy(lf.policy()))
	if err != nil {
		return err
	}
	svc, err := localSolver(lf.seed)
	if err != nil {
		return err
	}

	var names []string
	if *algorithms != "" {
		for _, name := range strings.Split(*algorithms, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	}
	results, err := svc.Benchmark(ctx, m, names)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tALGORITHM\tFOUND\tLENGTH\tSTEPS\tELAPSED")
	for idx, result := range results {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%d\t%d\t%s\n",
			idx+1, result.Algorithm, result.Found, len(result.Path()), len(result.Steps), result.Elapsed)
	}
	return tw.Flush()
}

func runToken(args []string) error {
	return tokenCommand(args, os.Stdout)
}

func tokenCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "operator", "subject claim of the token")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tokenizer, err := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		return err
	}
	signed, err := tokenizer.Generate(map[string]interface{}{"sub": *subject}, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, signed)
	return nil
}
