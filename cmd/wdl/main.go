package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/versebot/bot"
	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/config"
	"github.com/powellquiring/versebot/server"
	"github.com/powellquiring/versebot/sim"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
	"github.com/powellquiring/versebot/wordlist"
)

// tiles renders a guess with one colored letter per rating value
func tiles(guess wordle.Word, rating wordle.Rating) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		c := color.Gray
		switch rating[i] {
		case wordle.Correct:
			c = color.Green
		case wordle.Present:
			c = color.Yellow
		}
		b.WriteString(color.Ize(c, string(guess[i])))
	}
	return b.String()
}

// playWordle with guess/rating pairs provided
func playWordle(g GlobalConfiguration, args []string) error {
	history := make([]server.Turn, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		guess, err := wordle.ParseWord(args[i])
		if err != nil {
			return err
		}
		rating, err := wordle.ParseRating(args[i+1])
		if err != nil {
			return err
		}
		history = append(history, server.Turn{Guess: guess, Rating: rating})
	}
	solution, err := server.Solve(g.index, history, g.cfg.MaxGuesses, g.cfg.Strategy, g.strategyOptions(g.cfg.Seed)...)
	if err != nil {
		return err
	}
	for _, turn := range history {
		fmt.Println(tiles(turn.Guess, turn.Rating))
	}
	fmt.Print(solution.Suggestion, ":")
	for _, word := range solution.Candidates.Range {
		fmt.Print(" ", word)
	}
	fmt.Println()
	g.logger.Debug().Str("model", solution.Model.String()).Int("candidates", solution.Candidates.Len()).Msg("solved")
	return nil
}

func runBot(g GlobalConfiguration, kind string, secrets []string) error {
	s, err := strategy.New(kind, g.cfg.Length, g.strategyOptions(g.cfg.Seed)...)
	if err != nil {
		return err
	}
	r, err := bot.NewFromIndex(g.index, g.cfg.MaxGuesses, s, bot.WithLogger(g.logger))
	if err != nil {
		return err
	}
	for _, secretString := range secrets {
		secret, err := wordle.ParseWord(secretString)
		if err != nil {
			return err
		}
		result, err := r.Run(secret)
		if err != nil {
			return fmt.Errorf("%s: %w", secret, err)
		}
		fmt.Print(secret, ":")
		for i, guess := range result.Guesses {
			fmt.Print(" ", tiles(guess, result.Ratings[i]))
		}
		if result.Success {
			fmt.Println(" solved in", result.GuessCount)
		} else {
			fmt.Println(" missed")
		}
	}
	return nil
}

type simFlags struct {
	strategies  []string
	count       int
	workers     int
	progress    bool
	metricsFile string
}

func simulate(ctx context.Context, g GlobalConfiguration, f simFlags, secretStrings []string) error {
	secrets, err := wordle.ParseWords(secretStrings)
	if err != nil {
		return err
	}
	if len(secrets) == 0 {
		secrets = sim.RandomSecrets(g.words, f.count, g.cfg.Seed)
	}
	if len(f.strategies) == 0 {
		f.strategies = []string{g.cfg.Strategy}
	}
	opening, err := g.cfg.OpeningWords()
	if err != nil {
		return err
	}

	opts := []sim.Option{sim.WithLogger(g.logger)}
	var bar *progressbar.ProgressBar
	if f.progress {
		bar = progressbar.Default(int64(len(secrets) * len(f.strategies)))
		opts = append(opts, sim.WithProgress(func() { _ = bar.Add(1) }))
	}
	var reg *prometheus.Registry
	if f.metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, sim.WithMetrics(sim.NewMetrics(reg)))
	}

	reports, err := sim.Run(ctx, g.words, sim.Config{
		Strategies: f.strategies,
		Secrets:    secrets,
		Length:     g.cfg.Length,
		MaxGuesses: g.cfg.MaxGuesses,
		Workers:    f.workers,
		Seed:       g.cfg.Seed,
		Opening:    opening,
	}, opts...)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	for _, report := range reports {
		fmt.Printf("%-16s played %d correct %d (%.1f%%) errors %d average %.3f\n",
			report.Strategy, report.Played, report.Correct, 100*report.SuccessRate(), report.Errors, report.Average)
		for guesses, n := range report.Histogram {
			if n > 0 {
				fmt.Printf("  %2d %s %d\n", guesses, strings.Repeat("#", max(1, 60*n/report.Played)), n)
			}
		}
		if len(report.Missed) > 0 {
			fmt.Println("  missed:", report.Missed)
		}
	}
	if reg != nil {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func opening(ctx context.Context, g GlobalConfiguration, size int, progress bool) error {
	var bar *progressbar.ProgressBar
	report := func(done, total int) {
		if bar == nil {
			if progress {
				bar = progressbar.Default(int64(total))
			} else {
				bar = progressbar.DefaultSilent(int64(total))
			}
		}
		_ = bar.Set(done)
	}
	words, err := strategy.FindOpening(ctx, g.words, size, report)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	fmt.Println(strings.Join(wordStrings(words), " "))
	return nil
}

func wordStrings(words []wordle.Word) []string {
	ret := make([]string, len(words))
	for i, word := range words {
		ret[i] = string(word)
	}
	return ret
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

type GlobalConfiguration struct {
	cfg    *config.Config
	logger zerolog.Logger
	words  []wordle.Word
	index  *candidate.Index
}

func (g GlobalConfiguration) strategyOptions(seed uint64) []strategy.Option {
	opts := []strategy.Option{strategy.WithSeed(seed)}
	if opening, err := g.cfg.OpeningWords(); err == nil && len(opening) > 0 && opening[0].Len() == g.cfg.Length {
		opts = append(opts, strategy.WithOpening(opening...))
	}
	return opts
}

// globalFlags are the values of the root command flags, zero means not given
type globalFlags struct {
	configPath string
	wordsDir   string
	length     int
	guesses    int
	logLevel   string
	seed       uint64
}

func (f globalFlags) configuration() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.wordsDir != "" {
		cfg.WordsDir = f.wordsDir
	}
	if f.length != 0 {
		cfg.Length = f.length
	}
	if f.guesses != 0 {
		cfg.MaxGuesses = f.guesses
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func globalConfiguration(f globalFlags) (GlobalConfiguration, error) {
	cfg, err := f.configuration()
	if err != nil {
		return GlobalConfiguration{}, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	words, err := wordlist.LoadOrEmbedded(cfg.WordsDir, cfg.Length)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	dict, err := wordle.NewDictionary(words)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	logger.Debug().Int("words", dict.Len()).Int("length", cfg.Length).Msg("word list loaded")
	return GlobalConfiguration{cfg: cfg, logger: logger, words: words, index: candidate.NewIndex(dict)}, nil
}

func main() {
	_ = godotenv.Load()

	var globals globalFlags
	profile := false
	// command specific flags
	var sf simFlags
	botStrategy := ""
	openingSize := 5
	openingProgress := false
	addr := ""

	// withGlobals loads the configuration and runs action, exiting with code 1 on error
	withGlobals := func(action func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if profile {
				def := cpuProfile()
				defer def()
			}
			g, err := globalConfiguration(globals)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := action(ctx, cmd, g); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		}
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "word guessing bots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "yaml configuration file",
				Sources:     cli.EnvVars("VERSE_CONFIG"),
				Destination: &globals.configPath,
			},
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "directory with words-N.txt lists, default is the built in lists",
				Sources:     cli.EnvVars("VERSE_WORDS"),
				Destination: &globals.wordsDir,
			},
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "letters per word, 3 to 12",
				Sources:     cli.EnvVars("VERSE_LENGTH"),
				Destination: &globals.length,
			},
			&cli.IntFlag{
				Name:        "guesses",
				Aliases:     []string{"g"},
				Usage:       "maximum guesses per game",
				Sources:     cli.EnvVars("VERSE_GUESSES"),
				Destination: &globals.guesses,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("VERSE_LOG_LEVEL"),
				Destination: &globals.logLevel,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "random seed for the random strategies and the simulated secrets",
				Sources:     cli.EnvVars("VERSE_SEED"),
				Destination: &globals.seed,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play GUESS RATING [GUESS RATING]...
				Enter each guess with its rating, 0/1/2 or r/y/g per letter.  Prints the
				suggested next guess followed by every word still possible.
				`,
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					if cmd.NArg()%2 != 0 {
						return fmt.Errorf("must have pairs of guess rating")
					}
					return playWordle(g, cmd.Args().Slice())
				}),
			},
			{
				Name: "bot",
				Usage: `bot --strategy S SECRET...
				Let a bot play one game for each secret and show its guesses.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "strategy",
						Aliases:     []string{"s"},
						Usage:       strings.Join(strategy.Kinds(), ", "),
						Destination: &botStrategy,
					},
				},
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					if cmd.NArg() < 1 {
						return fmt.Errorf("must have at least one secret")
					}
					kind := botStrategy
					if kind == "" {
						kind = g.cfg.Strategy
					}
					return runBot(g, kind, cmd.Args().Slice())
				}),
			},
			{
				Name: "sim",
				Usage: `sim --strategy S1 --strategy S2 ... [SECRET]...
				Play every secret with every strategy and print a report per strategy.  Without
				secrets, --count secrets are drawn at random from the word list.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:        "strategy",
						Aliases:     []string{"s"},
						Usage:       strings.Join(strategy.Kinds(), ", "),
						Destination: &sf.strategies,
					},
					&cli.IntFlag{
						Name:        "count",
						Aliases:     []string{"c"},
						Value:       config.Default().SimCount,
						Usage:       "number of random secrets",
						Destination: &sf.count,
					},
					&cli.IntFlag{
						Name:        "workers",
						Usage:       "games played at once, 0 is one per cpu",
						Destination: &sf.workers,
					},
					&cli.BoolFlag{
						Name:        "progress",
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &sf.progress,
					},
					&cli.StringFlag{
						Name:        "metrics-file",
						Usage:       "write prometheus metrics in text format to this file",
						Destination: &sf.metricsFile,
					},
				},
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					if !cmd.IsSet("count") {
						sf.count = g.cfg.SimCount
					}
					if sf.workers == 0 {
						sf.workers = g.cfg.Workers
					}
					return simulate(ctx, g, sf, cmd.Args().Slice())
				}),
			},
			{
				Name: "opening",
				Usage: `opening --size N
				Find N words of the word list that share no letter, usable as a clique opening.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "size",
						Value:       5,
						Usage:       "number of words",
						Destination: &openingSize,
					},
					&cli.BoolFlag{
						Name:        "progress",
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &openingProgress,
					},
				},
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					return opening(ctx, g, openingSize, openingProgress)
				}),
			},
			{
				Name:  "serve",
				Usage: "serve the solver and the bots over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "addr",
						Usage:       "listen address, default from the configuration",
						Sources:     cli.EnvVars("VERSE_ADDR"),
						Destination: &addr,
					},
				},
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					if addr == "" {
						addr = g.cfg.Listen
					}
					return server.New(g.cfg, g.logger).Start(addr)
				}),
			},
			{
				Name:  "config",
				Usage: "print the effective configuration as yaml",
				Action: withGlobals(func(ctx context.Context, cmd *cli.Command, g GlobalConfiguration) error {
					data, err := g.cfg.YAML()
					if err != nil {
						return err
					}
					fmt.Print(string(data))
					return nil
				}),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
