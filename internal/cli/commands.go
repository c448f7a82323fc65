package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/redpen/redpen/internal/annotate"
	"github.com/redpen/redpen/internal/diff"
	"github.com/redpen/redpen/internal/edit"
	"github.com/redpen/redpen/internal/editfile"
	"github.com/redpen/redpen/internal/prose"
	"github.com/redpen/redpen/internal/simplelogger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrInputTooLarge is returned when a text input exceeds limits.max_input_bytes.
var ErrInputTooLarge = errors.New("input exceeds limits.max_input_bytes")

// stdinPath names standard input in place of a file path.
const stdinPath = "-"

// runState is shared by the commands of a single Run.
type runState struct {
	v          *viper.Viper
	cfgFile    string
	cfg        Config
	loaded     bool
	setLogFile bool
}

func newRootCommand() (*cobra.Command, *runState) {
	s := &runState{v: newViper()}

	root := &cobra.Command{
		Use:   "redpen",
		Short: "Compare, correct, and annotate prose",
		Long: `redpen reconciles an original text with a revision. It shows word-level changes between two versions,
applies collections of offset-based edits, and renders either as HTML span markup.

Files ending in .md or .markdown are read as plain prose; use - to read a text from stdin.`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return s.load() },
	}
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return exitError{Code: 2, Err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default: $HOME/.redpen/redpen.yaml, then ./redpen.yaml)")
	flags.String("log-file", "", "append JSON log lines to this file (env: REDPEN_LOG_FILE)")
	s.bind(flags, "log.file", "log-file")

	root.AddCommand(
		newDiffCommand(s),
		newApplyCommand(s),
		newAnnotateCommand(s),
		newCheckCommand(s),
		newConfigCommand(s),
		newVersionCommand(),
	)
	return root, s
}

func (s *runState) bind(flags *pflag.FlagSet, key, name string) {
	if err := s.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func (s *runState) load() error {
	cfg, err := loadConfig(s.v, s.cfgFile)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.loaded = true

	if cfg.Log.File != "" {
		simplelogger.SetFile(cfg.Log.File)
		s.setLogFile = true
	}
	if err := simplelogger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	simplelogger.Logger().Debug("configuration loaded",
		zap.String("config_file", s.v.ConfigFileUsed()),
		zap.String("algorithm", cfg.Diff.Algorithm),
		zap.Int("window", cfg.Diff.Window),
		zap.Int64("max_input_bytes", cfg.Limits.MaxInputBytes),
	)
	return nil
}

// readText reads the text at path ("-" for stdin), enforcing limits.max_input_bytes. Markdown files are flattened to prose.
func (s *runState) readText(path string, stdin io.Reader) (string, error) {
	limit := s.cfg.Limits.MaxInputBytes
	if path == stdinPath {
		r := stdin
		if limit > 0 {
			r = io.LimitReader(stdin, limit+1)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if limit > 0 && int64(len(b)) > limit {
			return "", fmt.Errorf("stdin: more than %d bytes: %w", limit, ErrInputTooLarge)
		}
		return string(b), nil
	}

	if limit > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if info.Size() > limit {
			return "", fmt.Errorf("%s: %d bytes (limit %d): %w", path, info.Size(), limit, ErrInputTooLarge)
		}
	}
	return prose.Load(path)
}

func (s *runState) readTextAndEdits(cmd *cobra.Command, textPath, editsPath string) (string, []edit.Edit, error) {
	text, err := s.readText(textPath, cmd.InOrStdin())
	if err != nil {
		return "", nil, err
	}
	edits, err := editfile.Load(editsPath)
	if err != nil {
		return "", nil, err
	}
	return text, edits, nil
}

func newDiffCommand(s *runState) *cobra.Command {
	format := newEnum("text", "text", "html", "json")
	algorithm := newEnum(string(diff.AlgorithmWindow), string(diff.AlgorithmWindow), string(diff.AlgorithmMyers))
	color := newEnum(colorAuto, colorAuto, colorAlways, colorNever)

	cmd := &cobra.Command{
		Use:   "diff ORIGINAL MODIFIED",
		Short: "Show word-level changes between two texts",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinPath && args[1] == stdinPath {
				return usageErrorf("only one of ORIGINAL and MODIFIED may be read from stdin")
			}
			original, err := s.readText(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			modified, err := s.readText(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			d := diff.ComputeWith(original, modified, s.cfg.diffOptions())
			stats := d.Stats()
			simplelogger.Logger().Info("diff computed",
				zap.String("algorithm", s.cfg.Diff.Algorithm),
				zap.Int("segments", len(d.Segments)),
				zap.Int("unchanged", stats.Unchanged),
				zap.Int("added", stats.Added),
				zap.Int("removed", stats.Removed),
			)

			out := cmd.OutOrStdout()
			switch format.value {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(struct {
					Segments []diff.Segment `json:"segments"`
					Stats    diff.Stats     `json:"stats"`
				}{Segments: d.Segments, Stats: stats})
			case "html":
				_, err = fmt.Fprintln(out, annotate.RenderDiff(d))
				return err
			default:
				_, err = fmt.Fprintln(out, d.RenderPretty(s.cfg.Render.Width, useColor(s.cfg.Render.Color, out)))
				return err
			}
		},
	}

	flags := cmd.Flags()
	flags.Var(format, "format", "output format: text, html, or json")
	flags.Var(algorithm, "algorithm", "diff algorithm: window or myers")
	flags.Int("window", diff.DefaultWindow, "lookahead distance of the window algorithm")
	flags.Int("width", 80, "wrap text output at this many columns (0 disables wrapping)")
	flags.Var(color, "color", "color text output: auto, always, or never")
	s.bind(flags, "diff.algorithm", "algorithm")
	s.bind(flags, "diff.window", "window")
	s.bind(flags, "render.width", "width")
	s.bind(flags, "render.color", "color")
	return cmd
}

func newApplyCommand(s *runState) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "apply ORIGINAL EDITS",
		Short: "Apply an edit collection and print the corrected text",
		Long: `apply replaces each edit's span of ORIGINAL with its replacement. EDITS is a .json, .yaml, or .yml file
listing {id, start, end, replacement, note, author} records with byte offsets into ORIGINAL.

Out-of-range offsets are clamped and overlapping edits are clipped so that the later edit wins.
With --strict, such edits are reported as errors instead.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, edits, err := s.readTextAndEdits(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			var result string
			if strict {
				result, err = edit.ApplyStrict(text, edits)
				if err != nil {
					return err
				}
			} else {
				result = edit.Apply(text, edits)
			}
			simplelogger.Logger().Info("edits applied",
				zap.Int("edits", len(edits)),
				zap.Bool("strict", strict),
				zap.Int("bytes_in", len(text)),
				zap.Int("bytes_out", len(result)),
			)
			_, err = io.WriteString(cmd.OutOrStdout(), result)
			return err
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on out-of-range or overlapping edits instead of clamping and clipping")
	return cmd
}

func newAnnotateCommand(s *runState) *cobra.Command {
	mode := newEnum("edits", "edits", "corrections")
	cmd := &cobra.Command{
		Use:   "annotate ORIGINAL EDITS",
		Short: "Render an edit collection as HTML span markup",
		Long: `annotate renders ORIGINAL with EDITS as HTML span markup.

--mode edits shows removed text struck through followed by its replacement.
--mode corrections highlights each span and carries the replacement in data attributes.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, edits, err := s.readTextAndEdits(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			var markup string
			switch mode.value {
			case "corrections":
				markup = annotate.RenderWithCorrections(text, edit.NewCorrections(text, edits))
			default:
				markup = annotate.RenderWithEdits(text, edits)
			}
			simplelogger.Logger().Info("annotations rendered", zap.String("mode", mode.value), zap.Int("edits", len(edits)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}
	cmd.Flags().Var(mode, "mode", "markup style: edits or corrections")
	return cmd
}

func newCheckCommand(s *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "check ORIGINAL EDITS",
		Short: "Validate an edit collection against a text",
		Long:  "check reports edits whose offsets are invalid or out of range for ORIGINAL, and edits that overlap.",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, edits, err := s.readTextAndEdits(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if err := edit.Check(text, edits); err != nil {
				simplelogger.Logger().Warn("edit check failed", zap.Int("edits", len(edits)), zap.Error(err))
				return exitError{Code: 1, Err: fmt.Errorf("%s:\n%w", args[1], err)}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d edits\n", len(edits))
			return err
		},
	}
}

func newConfigCommand(s *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeConfigJSON(cmd.OutOrStdout(), s.cfg)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the redpen version",
		Args:  exactArgs(0),
		// Skip config loading: version works even when the config is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "redpen %s\n", Version)
			return err
		},
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return exitError{Code: 2, Err: err}
		}
		return nil
	}
}

// useColor resolves a render.color mode for w. In auto mode, color is used only when w is a terminal and NO_COLOR is unset.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// enumValue is a string flag restricted to a fixed set of values, so that bad values are reported as flag errors.
type enumValue struct {
	value   string
	allowed []string
}

func newEnum(def string, allowed ...string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

func (e *enumValue) String() string {
	return e.value
}

func (e *enumValue) Set(s string) error {
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}
