// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvfuzzy/config"
	"github.com/katalvlaran/lvfuzzy/inference"
)

// app carries the global flags and the logger built from them.
type app struct {
	configPath string
	logLevel   string
	dev        bool

	log *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mamdani fuzzy inference over declarative rule bases",
		Long: `fuzzyctl loads a rule base (YAML or TOML) of fuzzy variables and
IF-THEN rules and maps crisp inputs to crisp outputs with max-min
inference and centroid defuzzification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.logLevel, a.dev)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Rule base file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.dev, "dev", false, "Human-readable development logging")

	cmd.AddCommand(
		validateCmd(a),
		inferCmd(a),
		batchCmd(a),
		relateCmd(a),
		curvesCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
			},
		},
	)

	return cmd
}

// newLogger builds a production JSON logger, or a console logger with
// trimmed caller paths when dev is set. Logs go to stderr.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	c := zap.NewProductionConfig()
	if dev {
		c = zap.NewDevelopmentConfig()
		c.EncoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
			p := caller.TrimmedPath()
			if len(p) > 30 {
				p = "..." + p[len(p)-27:]
			}
			enc.AppendString(fmt.Sprintf("%30s", p))
		}
	}
	c.DisableStacktrace = true
	c.Level = zap.NewAtomicLevelAt(lvl)

	return c.Build()
}

func (a *app) ruleBase() (*config.RuleBase, error) {
	if a.configPath == "" {
		return nil, errors.New("--config is required")
	}

	return config.Load(a.configPath)
}

func (a *app) engine(opts ...inference.Option) (*inference.Engine, error) {
	rb, err := a.ruleBase()
	if err != nil {
		return nil, err
	}

	return rb.Build(append([]inference.Option{inference.WithLogger(a.log)}, opts...)...)
}

// parseAssignment splits "name=value" into its parts.
func parseAssignment(s string) (string, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("%q: want name=value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%q: %w", s, err)
	}

	return name, v, nil
}
