package main

import (
	"bufio"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"io"
	"strings"
)

// app - State shared by the root command and its demos
type app struct {
	flags  flagValues
	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "collections",
		Short: "interactive demos of the collections containers",
		Long: `
  Runs a container demo that reads one command per line from stdin.
  Errors such as popping an empty stack are printed and the demo continues.
`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	addFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		a.stackCmd(),
		a.queueCmd(),
		a.linkedStackCmd(),
		a.linkedQueueCmd(),
		a.maxStackCmd(),
		a.hashTableCmd(),
		a.pqCmd(),
	)

	return root
}

// setup - Resolves the config and creates the logger before any demo runs
func (A *app) setup(cmd *cobra.Command, _ []string) (err error) {
	A.cfg, err = resolveConfig(cmd.Flags(), A.flags)
	if err != nil {
		return
	}

	A.logger, err = newLogger(A.cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return
	}

	A.logger.Debug("starting demo",
		zap.String("demo", cmd.Name()),
		zap.Int64("tableCapacity", A.cfg.TableCapacity),
		zap.Int("pqCapacity", A.cfg.PQCapacity),
		zap.String("quit", A.cfg.Quit))

	return
}

// readLines - Calls handle for every line of in until the quit line or end of input. Lines have no length limit.
// An error from handle is printed to out and logged, and reading continues.
func (A *app) readLines(demo string, in io.Reader, out io.Writer, quit string, handle func(line string) error) error {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			return nil
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line == quit {
			return nil
		}

		if herr := handle(line); herr != nil {
			A.logger.Debug("command failed", zap.String("demo", demo), zap.String("line", line), zap.Error(herr))
			_, _ = fmt.Fprintln(out, "error:", herr)
		}

		if err == io.EOF {
			return nil
		}
	}
}
