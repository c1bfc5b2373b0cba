package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iwat/vibedump/internal/application"
	"github.com/iwat/vibedump/internal/infrastructure/fsys"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AppBuilder struct {
	out        io.Writer
	errOut     io.Writer
	fileReader application.FileReader
	fileStater application.FileStater
	app        *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithOutput(out, errOut io.Writer) *AppBuilder {
	b.out = out
	b.errOut = errOut
	return b
}

func (b *AppBuilder) WithFileReader(reader application.FileReader) *AppBuilder {
	b.fileReader = reader
	return b
}

func (b *AppBuilder) WithFileStater(stater application.FileStater) *AppBuilder {
	b.fileStater = stater
	return b
}

func (b *AppBuilder) Build() {
	if b.fileReader == nil {
		b.fileReader = fsys.OSFileSystem{}
	}
	if b.fileStater == nil {
		b.fileStater = fsys.OSFileSystem{}
	}
	b.app = application.NewApp(b.out, b.errOut, b.fileReader, b.fileStater)
}

func (b *AppBuilder) App() *application.App {
	return b.app
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vibedump <file-path>",
		Short: "VibeDump prints a file's contents and metadata",
		Long:  "VibeDump reads a file into memory, prints its contents to the terminal, then prints a metadata snapshot (size, last-modified time).",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), cmd.Flag("log-level").Value.String())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The arguments are valid past this point; any further
			// failure is an I/O error, not a usage error.
			cmd.SilenceUsage = true
			appBuilder.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			appBuilder.Build()
			return appBuilder.App().DumpFile(args[0])
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	// Usage output carries the one-line purpose, not just the arg syntax.
	rootCmd.SetUsageTemplate("{{.Short}}\n\n" + rootCmd.UsageTemplate())

	return rootCmd
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})))
	return nil
}
