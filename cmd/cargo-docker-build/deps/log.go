package deps

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/dig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cargo-docker-build.run/cmd/cargo-docker-build/rootcmd"
)

type LogFactory interface {
	Logger() logr.Logger
}

type LogFactoryResult struct {
	dig.Out

	Factory LogFactory
	Flags   rootcmd.FlagAdder `group:"rootPersistentFlags"`
}

func ProvideLogFactory(streams rootcmd.IOStreams) LogFactoryResult {
	f := &ZapLogFactory{
		out:   streams.ErrOut,
		level: levelFlag{Level: zapcore.InfoLevel},
	}

	return LogFactoryResult{
		Factory: f,
		Flags:   f,
	}
}

// ZapLogFactory builds a zap backed logger from the flag values present
// at the time Logger is called.
type ZapLogFactory struct {
	out         io.Writer
	level       levelFlag
	development bool
}

func (f *ZapLogFactory) AddFlags(flags *pflag.FlagSet) {
	flags.Var(
		&f.level,
		"log-level",
		"Minimum level of log messages written to stderr (debug, info, warn, error)",
	)
	flags.BoolVar(
		&f.development,
		"log-devel",
		f.development,
		"Use development logging with timestamps and stack traces on errors",
	)
}

func (f *ZapLogFactory) Logger() logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	opts := []zap.Option{}

	if f.development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(f.out),
		zap.NewAtomicLevelAt(f.level.Level),
	)

	return zapr.NewLogger(zap.New(core, opts...))
}

// levelFlag exposes a zap level as a pflag value.
type levelFlag struct {
	zapcore.Level
}

func (l *levelFlag) Type() string {
	return "level"
}
