package internal

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	OutputConsole = "console"
	OutputLogfile = "logfile"

	// LevelCritical sits above slog.LevelError.
	LevelCritical = slog.LevelError + 4
)

var validate = validator.New()

type Config struct {
	NumUsers     int     `env:"NUM_USERS,default=1000" validate:"gte=0"`
	NumMessages  int     `env:"NUM_MESSAGES,default=10" validate:"gte=0"`
	LossChance   float64 `env:"LOSS_CHANCE,default=0.1" validate:"gte=0,lte=1"`
	ReadChance   float64 `env:"READ_CHANCE,default=0.5" validate:"gte=0,lte=1"`
	Output       string  `env:"OUTPUT,default=console" validate:"oneof=console logfile"`
	LogFile      string  `env:"LOG_FILE,default=notifications.log" validate:"required_if=Output logfile"`
	LogLevel     string  `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warning error critical"`
	LogSize      int64   `env:"LOG_SIZE,default=10000000" validate:"gte=0"`
	LogBackup    int     `env:"LOG_BACKUP,default=1" validate:"gte=0"`
	ReportFormat string  `env:"REPORT_FORMAT,default=lines" validate:"oneof=lines table"`
	Colours      bool    `env:"COLOURS,default=true"`
	WordCount    int     `env:"WORD_COUNT,default=10" validate:"gte=1"`
	Seed         *int64  `env:"SEED"`
}

// LoadConfig reads an optional .env file, then the environment, then the
// command line flags, each layer overriding the previous one.
func LoadConfig(args []string) (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	config.Output = strings.ToLower(config.Output)
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// BindFlags registers short and long flags for every setting, defaulting
// to the values already held by the config.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	intVar := func(p *int, short, long, usage string) {
		fs.IntVar(p, short, *p, usage)
		fs.IntVar(p, long, *p, usage)
	}
	floatVar := func(p *float64, short, long, usage string) {
		fs.Float64Var(p, short, *p, usage)
		fs.Float64Var(p, long, *p, usage)
	}
	stringVar := func(p *string, short, long, usage string) {
		fs.StringVar(p, short, *p, usage)
		fs.StringVar(p, long, *p, usage)
	}
	intVar(&c.NumUsers, "u", "numusers", "Number of users to register.")
	intVar(&c.NumMessages, "m", "nummessages", "Number of messages to send.")
	floatVar(&c.LossChance, "lc", "losschance", "Message loss chance [0-1].")
	floatVar(&c.ReadChance, "rc", "readchance", "Message read chance [0-1].")
	stringVar(&c.Output, "o", "output", `Program output, "console" or "logfile".`)
	stringVar(&c.LogFile, "f", "logfile", "Path to log file.")
	stringVar(&c.LogLevel, "lv", "loglevel", "Logging level: debug, info, warning, error or critical.")
	fs.Int64Var(&c.LogSize, "ls", c.LogSize, "Max log size in bytes before rotation.")
	fs.Int64Var(&c.LogSize, "logsize", c.LogSize, "Max log size in bytes before rotation.")
	intVar(&c.LogBackup, "lb", "logbackup", "Max number of backup logs.")
	fs.StringVar(&c.ReportFormat, "format", c.ReportFormat, `Statistics layout, "lines" or "table".`)
	fs.BoolVar(&c.Colours, "colours", c.Colours, "Colour the console report.")
	fs.IntVar(&c.WordCount, "words", c.WordCount, "Words per generated message body.")
	fs.Func("seed", "Seed for reproducible runs.", func(s string) error {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = &seed
		return nil
	})
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level maps the configured level name to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical":
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}
