package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host            string `env:"HOST,required=true"`
	Port            int    `env:"PORT,required=true"`
	LogLevel        string `env:"LOG_LEVEL,required=true"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	HistoryCapacity int    `env:"HISTORY_CAPACITY,required=true"`

	SessionSecret     string        `env:"SESSION_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`

	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// SplitWords parses the comma separated CENSORED_WORDS value, trimming
// blanks so trailing commas in .env files stay harmless.
func SplitWords(str string) []string {
	var words []string
	for _, w := range strings.Split(str, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
