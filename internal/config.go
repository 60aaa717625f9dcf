package internal

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	// GROUP_PRIORITY is a comma-separated caption pattern list overriding
	// the persisted order (exact captions or "ns.*" wildcards).
	GroupPriority  string `env:"GROUP_PRIORITY"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
}

// captionPattern accepts an exact caption or a namespace wildcard: a '*'
// may only appear as the trailing ".*" segment.
func captionPattern(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()
	pattern = strings.TrimSuffix(pattern, ".*")
	return pattern != "" && !strings.ContainsAny(pattern, "* \t")
}

// PriorityPatterns parses and validates GROUP_PRIORITY. An empty variable
// yields nil, meaning "use the persisted or default order".
func (c Config) PriorityPatterns() ([]string, error) {
	if strings.TrimSpace(c.GroupPriority) == "" {
		return nil, nil
	}
	var patterns []string
	for _, p := range strings.Split(c.GroupPriority, ",") {
		patterns = append(patterns, strings.TrimSpace(p))
	}
	validate := validator.New()
	if err := validate.RegisterValidation("caption_pattern", captionPattern); err != nil {
		return nil, err
	}
	if err := validate.Var(patterns, "dive,caption_pattern"); err != nil {
		return nil, fmt.Errorf("GROUP_PRIORITY contains an invalid pattern: %w", err)
	}
	return patterns, nil
}
