package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported test frameworks.
const (
	TestFrameworkJest  = "jest"
	TestFrameworkKarma = "karma"
)

// Config is the immutable run configuration. It is constructed once at
// startup and handed by value to every adapter.
type Config struct {
	WorkspaceRoot    Path   `validate:"required"`
	Framework        string `validate:"required,oneof=angular react vue javascript typescript"`
	FrameworkVersion string
	TestFramework    string `validate:"required,oneof=jest karma"`
	TestSuffix       string `validate:"required,oneof=test spec"`
	ScriptTarget     string `validate:"required,oneof=typescript javascript"`

	APIHost         string        `validate:"required,url"`
	APITimeout      time.Duration `validate:"gte=0"`
	GenerateRetries int           `validate:"gte=0,lte=10"`
	RetryBackoff    time.Duration `validate:"gte=0"`
	ClientVersion   string

	MaxAttempts int    `validate:"gte=1,lte=20"`
	TestCommand string // overrides the runner binary invocation, shell-quoted

	CIMode  bool
	BaseRef string

	AllFiles bool
	Include  []string
	Exclude  []string

	MinNodeVersion string
}

var configValidate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// IsAngular reports whether the project uses Angular companion templates.
func (c Config) IsAngular() bool {
	return c.Framework == "angular"
}
