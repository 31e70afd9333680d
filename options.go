package emendapi

// config collects the options every entry point in this package accepts.
type config struct {
	logger      Logger
	strict      bool
	includeInfo bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{logger: NopLogger{}, includeInfo: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures Convert or Downgrade.
type Option func(*config)

// WithLogger sets the Logger used to report progress. The default is
// NopLogger.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict causes Convert/Downgrade to fail with an error if any issue,
// even an Info-level one, was recorded, instead of returning it in Result.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithIncludeInfo controls whether Info-severity issues are kept in the
// returned Result. Defaults to true; set false to see only warnings and
// critical issues.
func WithIncludeInfo(include bool) Option {
	return func(c *config) { c.includeInfo = include }
}
