package annotex

// CompileOptions holds options for compilation.
type CompileOptions struct {
	CommentMarkdown bool
	Config          *RenderConfig
}

// Option is a function that configures CompileOptions.
type Option func(*CompileOptions)

// WithCommentMarkdown sets whether annotation comments are treated as
// Markdown and flattened to plain text before emission.
func WithCommentMarkdown(enable bool) Option {
	return func(opts *CompileOptions) {
		opts.CommentMarkdown = enable
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *CompileOptions) {
		opts.Config = config
	}
}

// defaultCompileOptions returns the default compilation options.
func defaultCompileOptions() *CompileOptions {
	return &CompileOptions{
		CommentMarkdown: true,
		Config:          DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *CompileOptions {
	options := defaultCompileOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
