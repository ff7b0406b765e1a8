package compacttrie

// buildOptions collects the tunables Build accepts. The zero value is never
// used directly - see defaultBuildOptions.
type buildOptions struct {
	logger        Logger
	chainDepthCap int
}

// BuildOption configures a call to Builder.Build.
type BuildOption func(*buildOptions)

// WithLogger attaches a Logger that receives build-time diagnostics emitted
// while the label compressor runs. The default is NoopLogger, which
// discards everything.
func WithLogger(l Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// WithChainDepthCap overrides the safety cap on redirect-chain resolution
// during label compression (default 1000). A sound build never forms a
// cycle, since every redirect strictly points from a shorter string to a
// longer one; the cap exists purely as defense-in-depth.
func WithChainDepthCap(n int) BuildOption {
	return func(o *buildOptions) { o.chainDepthCap = n }
}

func defaultBuildOptions() *buildOptions {
	return &buildOptions{
		logger:        NoopLogger{},
		chainDepthCap: 1000,
	}
}
