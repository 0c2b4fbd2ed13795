package loader

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Sentinel errors for graph loading.
var (
	// ErrSyntax is returned for a token that is not an integer node ID.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrDuplicateNode is returned when a node has more than one line.
	ErrDuplicateNode = errors.New("loader: duplicate node line")

	// ErrFetch is returned when a URL source answers with a non-2xx status.
	ErrFetch = errors.New("loader: fetch failed")
)

// Option configures Parse and Load.
type Option func(*options)

type options struct {
	directed   bool
	symmetrize bool
	client     *http.Client
	logger     *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{
		client: http.DefaultClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDirected treats every line as the out-edges of its node.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// WithSymmetrize builds an undirected graph, adding the reverse of any
// edge listed on one side only.
func WithSymmetrize() Option {
	return func(o *options) { o.symmetrize = true }
}

// WithHTTPClient sets the client used for URL sources. A nil client is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
