package uiprovider

import "github.com/sirupsen/logrus"

// Option configures a provider or an EditorSession.
type Option func(*options)

// ChangeHandler receives the logical path of an asset that changed.
type ChangeHandler func(path string)

type options struct {
	log      *logrus.Logger
	session  *EditorSession
	onChange ChangeHandler
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.New()
	}
	return o
}

// WithLogger sets the logger. Lookups trace at Debug level.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithEditorSession records loaded assets in the session's reverse indexes
// and subscribes the provider to its change events. Without a session,
// providers keep no index and change callbacks do nothing.
func WithEditorSession(s *EditorSession) Option {
	return func(o *options) {
		o.session = s
	}
}

// WithChangeHandler sets the callback raised when a tracked asset changes.
func WithChangeHandler(h ChangeHandler) Option {
	return func(o *options) {
		o.onChange = h
	}
}
