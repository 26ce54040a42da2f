package i18n

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/text/language"
)

// TranslatableError is an error whose message is looked up by key at the time it is printed
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider returns the unformatted message stored under key
type MessageProvider interface {
	GetMessage(key string) string
}

// messageKey is shared by a sentinel and every copy derived from it; errors.Is
// compares these pointers, never the key text.
type messageKey struct {
	name string
}

// TrError is a sentinel error identified by a message key. WithArgs and Wrap derive
// copies which still match the sentinel under errors.Is:
//
//	var ErrMissingValue = i18n.NewError("fli.error.missing_value")
//
//	err := ErrMissingValue.WithArgs("name").Wrap(cause)
//	errors.Is(err, ErrMissingValue) // true
type TrError struct {
	key     *messageKey
	args    []interface{}
	wrapped error
}

// NewError returns a new sentinel for key. Two sentinels built from the same key are distinct.
func NewError(key string) *TrError {
	return &TrError{key: &messageKey{name: key}}
}

func (e *TrError) derive(args []interface{}, wrapped error) *TrError {
	return &TrError{key: e.key, args: args, wrapped: wrapped}
}

// WithArgs returns a copy formatted with args
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return e.derive(args, e.wrapped)
}

// Wrap returns a copy with err as its cause
func (e *TrError) Wrap(err error) TranslatableError {
	return e.derive(e.args, err)
}

// Key returns the message key
func (e *TrError) Key() string {
	return e.key.name
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the cause, if any
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Is matches any TrError derived from the same sentinel
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	return ok && t.key == e.key
}

// Error renders the message in the current provider's language
func (e *TrError) Error() string {
	msg := currentProvider().GetMessage(e.key.name)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped == nil {
		return msg
	}

	return msg + ": " + e.wrapped.Error()
}

// BundleMessageProvider serves messages from a Bundle in its current default language,
// falling back to English and then to the key.
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider returns a provider reading from bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	for _, lang := range []language.Tag{p.bundle.DefaultLanguage(), language.English} {
		if msg, ok := p.bundle.Lookup(lang, key); ok {
			return msg
		}
	}

	return key
}

type providerHolder struct {
	MessageProvider
}

var activeProvider atomic.Pointer[providerHolder]

// SetDefaultMessageProvider replaces the provider used by every TrError. nil restores
// the provider backed by Default().
func SetDefaultMessageProvider(p MessageProvider) {
	if p == nil {
		activeProvider.Store(nil)
		return
	}
	activeProvider.Store(&providerHolder{p})
}

func currentProvider() MessageProvider {
	if h := activeProvider.Load(); h != nil {
		return h.MessageProvider
	}

	return NewBundleMessageProvider(Default())
}
