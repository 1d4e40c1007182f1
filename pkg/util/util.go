package util

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
)

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

// NewRestyClient builds the outbound HTTP client. No retries: a failed
// remote call surfaces to the caller as-is.
func NewRestyClient() *resty.Client {
	c := resty.
		New().
		SetLogger(nopLogger{}).
		SetTimeout(30 * time.Second)
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal
	return c
}

// Ptr returns pointer of any value.
func Ptr[T any](t T) *T {
	return &t
}

// Val returns value if pointer is not null, otherwise it returns zero.
func Val[T any](t *T) T {
	if t != nil {
		return *t
	}

	var def T
	return def
}
