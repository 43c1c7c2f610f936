package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	errC := New("c")

	tests := []struct {
		name    string
		err     error
		targets []error
		want    bool
	}{
		{name: "direct match", err: errA, targets: []error{errB, errA}, want: true},
		{name: "wrapped match", err: Wrap(errB, "context"), targets: []error{errA, errB}, want: true},
		{name: "no match", err: errC, targets: []error{errA, errB}, want: false},
		{name: "no targets", err: errA, targets: nil, want: false},
		{name: "nil error", err: nil, targets: []error{errA}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAny(tt.err, tt.targets...))
		})
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	base := New("base failure")
	wrapped := Wrapf(base, "while loading %s", "airport")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Cause(wrapped))
	assert.Equal(t, "while loading airport: base failure", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}
