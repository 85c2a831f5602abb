package errors

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsType(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "banner.png", Err: fs.ErrNotExist}

	got, ok := AsType[*fs.PathError](Wrap(pathErr, "read asset"))
	assert.True(t, ok)
	assert.Same(t, pathErr, got)

	_, ok = AsType[*fs.PathError](New("plain"))
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	err := Wrapf(io.ErrUnexpectedEOF, "decode %s", "body")

	assert.True(t, IsAny(err, io.EOF, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(err, io.EOF))
	assert.False(t, IsAny(err))
}
