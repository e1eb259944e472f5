// Package object implements the three git-style object kinds — Blob, Tree,
// and Commit — and their canonical, self-describing serialization.
package object

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies which of the three object variants a serialized object is.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
)

// ErrMalformed is returned when a serialized object's header does not match
// the expected "<kind> <len>\0<body>" framing.
var ErrMalformed = errors.New("object: malformed serialized object")

// Object is any of Blob, Tree, or Commit. It is a closed tagged variant:
// callers recover the concrete kind with a type switch after Parse, the same
// way the store recovers it from the serialized header.
type Object interface {
	// Kind reports which variant this object is.
	Kind() Kind
	// Serialize returns the canonical byte form used to compute the
	// object's digest. Identical content always serializes identically.
	Serialize() []byte
}

// frame wraps a body with the "<kind> <len>\0" header every object kind
// shares, per the on-disk object format.
func frame(kind Kind, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(string(kind))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(body)))
	buf.WriteByte(0)
	buf.Write(body)
	return buf.Bytes()
}

// Parse recovers an Object from its serialized bytes, dispatching on the
// header keyword. It returns ErrMalformed if the framing is invalid.
func Parse(data []byte) (Object, error) {
	sp := bytes.IndexByte(data, ' ')
	nul := bytes.IndexByte(data, 0)
	if sp < 0 || nul < 0 || nul < sp {
		return nil, ErrMalformed
	}

	kind := Kind(data[:sp])
	length, err := strconv.Atoi(string(data[sp+1 : nul]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad length: %w", ErrMalformed, err)
	}
	body := data[nul+1:]
	if len(body) != length {
		return nil, fmt.Errorf("%w: length mismatch: header says %d, got %d", ErrMalformed, length, len(body))
	}

	switch kind {
	case KindBlob:
		return &Blob{Content: append([]byte(nil), body...)}, nil
	case KindTree:
		return parseTreeBody(body)
	case KindCommit:
		return parseCommitBody(body)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, kind)
	}
}
