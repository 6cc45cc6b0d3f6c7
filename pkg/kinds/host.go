package kinds

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"strconv"
)

// Host kinds stand for errors produced by the standard library. They are
// valid catch targets without being defined in any registry.
var (
	Panic            = hostKind("Panic", as[*PanicError])
	Canceled         = hostKind("Canceled", is(context.Canceled))
	DeadlineExceeded = hostKind("DeadlineExceeded", is(context.DeadlineExceeded))
	UnexpectedEOF    = hostKind("UnexpectedEOF", is(io.ErrUnexpectedEOF))
	EOF              = hostKind("EOF", is(io.EOF))
	NotExist         = hostKind("NotExist", is(fs.ErrNotExist))
	Exist            = hostKind("Exist", is(fs.ErrExist))
	Permission       = hostKind("Permission", is(fs.ErrPermission))
	Closed           = hostKind("Closed", is(net.ErrClosed))
	SyntaxError      = hostKind("SyntaxError", as[*json.SyntaxError])
	NumError         = hostKind("NumError", as[*strconv.NumError])

	// PathError only claims path errors whose cause is not itself a host
	// kind: os.Open on a missing file classifies as NotExist, not PathError.
	PathError = hostKind("PathError", as[*fs.PathError])

	// Error is the fallback for any error no other kind claims.
	Error = hostKind("Error", func(error) bool { return true })
)

// hosts is the classification order. More specific kinds come first.
var hosts = []*Kind{
	Panic,
	Canceled,
	DeadlineExceeded,
	UnexpectedEOF,
	EOF,
	NotExist,
	Exist,
	Permission,
	Closed,
	SyntaxError,
	NumError,
	PathError,
	Error,
}

func hostKind(name string, match func(error) bool) *Kind {
	return &Kind{
		name:   name,
		parent: Root,
		id:     nextID.Add(1),
		host:   true,
		match:  match,
	}
}

func is(target error) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

func as[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// Hosts returns the host kinds in classification order.
func Hosts() []*Kind {
	out := make([]*Kind, len(hosts))
	copy(out, hosts)
	return out
}

// Host returns the host kind with the given name.
func Host(name string) (*Kind, bool) {
	for _, k := range hosts {
		if k.name == name {
			return k, true
		}
	}
	return nil, false
}

// Classify maps err to exactly one kind. A Failure anywhere in the chain
// yields its own kind; otherwise the first matching host kind wins. A nil
// *Failure carries no kind and classifies like any other error.
// Returns nil for a nil error.
func Classify(err error) *Kind {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f.kind
	}
	for _, k := range hosts {
		if k.match(err) {
			return k
		}
	}
	return Error
}
