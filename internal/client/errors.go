package client

import (
	"errors"
	"fmt"
)

// Классы сбоев получения данных. Проверяются через errors.Is.
var (
	ErrNetworkFailure = errors.New("network failure")
	ErrHTTPFailure    = errors.New("http failure")
	ErrDecodeFailure  = errors.New("decode failure")
)

// FailureKind - класс сбоя
type FailureKind int

const (
	KindNetwork FailureKind = iota
	KindHTTP
	KindDecode
)

func (k FailureKind) String() string {
	return [...]string{"network", "http", "decode"}[k]
}

func (k FailureKind) sentinel() error {
	return [...]error{ErrNetworkFailure, ErrHTTPFailure, ErrDecodeFailure}[k]
}

// FetchFailure - сбой чтения одного из фидов
type FetchFailure struct {
	Feed       string
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *FetchFailure) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Feed, e.StatusCode)
	default:
		return fmt.Sprintf("fetch %s: %s: %v", e.Feed, e.Kind, e.Err)
	}
}

func (e *FetchFailure) Unwrap() error { return e.Err }

// Is сопоставляет сбой с сентинелом его класса
func (e *FetchFailure) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// CreateFailure - сбой создания инцидента
type CreateFailure struct {
	StatusCode int
	Err        error
}

func (e *CreateFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("create incident: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("create incident: %v", e.Err)
}

func (e *CreateFailure) Unwrap() error { return e.Err }
