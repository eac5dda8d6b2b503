// Package logfields holds canonical slog attribute keys so log lines stay
// queryable across packages.
package logfields

import "log/slog"

const (
	KeyType          = "type"
	KeyStep          = "step"
	KeyKind          = "kind"
	KeyCount         = "count"
	KeyCorrelationID = "correlation_id"
	KeyError         = "error"
)

func Type(t string) slog.Attr           { return slog.String(KeyType, t) }
func Step(n int) slog.Attr              { return slog.Int(KeyStep, n) }
func Kind(k string) slog.Attr           { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func CorrelationID(id string) slog.Attr { return slog.String(KeyCorrelationID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
