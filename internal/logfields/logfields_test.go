package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Type", KeyType, "bigdata", Type("bigdata")},
		{"Step", KeyStep, "3", Step(3)},
		{"Kind", KeyKind, "article", Kind("article")},
		{"Count", KeyCount, "10", Count(10)},
		{"CorrelationID", KeyCorrelationID, "abc", CorrelationID("abc")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}
