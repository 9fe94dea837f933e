package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPage_HasMore(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		pageSize int
		want     bool
	}{
		{"first of many", 10, 1, 3, true},
		{"last full page", 6, 2, 3, false},
		{"single page", 2, 1, 10, false},
		{"out of range page", 2, 5, 10, false},
		{"exact boundary", 20, 2, 10, false},
		{"one past boundary", 21, 2, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, tt.total, tt.page, tt.pageSize)
			if p.HasMore != tt.want {
				t.Errorf("HasMore = %v, want %v", p.HasMore, tt.want)
			}
		})
	}
}

func TestNewPage_NilItemsMarshalAsEmptyArray(t *testing.T) {
	p := NewPage[int](nil, 0, 1, 10)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"items":[]`) {
		t.Errorf("marshaled page = %s, want items as []", data)
	}
}

func TestResult_MutuallyExclusive(t *testing.T) {
	ok := OK(42)
	if !ok.Success || ok.Data == nil || *ok.Data != 42 || ok.Error != "" {
		t.Errorf("OK(42) = %+v", ok)
	}

	fail := Fail[int]("boom")
	if fail.Success || fail.Data != nil || fail.Error != "boom" {
		t.Errorf("Fail() = %+v", fail)
	}

	data, err := json.Marshal(fail)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "data") {
		t.Errorf("failed Result marshals a data field: %s", data)
	}
}
