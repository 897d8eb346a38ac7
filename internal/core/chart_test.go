package core_test

import (
	"errors"
	"testing"

	"finstat/internal/core"
)

func TestNewChart_DefaultMasters(t *testing.T) {
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatalf("building chart from default masters: %v", err)
	}
	res, ok := chart.Resolve("B.80.01")
	if !ok {
		t.Fatal("expected B.80.01 to resolve")
	}
	if res.Major.Code != "B" || res.Minor.Code != "B.80" {
		t.Errorf("got chain %s -> %s, want B -> B.80", res.Major.Code, res.Minor.Code)
	}
	if got := chart.ParentOf("A.120"); got != "A" {
		t.Errorf("ParentOf(A.120) = %q, want A", got)
	}
}

func TestNewChart_DanglingReference(t *testing.T) {
	m := core.Masters{
		MajorHeads: []core.MajorHead{{Code: "A", Name: "Assets"}},
		MinorHeads: []core.MinorHead{{Code: "A.10", Name: "PPE", MajorHeadCode: "A"}},
		Groupings:  []core.Grouping{{Code: "A.20.01", Name: "Orphan", MinorHeadCode: "A.20"}},
	}
	_, err := core.NewChart(m)
	var refErr *core.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %v", err)
	}
	if refErr.Code != "A.20.01" || refErr.Parent != "A.20" {
		t.Errorf("unexpected reference error contents: %+v", refErr)
	}
}

func TestValidateChain(t *testing.T) {
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name                  string
		major, minor, group   string
		expectErr             bool
	}{
		{"valid chain", "A", "A.10", "A.10.03", false},
		{"grouping under wrong minor", "A", "A.20", "A.10.03", true},
		{"minor under wrong major", "B", "A.10", "A.10.03", true},
		{"unknown grouping", "A", "A.10", "A.10.99", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chart.ValidateChain(tt.major, tt.minor, tt.group)
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectErr {
				var hierErr *core.InconsistentHierarchyError
				if !errors.As(err, &hierErr) {
					t.Errorf("expected *InconsistentHierarchyError, got %T", err)
				}
			}
		})
	}
}

func TestSideOf(t *testing.T) {
	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		code string
		want core.Side
	}{
		{"A.110.01", core.SideDebit},
		{"B.30.01", core.SideCredit},
		{"C.10.01", core.SideCredit},
		{"C.20.02", core.SideCredit},
		{"C.60.01", core.SideDebit},
	}
	for _, tt := range tests {
		got, ok := chart.SideOf(tt.code)
		if !ok {
			t.Errorf("SideOf(%s): code not found", tt.code)
			continue
		}
		if got != tt.want {
			t.Errorf("SideOf(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
	if _, ok := chart.SideOf("Z.99"); ok {
		t.Error("expected unknown code to report !ok")
	}
}
