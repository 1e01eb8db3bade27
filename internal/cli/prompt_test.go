package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{name: "blank uses default", input: "\n", defaultYes: true, want: true},
		{name: "eof uses default", input: "", defaultYes: false, want: false},
		{name: "explicit yes", input: "YES\n", want: true},
		{name: "retry after junk", input: "maybe\nn\n", defaultYes: true, want: false},
		{name: "junk at eof", input: "maybe", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptYesNo(bufio.NewReader(strings.NewReader(tc.input)), &out, "Continue?", tc.defaultYes)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPromptChoice(t *testing.T) {
	choices := []string{"auto", "live", "plain"}
	var out bytes.Buffer
	got, err := promptChoice(bufio.NewReader(strings.NewReader("fancy\nPlain\n")), &out, "UI", choices, "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain" {
		t.Fatalf("expected plain, got %q", got)
	}
	if !strings.Contains(out.String(), "Please answer one of auto, live, plain.") {
		t.Fatalf("expected retry hint, got %q", out.String())
	}

	got, err = promptChoice(bufio.NewReader(strings.NewReader("")), &out, "UI", choices, "auto")
	if err != nil || got != "auto" {
		t.Fatalf("expected default on eof, got %q, %v", got, err)
	}
}
