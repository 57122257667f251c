package textprocessor

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewAbbreviationGuard(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
		wantErr bool
	}{
		{"default", DefaultAbbreviations, DefaultAbbreviations, false},
		{"lowercased", []string{"Dr.", " ETC. "}, []string{"dr.", "etc."}, false},
		{"empty table", []string{}, []string{}, false},
		{"missing period", []string{"dr"}, nil, true},
		{"only period", []string{"."}, nil, true},
		{"inner period", []string{"e.g."}, nil, true},
		{"inner terminator", []string{"v!s."}, nil, true},
		{"two tokens", []string{"et al."}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, err := NewAbbreviationGuard(tt.entries)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAbbreviation) {
					t.Errorf("NewAbbreviationGuard() error = %v, want ErrInvalidAbbreviation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAbbreviationGuard() unexpected error: %v", err)
			}
			if got := guard.Entries(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Entries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAbbreviationGuard_ProtectRestore(t *testing.T) {
	guard, err := NewAbbreviationGuard(DefaultAbbreviations)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		text string
	}{
		{"single", "dr. martin"},
		{"all occurrences", "m. et mme. dupont, etc. vs. m. durand"},
		{"nothing to protect", "le chat dort. le chien court!"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protected := guard.Protect(tt.text)
			for _, abbr := range guard.Entries() {
				if strings.Contains(protected, abbr) {
					t.Errorf("Protect(%q) = %q still contains %q", tt.text, protected, abbr)
				}
			}
			if restored := guard.Restore(protected); restored != tt.text {
				t.Errorf("Restore(Protect(%q)) = %q", tt.text, restored)
			}
		})
	}
}

func TestAbbreviationGuard_OverlappingEntries(t *testing.T) {
	for _, entries := range [][]string{{"r.", "pr."}, {"pr.", "r."}} {
		guard, err := NewAbbreviationGuard(entries)
		if err != nil {
			t.Fatal(err)
		}
		text := "le pr. durand"
		if got := guard.Restore(guard.Protect(text)); got != text {
			t.Errorf("%v: Restore(Protect()) = %q, want %q", entries, got, text)
		}
		got := NewSentenceSplitter(guard).Split("Le pr. Durand arrive. Il parle.")
		want := []string{"le pr. durand arrive", "il parle"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v: Split() = %v, want %v", entries, got, want)
		}
	}
}
