package notes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/calm/internal/xerrors"
)

func TestList_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:    "empty",
			input:   "",
			want:    []string{Seed},
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   \t",
			want:    []string{Seed},
			wantErr: true,
		},
		{
			name:  "prepends",
			input: "Hello",
			want:  []string{"Hello", Seed},
		},
		{
			name:  "trims",
			input: "  tea at four  ",
			want:  []string{"tea at four", Seed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(Seed)
			err := l.Add(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !xerrors.IsBlank(err) {
				t.Errorf("Add(%q) error = %v, want blank", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, l.All()); diff != "" {
				t.Errorf("notes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_NewestFirstNoDedup(t *testing.T) {
	t.Parallel()

	l := New()
	for _, s := range []string{"a", "b", "a"} {
		if err := l.Add(s); err != nil {
			t.Fatalf("Add(%q) error = %v", s, err)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, l.All()); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestList_AllIsACopy(t *testing.T) {
	t.Parallel()

	l := New("first")
	got := l.All()
	got[0] = "changed"
	if l.All()[0] != "first" {
		t.Error("All() exposed the backing slice")
	}
	if New(" ", "").Len() != 0 {
		t.Error("blank seeds should be skipped")
	}
}
