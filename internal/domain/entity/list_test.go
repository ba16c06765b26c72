package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "react, nextjs,  webdev", want: []string{"react", "nextjs", "webdev"}},
		{in: "react,", want: []string{"react", ""}},
		{in: "react,react", want: []string{"react", "react"}},
		{in: "  solo  ", want: []string{"solo"}},
		{in: "", want: nil},
		{in: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitList(tt.in)); diff != "" {
				t.Errorf("SplitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestJoinList_RoundTrip(t *testing.T) {
	items := []string{"React", "Next.js", ""}
	if diff := cmp.Diff(items, SplitList(JoinList(items))); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
