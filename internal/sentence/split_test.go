package sentence

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "two sentences on kuten",
			in:   "最初の文です。次の文です。",
			want: []string{"最初の文です。", "次の文です。"},
		},
		{
			name: "mixed terminators",
			in:   "本当に？そうです！以上．",
			want: []string{"本当に？", "そうです！", "以上．"},
		},
		{
			name: "trailing fragment without terminator kept",
			in:   "完結した文。未完の断片",
			want: []string{"完結した文。", "未完の断片"},
		},
		{
			name: "whitespace between sentences dropped",
			in:   "一文目。  \n二文目。",
			want: []string{"一文目。", "  \n二文目。"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "   \n ",
			want: nil,
		},
		{
			name: "ascii period is not a terminator",
			in:   "version 2.0 を使う。",
			want: []string{"version 2.0 を使う。"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Split(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplit_Idempotent(t *testing.T) {
	inputs := []string{
		"これは一つの文です。",
		"問いかけ？",
		"強調！",
	}

	for _, in := range inputs {
		first := Split(in)
		if len(first) != 1 {
			t.Fatalf("Split(%q) expected single sentence, got %v", in, first)
		}
		second := Split(first[0])
		if len(second) != 1 || second[0] != first[0] {
			t.Errorf("Split not idempotent for %q: %v then %v", in, first, second)
		}
	}
}
