package ast

import (
	"reflect"
	"testing"
)

func TestMergeText(t *testing.T) {
	tests := []struct {
		name  string
		input []Node
		want  []Node
	}{
		{
			"adjacent runs",
			[]Node{Text{Value: "a"}, Text{Value: "b"}, Text{Value: "c"}},
			[]Node{Text{Value: "abc"}},
		},
		{
			"runs split by other nodes",
			[]Node{Text{Value: "a"}, Hashtag{Tag: "x"}, Text{Value: "b"}, Text{Value: "c"}},
			[]Node{Text{Value: "a"}, Hashtag{Tag: "x"}, Text{Value: "bc"}},
		},
		{
			"recurses into children",
			[]Node{Bold{Children: []Node{Text{Value: "a"}, Text{Value: "b"}}}},
			[]Node{Bold{Children: []Node{Text{Value: "ab"}}}},
		},
		{
			"recurses into link labels",
			[]Node{Link{URL: "u", Label: []Node{Text{Value: "a"}, Text{Value: "b"}}}},
			[]Node{Link{URL: "u", Label: []Node{Text{Value: "ab"}}}},
		},
		{
			"empty",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tree := []Node{
		Text{Value: "a"},
		Bold{Children: []Node{
			Hashtag{Tag: "one"},
			Italic{Children: []Node{Hashtag{Tag: "two"}}},
		}},
		Hashtag{Tag: "three"},
	}

	got := Extract(tree, func(n Node) bool {
		_, ok := n.(Hashtag)
		return ok
	})

	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.(Hashtag).Tag != want[i] {
			t.Errorf("node %d: got %q, want %q", i, n.(Hashtag).Tag, want[i])
		}
	}
}

func TestTextOf(t *testing.T) {
	tests := []struct {
		name  string
		input []Node
		want  string
	}{
		{"text", []Node{Text{Value: "hi"}}, "hi"},
		{"markup stripped", []Node{Bold{Children: []Node{Text{Value: "hi"}}}}, "hi"},
		{"hashtag keeps #", []Node{Hashtag{Tag: "go"}}, "#go"},
		{"mention uses acct", []Node{Mention{Username: "u", Host: "h", Acct: "@u@h"}}, "@u@h"},
		{"emoji code keeps colons", []Node{EmojiCode{Name: "wave"}}, ":wave:"},
		{"link renders label", []Node{Link{URL: "u", Label: []Node{Text{Value: "label"}}}}, "label"},
		{"code renders body", []Node{InlineCode{Code: "x"}}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOf(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
