package wcwidth

import (
	"strings"
	"testing"
)

var ofTests = []struct {
	s    string
	want int
}{
	{"", 0},
	{"a", 1},
	{"好", 2},
	{"か", 2},
	{"abc", 3},
	{"你好", 4},
	{"> grep -i", 9},
}

func TestOf(t *testing.T) {
	for _, test := range ofTests {
		if got := Of(test.s); got != test.want {
			t.Errorf("Of(%q) -> %d, want %d", test.s, got, test.want)
		}
	}
}

var trimTests = []struct {
	s    string
	w    int
	want string
}{
	{"abc", 0, ""},
	{"abc", 1, "a"},
	{"abc", 2, "ab"},
	{"abc", 3, "abc"},
	{"abc", 4, "abc"},

	{"你好", 1, ""},
	{"你好", 2, "你"},
	{"你好", 3, "你"},
	{"你好", 4, "你好"},
	{"你好", 5, "你好"},
}

func TestTrim(t *testing.T) {
	for _, test := range trimTests {
		if got := Trim(test.s, test.w); got != test.want {
			t.Errorf("Trim(%q, %d) -> %q, want %q", test.s, test.w, got, test.want)
		}
	}
}

var expandTabsTests = []struct {
	s    string
	want string
}{
	{"", ""},
	{"no tabs", "no tabs"},
	{"\tx", "        x"},
	{"ab\tx", "ab      x"},
	{"abcdefgh\tx", "abcdefgh        x"},
	{"你\tx", "你      x"},
	{"a\t\tb", "a               b"},
}

func TestExpandTabs(t *testing.T) {
	for _, test := range expandTabsTests {
		got := ExpandTabs(test.s)
		if got != test.want {
			t.Errorf("ExpandTabs(%q) -> %q, want %q", test.s, got, test.want)
		}
		if strings.ContainsRune(test.s, '\t') && Of(got)%TabWidth != 1 {
			t.Errorf("ExpandTabs(%q) -> %q, last rune not after a tab stop", test.s, got)
		}
	}
}
