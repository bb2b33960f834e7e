package stringkit_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/tablekit/pkg/stringkit"
)

func ExampleEscapeQ() {
	fmt.Println(stringkit.EscapeQ("line\nbreak"))
	// Output: "line\nbreak"
}

func TestEscapeQ(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		assert.Equal(t, `"hello"`, stringkit.EscapeQ("hello"))
	})
	t.Run("quotes and backslashes", func(t *testing.T) {
		assert.Equal(t, `"say \"hi\" \\ bye"`, stringkit.EscapeQ(`say "hi" \ bye`))
	})
	t.Run("control characters", func(t *testing.T) {
		assert.Equal(t, `"a\nb\tc\rd"`, stringkit.EscapeQ("a\nb\tc\rd"))
		assert.Equal(t, `"\x00\x1F\x7F"`, stringkit.EscapeQ("\x00\x1f\x7f"))
	})
	t.Run("multi byte runes pass through", func(t *testing.T) {
		assert.Equal(t, `"héllo 世界"`, stringkit.EscapeQ("héllo 世界"))
	})
	t.Run("invalid utf8 bytes are hex escaped", func(t *testing.T) {
		assert.Equal(t, `"a\xFFb"`, stringkit.EscapeQ("a\xffb"))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, `""`, stringkit.EscapeQ(""))
	})
}

func TestMaybeQuote(t *testing.T) {
	t.Run("plain word stays as is", func(t *testing.T) {
		assert.Equal(t, "word", stringkit.MaybeQuote("word"))
	})
	t.Run("whitespace forces quoting", func(t *testing.T) {
		assert.Equal(t, `"two words"`, stringkit.MaybeQuote("two words"))
	})
	t.Run("quotes force quoting", func(t *testing.T) {
		assert.Equal(t, `"it's"`, stringkit.MaybeQuote("it's"))
	})
	t.Run("control characters force quoting", func(t *testing.T) {
		assert.Equal(t, `"a\nb"`, stringkit.MaybeQuote("a\nb"))
	})
	t.Run("empty is quoted", func(t *testing.T) {
		assert.Equal(t, `""`, stringkit.MaybeQuote(""))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("short input stays as is", func(t *testing.T) {
		assert.Equal(t, "abc", stringkit.Truncate("abc", 10, "..."))
	})
	t.Run("long input is cut with ellipsis", func(t *testing.T) {
		assert.Equal(t, "abcd...", stringkit.Truncate("abcdefghij", 7, "..."))
	})
	t.Run("cut never splits an utf8 sequence", func(t *testing.T) {
		got := stringkit.Truncate("aé世界", 5, ".")
		for _, r := range got {
			assert.True(t, r != '�')
		}
	})
	t.Run("max smaller than the ellipsis", func(t *testing.T) {
		assert.Equal(t, "...", stringkit.Truncate("abcdef", 2, "..."))
	})
}
