package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAcceptsNames(t *testing.T) {
	name, ok := Clean("John Smith")
	assert.True(t, ok)
	assert.Equal(t, "John Smith", name)
}

func TestCleanNormalizes(t *testing.T) {
	name, ok := Clean("  jeff   epstein ")
	assert.True(t, ok)
	assert.Equal(t, "Jeff Epstein", name)
}

func TestCleanRejectsAllUpper(t *testing.T) {
	// 全大写且长度 > 4，OCR 页眉残留
	_, ok := Clean("HOUSE OVERSIGHT")
	assert.False(t, ok)
}

func TestCleanKeepsShortAllUpper(t *testing.T) {
	// 短全大写 token 是缩写而非页眉噪声，保留原样
	name, ok := Clean("FBI")
	assert.True(t, ok)
	assert.Equal(t, "FBI", name)

	name, ok = Clean("Teterboro, NJ")
	assert.True(t, ok)
	assert.Equal(t, "Teterboro, NJ", name)
}

func TestCleanRejectsLength(t *testing.T) {
	_, ok := Clean("ab")
	assert.False(t, ok)

	long := make([]byte, 61)
	for i := range long {
		long[i] = 'a'
	}
	_, ok = Clean(string(long))
	assert.False(t, ok)
}

func TestCleanRejectsStoplist(t *testing.T) {
	for _, word := range []string{"January", "Monday", "Exhibit", "Deposition", "The"} {
		_, ok := Clean(word)
		assert.False(t, ok, word)
	}
}

func TestCleanRejectsDigits(t *testing.T) {
	_, ok := Clean("Flight 1021A")
	assert.False(t, ok)

	// 不超过 3 个数字字符则保留
	name, ok := Clean("Area 51 Cafe")
	assert.True(t, ok)
	assert.Equal(t, "Area 51 Cafe", name)
}
