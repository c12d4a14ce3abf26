package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	set := New()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"de", true},
		{"que", true},
		{"para", true},
		{"produto", false},
		{"banana", false},
		{"atendimento", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Contains(tt.word))
		})
	}
}

func TestExtraWords(t *testing.T) {
	set := New(" Loja ", "", "app")

	assert.True(t, set.Contains("loja"))
	assert.True(t, set.Contains("app"))
	assert.False(t, set.Contains("banana"))
	assert.True(t, set.Contains("the"), "extras are added on top of the language lists")
}

func TestSetIsSharedSafely(t *testing.T) {
	set := New("extra")
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			done <- set.Contains("the") && set.Contains("extra") && !set.Contains("banana")
		}()
	}
	for i := 0; i < 8; i++ {
		assert.True(t, <-done)
	}
}
