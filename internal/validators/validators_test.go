package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid email", "joao@email.com", true},
		{"missing at", "joao.email.com", false},
		{"missing dot", "joao@emailcom", false},
		{"empty", "", false},
		{"only spaces", "   ", false},
		{"at and dot present", "a@b.c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailValid(tt.email))
		})
	}
}

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"masked mobile", "(11) 99999-9999", true},
		{"bare ten digits", "1199999999", true},
		{"nine digits", "119999999", false},
		{"letters only", "telefone", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhoneValid(tt.phone))
		})
	}
}

func TestDigitCount(t *testing.T) {
	assert.Equal(t, 11, DigitCount("(11) 99999-9999"))
	assert.Equal(t, 0, DigitCount("abc"))
}
