// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline against representative inputs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Tera Woh Pyar", "tera-woh-pyar"},
		{"accented", "Café Qawwali Nights", "cafe-qawwali-nights"},
		{"punctuation", "Guitar (At-Home) — Level 1!", "guitar-at-home-level-1"},
		{"extra_whitespace", "  Piano   Studio  ", "piano-studio"},
		{"already_slug", "nusrat-fateh-ali-khan", "nusrat-fateh-ali-khan"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
