package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf_CaseInsensitive(t *testing.T) {
	cases := map[StatusCategory][]string{
		CategoryResponding: {"responding", "Responding", "RESPONDING", " rEsPoNdInG "},
		CategoryAvailable:  {"available", "Available", "AVAILABLE"},
		CategoryBusy:       {"busy", "Busy", "BUSY"},
		CategoryNeutral:    {"", "idle", "offline", "respond"},
	}

	for want, statuses := range cases {
		for _, status := range statuses {
			assert.Equal(t, want, CategoryOf(status), status)
		}
	}
}

func TestStatusCategory_ColorIsStable(t *testing.T) {
	assert.Equal(t, CategoryOf("Responding").Color(), CategoryOf("RESPONDING").Color())
	assert.NotEqual(t, CategoryAvailable.Color(), CategoryBusy.Color())
}
