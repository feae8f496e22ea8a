package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name  string
		count int
		size  int
		want  int
	}{
		{"exact multiple", 100, 50, 2},
		{"remainder adds a page", 137, 50, 3},
		{"single partial page", 37, 50, 1},
		{"zero items means zero pages", 0, 50, 0},
		{"zero size disables paging", 137, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.count, tc.size))
		})
	}
}

func TestWindow(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		st        PageState
		wantStart int
		wantEnd   int
	}{
		{"first page", 137, PageState{Current: 1, Size: 50}, 0, 50},
		{"middle page", 137, PageState{Current: 2, Size: 50}, 50, 100},
		{"last partial page has 37 items", 137, PageState{Current: 3, Size: 50}, 100, 137},
		{"out of range yields empty window", 137, PageState{Current: 4, Size: 50}, 0, 0},
		{"zero size returns everything", 137, PageState{Current: 1, Size: 0}, 0, 137},
		{"empty set", 0, PageState{Current: 1, Size: 50}, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := Window(tc.count, tc.st)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
