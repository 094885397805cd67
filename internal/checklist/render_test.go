package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjulian5/integrate/internal/model"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		forest   model.Forest
		expected string
	}{
		{
			name:     "empty forest renders nothing",
			forest:   model.Forest{},
			expected: "",
		},
		{
			name: "top-level with nested child",
			forest: model.Forest{
				{
					Number:    model.Resolved(10),
					Author:    "alice",
					MergeDate: "2024-01-01",
					Children: []model.PRNode{
						{Number: model.Resolved(11), Author: "bob", MergeDate: "2024-01-02"},
					},
				},
			},
			expected: "- [ ] #10 @alice 2024-01-01\n  - [ ] #11 @bob 2024-01-02\n",
		},
		{
			name: "order is preserved",
			forest: model.Forest{
				{Number: model.Resolved(30), Author: "carol", MergeDate: "2024-01-03T10:00:00+09:00"},
				{
					Number:    model.Resolved(5),
					Author:    "dave",
					MergeDate: "2024-01-01T10:00:00+09:00",
					Children: []model.PRNode{
						{Number: model.Resolved(7), Author: "erin", MergeDate: "2024-01-02T10:00:00+09:00"},
						{Number: model.Resolved(6), Author: "frank", MergeDate: "2024-01-01T09:00:00+09:00"},
					},
				},
			},
			expected: "- [ ] #30 @carol 2024-01-03T10:00:00+09:00\n" +
				"- [ ] #5 @dave 2024-01-01T10:00:00+09:00\n" +
				"  - [ ] #7 @erin 2024-01-02T10:00:00+09:00\n" +
				"  - [ ] #6 @frank 2024-01-01T09:00:00+09:00\n",
		},
		{
			name: "author not yet enriched",
			forest: model.Forest{
				{Number: model.Resolved(42), MergeDate: "2024-01-01"},
			},
			expected: "- [ ] #42 @ 2024-01-01\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.forest))
			// rendering is deterministic
			assert.Equal(t, Render(tt.forest), Render(tt.forest))
		})
	}
}
