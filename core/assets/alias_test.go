package assets_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/assetkit/core/assets"
)

func TestCanonicalAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyphens_become_underscores",
			input:    "/my-file-name.js",
			expected: "/my_file_name.js",
		},
		{
			name:     "underscores_untouched",
			input:    "/my_file.js",
			expected: "/my_file.js",
		},
		{
			name:     "mixed_separators",
			input:    "/a-b_c-d",
			expected: "/a_b_c_d",
		},
		{
			name:     "no_separators",
			input:    "/app.js",
			expected: "/app.js",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, assets.CanonicalAlias(tt.input))
		})
	}
}

func TestCanonicalAlias_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"/my-file_name.js", "/a-b-c", "/plain.css", ""} {
		once := assets.CanonicalAlias(input)
		assert.Equal(t, once, assets.CanonicalAlias(once))
	}
}

func TestExpandAliases(t *testing.T) {
	t.Parallel()

	t.Run("no_toggle_positions_returns_singleton", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"/app.js"}, assets.ExpandAliases("/app.js"))
	})

	t.Run("two_toggles_give_four_candidates", func(t *testing.T) {
		t.Parallel()

		expected := []string{
			"/my-file-name",
			"/my-file_name",
			"/my_file-name",
			"/my_file_name",
		}
		assert.Equal(t, expected, assets.ExpandAliases("/my-file_name"))
	})

	t.Run("result_is_sorted_and_duplicate_free", func(t *testing.T) {
		t.Parallel()

		result := assets.ExpandAliases("/a-b_c-d.js")
		require.Len(t, result, 8) // 2^3 unique combinations, original among them

		assert.True(t, slices.IsSorted(result))
		seen := make(map[string]struct{}, len(result))
		for _, candidate := range result {
			_, dup := seen[candidate]
			assert.False(t, dup, "duplicate candidate %q", candidate)
			seen[candidate] = struct{}{}
		}
	})

	t.Run("original_always_included", func(t *testing.T) {
		t.Parallel()

		result := assets.ExpandAliases("/my-file_name")
		assert.Contains(t, result, "/my-file_name")
	})

	t.Run("toggle_cap_disables_expansion", func(t *testing.T) {
		t.Parallel()

		// 21 toggle positions exceeds DefaultMaxToggles, so expansion is
		// refused outright and only the original spelling remains.
		path := "/" + strings.Repeat("a-", 21) + "x.js"
		assert.Equal(t, []string{path}, assets.ExpandAliases(path))
	})
}
