package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripImports(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			"with semicolon",
			"import Figure from \"../Figure.astro\";\n<p>x</p>\n",
			"<p>x</p>\n",
		},
		{
			"without semicolon",
			"import Figure from \"../Figure.astro\"\n<p>x</p>\n",
			"<p>x</p>\n",
		},
		{
			"trailing blank lines",
			"import Figure from \"../Figure.astro\";\n\n\n# Title\n",
			"# Title\n",
		},
		{
			"surrounding lines untouched",
			"line one\nimport Figure from \"@/components/Figure.astro\";\nline two\n",
			"line one\nline two\n",
		},
		{
			"other imports kept",
			"import Chart from \"./Chart.astro\";\nimport Figure from \"./Figure.astro\";\n",
			"import Chart from \"./Chart.astro\";\n",
		},
		{
			"several",
			"import Figure from \"a\";\ntext\nimport Figure from \"b\";\n",
			"text\n",
		},
		{
			"single quotes are not matched",
			"import Figure from '../Figure.astro';\n",
			"import Figure from '../Figure.astro';\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, StripImports(test.text, "Figure"))
		})
	}
}
