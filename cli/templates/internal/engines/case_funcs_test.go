package engines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"my", "HTTP", "Server", "v2"}, splitWords("myHTTPServer_v2"))
	assert.Equal(t, []string{"my", "server"}, splitWords("my--server"))
	assert.Equal(t, []string{"server2"}, splitWords("server2"))
	assert.Nil(t, splitWords("---"))
}

func TestTransforms(t *testing.T) {
	cases := []struct {
		transform string
		in        string
		expected  string
	}{
		{"camelCase", "my-cool-server", "myCoolServer"},
		{"pascalCase", "my-cool-server", "MyCoolServer"},
		{"properCase", "my cool server", "MyCoolServer"},
		{"snakeCase", "myCoolServer", "my_cool_server"},
		{"dashCase", "My Cool Server", "my-cool-server"},
		{"dashCase", "my--server", "my-server"},
		{"dashCase", "server2", "server2"},
		{"kebabCase", "myCoolServer", "my-cool-server"},
		{"kabobCase", "my_cool_server", "my-cool-server"},
		{"dotCase", "my-cool-server", "my.cool.server"},
		{"pathCase", "my-cool-server", "my/cool/server"},
		{"constantCase", "my-cool-server", "MY_COOL_SERVER"},
		{"lowerCase", "My-Server", "my-server"},
		{"upperCase", "my-server", "MY-SERVER"},
		{"titleCase", "my-cool-server", "My Cool Server"},
		{"sentenceCase", "my-cool-server", "My cool server"},
	}
	for _, tc := range cases {
		t.Run(tc.transform+"/"+tc.in, func(t *testing.T) {
			actual, err := Transform(tc.transform, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := Transform("reverse", "abc")
	require.EqualError(t, err, `function "reverse" not defined`)
}
