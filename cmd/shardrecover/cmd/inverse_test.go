package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverse(t *testing.T) {
	tmp := t.TempDir()

	tcs := []struct {
		name      string
		args      []string
		expectOut string
		expectErr string
	}{
		{
			name:      "small prime",
			args:      []string{"3", "7"},
			expectOut: "5\n",
		},
		{
			name:      "negative input",
			args:      []string{"-3", "7"},
			expectOut: "2\n",
		},
		{
			name:      "modulus one",
			args:      []string{"5", "1"},
			expectOut: "0\n",
		},
		{
			name:      "default prime",
			args:      []string{"1"},
			expectOut: "1\n",
		},
		{
			name:      "default prime minus one is self inverse",
			args:      []string{"-1"},
			expectOut: "115792089237316195423570985008687907853269984665640564039457584007913129639746\n",
		},
		{
			name:      "not invertible",
			args:      []string{"6", "9"},
			expectErr: "no modular inverse exists",
		},
		{
			name:      "zero",
			args:      []string{"0", "7"},
			expectErr: "no modular inverse exists",
		},
		{
			name:      "non-numeric",
			args:      []string{"x", "7"},
			expectErr: "a must be a decimal integer, got(x)",
		},
		{
			name:      "non-numeric modulus",
			args:      []string{"3", "seven"},
			expectErr: "modulus must be a decimal integer, got(seven)",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"inverse", "--home", tmp, "--"}, tc.args...)
			stdout, _, err := execute(t, args...)
			if tc.expectErr != "" {
				require.EqualError(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectOut, stdout)
		})
	}
}
