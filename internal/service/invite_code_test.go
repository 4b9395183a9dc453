// internal/service/invite_code_test.go
package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteCodeFrom(t *testing.T) {
	t.Run("bytes above the rejection limit are skipped", func(t *testing.T) {
		// 252..255 fall outside the largest multiple of 36 and must be
		// discarded rather than folded back onto A-D.
		input := []byte{252, 253, 254, 255, 0, 1, 25, 26, 35, 36, 37, 251}

		code, err := inviteCodeFrom(bytes.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "ABZ09AB9", code)
	})

	t.Run("exhausted reader fails", func(t *testing.T) {
		_, err := inviteCodeFrom(bytes.NewReader([]byte{0, 1, 2}))
		assert.Error(t, err)
	})
}
