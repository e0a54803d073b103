package passhash_test

import (
	"testing"

	"github.com/limbo/habithero/pkg/passhash"
	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, passhash.Hash("secret_pass"), passhash.Hash("secret_pass"))
	})
	t.Run("known digest", func(t *testing.T) {
		assert.Equal(t,
			"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
			passhash.Hash("password"),
		)
	})
	t.Run("different inputs differ", func(t *testing.T) {
		assert.NotEqual(t, passhash.Hash("password"), passhash.Hash("password1"))
	})
}
