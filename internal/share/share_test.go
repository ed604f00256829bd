package share

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocal_AlwaysUnavailable(t *testing.T) {
	_, err := Local{}.Share(context.Background(), "/tmp/x.csv", "text/csv")
	require.ErrorIs(t, err, ErrSharingUnavailable)
}
