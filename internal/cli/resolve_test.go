package cli

import (
	"testing"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	items := []models.User{
		{ID: "aa11-0000", Name: "A"},
		{ID: "aa22-0000", Name: "B"},
		{ID: "bb33-0000", Name: "C"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "position", ref: "2", want: "B"},
		{name: "full id", ref: "bb33-0000", want: "C"},
		{name: "unique prefix", ref: "aa1", want: "A"},
		{name: "ambiguous prefix", ref: "aa", wantErr: ErrAmbiguousRef},
		{name: "position out of range", ref: "4", wantErr: common.ErrNotFound},
		{name: "zero position", ref: "0", wantErr: common.ErrNotFound},
		{name: "unknown", ref: "zz", wantErr: common.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(items, tt.ref, userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890"))
	assert.Equal(t, "abc", shortID("abc"))
}
