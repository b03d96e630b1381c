package app

import (
	"testing"

	"github.com/jkbrsn/convacolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConvert(t *testing.T) {
	t.Parallel()

	t.Run("stores result", func(t *testing.T) {
		client := validatedClient(t, convacolor.RGB{R: 200, G: 100, B: 50}, Settings{})
		res := client.Result()
		require.NotNil(t, res)
		assert.Equal(t, "#C86432", res.Hex)
		assert.Equal(t, "S2050-Y80R", res.NCS.Code)
		assert.Equal(t, convacolor.ModeInteger, res.Mode)
	})

	t.Run("overwrites result", func(t *testing.T) {
		client := validatedClient(t, convacolor.RGB{R: 200, G: 100, B: 50}, Settings{})
		require.NoError(t, client.Convert(convacolor.RGB{R: 128, G: 128, B: 128}))
		assert.Equal(t, "S5000-N", client.Result().NCS.Code)
	})

	t.Run("fraction mode", func(t *testing.T) {
		client := validatedClient(t, convacolor.RGB{R: 229, G: 122, B: 36},
			Settings{Mode: convacolor.ModeFraction})
		assert.Equal(t, 0.84, client.Result().CMYK.Y)
		assert.Equal(t, 0.075, client.Result().HSV.H)
	})

	t.Run("requires validation", func(t *testing.T) {
		client := &Client{}
		assert.Error(t, client.Convert(convacolor.RGB{}))
		assert.Nil(t, client.Result())
	})

	t.Run("incomplete table", func(t *testing.T) {
		client := NewClient(convacolor.New(convacolor.WithTable(&convacolor.Table{})), Settings{})
		require.NoError(t, client.Validate())

		err := client.Convert(convacolor.RGB{R: 255, G: 0, B: 0})
		require.ErrorIs(t, err, convacolor.ErrNoCandidates)
		assert.Contains(t, err.Error(), "rgb(255, 0, 0)")

		// Grays never reach the table.
		require.NoError(t, client.Convert(convacolor.RGB{R: 128, G: 128, B: 128}))
		assert.Equal(t, "S5000-N", client.Result().NCS.Code)
	})
}
