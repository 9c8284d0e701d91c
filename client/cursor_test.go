package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cursor_StartsBeforeEverything(t *testing.T) {
	req := require.New(t)

	req.Equal(-1, NewCursor().Current())
}

func Test_Cursor_AdvanceTo_IsMonotonic(t *testing.T) {
	req := require.New(t)
	cursor := NewCursor()

	cursor.AdvanceTo(4)
	req.Equal(4, cursor.Current())

	// Going backward is ignored, a replay must not rewind the poller.
	cursor.AdvanceTo(2)
	req.Equal(4, cursor.Current())

	cursor.AdvanceTo(9)
	req.Equal(9, cursor.Current())
}
