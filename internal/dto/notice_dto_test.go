package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	require.Equal(t, "General", TitleCase("general"))
	require.Equal(t, "Hostel Maintenance", TitleCase("  hostel maintenance "))
	require.Equal(t, "All", TitleCase("All"))
	require.Empty(t, TitleCase("   "))
}

func TestTitleCaseUppercasesMultibyteFirstRune(t *testing.T) {
	require.Equal(t, "École Notice", TitleCase("école notice"))
	require.Equal(t, "Über Alles", TitleCase("über alles"))
}
