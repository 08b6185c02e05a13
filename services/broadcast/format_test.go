package broadcast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIsPure(t *testing.T) {
	require.Equal(t, Format(testHadith), Format(testHadith))
}

func TestFormatIncludesAllFields(t *testing.T) {
	msg := Format(testHadith)

	require.Contains(t, msg, "Salaam, from Hadith Inc.")
	require.Contains(t, msg, "<i>The reward of deeds depends upon the intentions.</i>")
	require.Contains(t, msg, testHadith.Urdu)
	require.Contains(t, msg, "Narrated 'Umar bin Al-Khattab:")
	require.Contains(t, msg, "Sahih Bukhari, Hadith No. 42")
	require.Contains(t, msg, "Revelation (Vol. 1)")
	require.Contains(t, msg, "remember me in your prayers")
}
