package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"İstanbul", "istanbul"},
		{"ISPARTA", "isparta"},
		{"Ataşehir", "atasehir"},
		{"ÇUKUROVA", "cukurova"},
		{"Güzelyalı", "guzelyali"},
		{"  Kadıköy_Moda-Cad., No:5 ", "kadikoy moda cad no:5"},
		{"a   b\t\nc", "a b c"},
		{"", ""},
		{nil, ""},
		{42, "42"},
		{2.5, "2 5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%v)", tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"İlkadım", "Atatürk Mahallesi", "ÇATI KATI", "3+1", "1.250.000",
		"  Şişli -- Mecidiyeköy  ", "Ğ_ğ,Ü.ü", "Bahçelievler Mh.",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestEqualsNormalized(t *testing.T) {
	assert.True(t, EqualsNormalized("İstanbul", "istanbul"))
	assert.True(t, EqualsNormalized("Ataşehir", "atasehir"))
	assert.True(t, EqualsNormalized("İLKADIM", "ilkadım"))
	assert.False(t, EqualsNormalized("Atakum", "İlkadım"))
	assert.False(t, EqualsNormalized("Atatürk Mahallesi", "Ataturk Mah"))
}

func TestNormalizeNeighborhood(t *testing.T) {
	assert.Equal(t, "ataturk", NormalizeNeighborhood("Atatürk Mahallesi"))
	assert.Equal(t, "ataturk", NormalizeNeighborhood("ataturk mah"))
	assert.Equal(t, "ataturk", NormalizeNeighborhood("Atatürk Mh."))
	assert.Equal(t, "mahmutbey", NormalizeNeighborhood("Mahmutbey"))
	assert.Equal(t, "", NormalizeNeighborhood(nil))
}

func TestIncludesNormalized(t *testing.T) {
	districts := []string{"İlkadım", "Atakum"}
	assert.True(t, IncludesNormalized(districts, "ilkadim", false))
	assert.False(t, IncludesNormalized(districts, "Canik", false))
	assert.False(t, IncludesNormalized(districts, "", false))

	hoods := []string{"Atatürk Mahallesi"}
	assert.True(t, IncludesNormalized(hoods, "Ataturk Mah", true))
	assert.False(t, IncludesNormalized(hoods, "Ataturk Mah", false))
}
