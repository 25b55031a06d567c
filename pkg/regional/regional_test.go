package regional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/region"
	"github.com/vivahlabs/biodatakit/pkg/regional"
)

func hinduProfile() *profile.Profile {
	return &profile.Profile{
		Personal: profile.PersonalInfo{
			Name:     "Asha Verma",
			Religion: "hindu",
		},
		Lifestyle: profile.Lifestyle{Diet: profile.DietVegetarian},
	}
}

func fieldsOf(violations []regional.Violation) []string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestCheckCaste(t *testing.T) {
	t.Parallel()

	reg := region.Load()

	t.Run("north indian hindu without caste fails", func(t *testing.T) {
		res := regional.Check(reg, hinduProfile(), region.NorthIndian)
		assert.Contains(t, fieldsOf(res.Errors), "personal.caste")
	})

	t.Run("south indian hindu without caste fails", func(t *testing.T) {
		res := regional.Check(reg, hinduProfile(), region.SouthIndian)
		assert.Contains(t, fieldsOf(res.Errors), "personal.caste")
	})

	t.Run("caste present satisfies the rule", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Caste = "Brahmin"
		res := regional.Check(reg, p, region.NorthIndian)
		assert.NotContains(t, fieldsOf(res.Errors), "personal.caste")
	})

	t.Run("non-hindu profiles are exempt", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Religion = "christian"
		res := regional.Check(reg, p, region.NorthIndian)
		assert.NotContains(t, fieldsOf(res.Errors), "personal.caste")
	})

	t.Run("western region does not require caste", func(t *testing.T) {
		res := regional.Check(reg, hinduProfile(), region.Western)
		assert.NotContains(t, fieldsOf(res.Errors), "personal.caste")
	})
}

func TestCheckHoroscope(t *testing.T) {
	t.Parallel()

	reg := region.Load()

	t.Run("north indian horoscope requires manglik status", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Caste = "Brahmin"
		p.Horoscope.HasHoroscope = true
		res := regional.Check(reg, p, region.NorthIndian)
		require.Contains(t, fieldsOf(res.Errors), "horoscope.manglik")

		p.Horoscope.Manglik = "no"
		res = regional.Check(reg, p, region.NorthIndian)
		assert.NotContains(t, fieldsOf(res.Errors), "horoscope.manglik")
	})

	t.Run("south indian horoscope requires nakshatra", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Caste = "Iyer"
		p.Horoscope.HasHoroscope = true
		res := regional.Check(reg, p, region.SouthIndian)
		require.Contains(t, fieldsOf(res.Errors), "horoscope.nakshatra")

		p.Horoscope.Nakshatra = "rohini"
		res = regional.Check(reg, p, region.SouthIndian)
		assert.Empty(t, res.Errors)
	})

	t.Run("no horoscope, no horoscope requirements", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Caste = "Brahmin"
		res := regional.Check(reg, p, region.NorthIndian)
		assert.NotContains(t, fieldsOf(res.Errors), "horoscope.manglik")
	})
}

func TestCheckDiet(t *testing.T) {
	t.Parallel()

	reg := region.Load()

	t.Run("muslim profiles need an approved diet", func(t *testing.T) {
		p := hinduProfile()
		p.Personal.Religion = "muslim"
		p.Lifestyle.Diet = profile.DietVegetarian
		res := regional.Check(reg, p, region.Muslim)
		require.Contains(t, fieldsOf(res.Errors), "lifestyle.diet")

		p.Lifestyle.Diet = profile.DietHalal
		res = regional.Check(reg, p, region.Muslim)
		assert.NotContains(t, fieldsOf(res.Errors), "lifestyle.diet")
	})

	t.Run("restrictive diet in a western profile is only a warning", func(t *testing.T) {
		p := hinduProfile()
		p.Lifestyle.Diet = profile.DietJain
		res := regional.Check(reg, p, region.Western)
		assert.Empty(t, res.Errors)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "jain")
	})
}

func TestCheckDefault(t *testing.T) {
	t.Parallel()

	reg := region.Load()

	t.Run("default region has no requirements", func(t *testing.T) {
		res := regional.Check(reg, hinduProfile(), region.Default)
		assert.True(t, res.IsEmpty())
	})

	t.Run("unknown region degrades to default", func(t *testing.T) {
		res := regional.Check(reg, hinduProfile(), region.Key("atlantis"))
		assert.True(t, res.IsEmpty())
	})
}

func TestCheckRequiredList(t *testing.T) {
	t.Parallel()

	doc := []byte("default: {}\ncoastal:\n  required: [personal.caste, personal.gotra]\n")
	reg, err := region.Parse(doc)
	require.NoError(t, err)

	p := hinduProfile()
	res := regional.Check(reg, p, region.Key("coastal"))
	assert.ElementsMatch(t, []string{"personal.caste", "personal.gotra"}, fieldsOf(res.Errors))

	p.Personal.Caste = "Brahmin"
	p.Personal.Gotra = "Kashyap"
	res = regional.Check(reg, p, region.Key("coastal"))
	assert.Empty(t, res.Errors)
}
