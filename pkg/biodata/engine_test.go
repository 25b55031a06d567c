package biodata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahlabs/biodatakit/pkg/biodata"
	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/region"
	"github.com/vivahlabs/biodatakit/pkg/schema"
)

func validProfile() *profile.Profile {
	return &profile.Profile{
		Personal: profile.PersonalInfo{
			Name:         "Asha Verma",
			Age:          28,
			Gender:       profile.GenderFemale,
			DateOfBirth:  "1997-04-12",
			Religion:     "hindu",
			MotherTongue: "hindi",
		},
		Contact: profile.ContactInfo{
			Email:   "asha@example.com",
			Phone:   "9876543210",
			City:    "Pune",
			Country: "India",
		},
		Lifestyle: profile.Lifestyle{
			Diet:     profile.DietVegetarian,
			Smoking:  profile.HabitNever,
			Drinking: profile.HabitNever,
		},
		Education: []profile.Education{
			{Level: profile.EducationBachelors, Degree: "B.E.", Percentage: 72},
		},
	}
}

func errorFields(res biodata.Result) []string {
	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateDefaultRegion(t *testing.T) {
	t.Parallel()

	engine := biodata.New()

	t.Run("schema-clean profile is valid", func(t *testing.T) {
		res, err := engine.Validate(validProfile(), region.Default)
		require.NoError(t, err)
		assert.True(t, res.IsValid, "unexpected errors: %v", res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("structural and cross-field violations are merged", func(t *testing.T) {
		p := validProfile()
		p.Personal.Age = 17
		p.Family.Brothers = 1
		p.Family.MarriedBrothers = 2

		res, err := engine.Validate(p, region.Default)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Contains(t, errorFields(res), "personal.age")
		assert.Contains(t, errorFields(res), "family.married_brothers")
	})

	t.Run("horoscope without birth time fails in any region", func(t *testing.T) {
		for _, key := range region.Keys() {
			p := validProfile()
			p.Personal.Caste = "Brahmin"
			p.Personal.Gotra = "Kashyap"
			p.Horoscope.HasHoroscope = true
			p.Horoscope.BirthPlace = "Pune"
			p.Horoscope.Manglik = "no"
			p.Horoscope.Nakshatra = "rohini"
			if key == region.Muslim {
				p.Personal.Religion = "muslim"
				p.Personal.Sect = "sunni"
				p.Lifestyle.Diet = profile.DietHalal
			}

			res, err := engine.Validate(p, key)
			require.NoError(t, err)
			assert.False(t, res.IsValid, "region %s", key)
			assert.Contains(t, errorFields(res), "horoscope.birth_time", "region %s", key)
		}
	})
}

func TestValidateRegionalRules(t *testing.T) {
	t.Parallel()

	engine := biodata.New()

	t.Run("north indian hindu without caste is invalid", func(t *testing.T) {
		p := validProfile()
		p.Personal.Gotra = "Kashyap"

		res, err := engine.Validate(p, region.NorthIndian)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Contains(t, errorFields(res), "personal.caste")
	})

	t.Run("same profile is valid under western rules", func(t *testing.T) {
		res, err := engine.Validate(validProfile(), region.Western)
		require.NoError(t, err)
		assert.True(t, res.IsValid, "unexpected errors: %v", res.Errors)
	})

	t.Run("complete north indian profile is valid", func(t *testing.T) {
		p := validProfile()
		p.Personal.Caste = "Brahmin"
		p.Personal.Gotra = "Kashyap"
		p.Contact.PostalCode = "411001"

		res, err := engine.Validate(p, region.NorthIndian)
		require.NoError(t, err)
		assert.True(t, res.IsValid, "unexpected errors: %v", res.Errors)
	})

	t.Run("muslim region requires sect via the composed schema", func(t *testing.T) {
		p := validProfile()
		p.Personal.Religion = "muslim"
		p.Lifestyle.Diet = profile.DietHalal

		res, err := engine.Validate(p, region.Muslim)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Contains(t, errorFields(res), "personal.sect")
	})

	t.Run("western restrictive diet is a warning not an error", func(t *testing.T) {
		p := validProfile()
		p.Lifestyle.Diet = profile.DietJain

		res, err := engine.Validate(p, region.Western)
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "jain")
	})

	t.Run("unknown region degrades to default rules", func(t *testing.T) {
		res, err := engine.Validate(validProfile(), region.Key("atlantis"))
		require.NoError(t, err)
		assert.True(t, res.IsValid)
	})

	t.Run("contextual phone violation surfaces with its field", func(t *testing.T) {
		p := validProfile()
		p.Personal.Caste = "Brahmin"
		p.Personal.Gotra = "Kashyap"
		p.Contact.Phone = "1234567890"

		res, err := engine.Validate(p, region.NorthIndian)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Contains(t, errorFields(res), "contact.phone")
	})
}

func TestValidateNilProfile(t *testing.T) {
	t.Parallel()

	engine := biodata.New()
	_, err := engine.Validate(nil, region.Default)
	assert.ErrorIs(t, err, biodata.ErrNilProfile)
}

func TestComposeSchema(t *testing.T) {
	t.Parallel()

	engine := biodata.New()

	t.Run("idempotent per region", func(t *testing.T) {
		for _, key := range region.Keys() {
			assert.Equal(t, engine.ComposeSchema(key), engine.ComposeSchema(key), "region %s", key)
		}
	})

	t.Run("default region equals the base schema", func(t *testing.T) {
		assert.Equal(t, schema.Base(), engine.ComposeSchema(region.Default))
	})

	t.Run("regional fragments extend the base", func(t *testing.T) {
		composed := engine.ComposeSchema(region.SouthIndian)
		_, ok := composed.Get("horoscope.nakshatra")
		assert.True(t, ok)
		_, ok = schema.Base().Get("horoscope.nakshatra")
		assert.False(t, ok)
	})
}

func TestAssessCompatibility(t *testing.T) {
	t.Parallel()

	engine := biodata.New()

	t.Run("delegates to the assessor", func(t *testing.T) {
		a := validProfile()
		b := validProfile()
		b.Lifestyle.Diet = profile.DietNonVegetarian

		verdict, err := engine.AssessCompatibility(a, b)
		require.NoError(t, err)
		assert.False(t, verdict.IsCompatible)
	})

	t.Run("nil profile is a caller error", func(t *testing.T) {
		_, err := engine.AssessCompatibility(validProfile(), nil)
		assert.ErrorIs(t, err, biodata.ErrNilProfile)
	})
}

func TestEngineWithCustomRegistry(t *testing.T) {
	t.Parallel()

	doc := []byte("default: {}\ncoastal:\n  required: [personal.caste]\n")
	reg, err := region.Parse(doc)
	require.NoError(t, err)

	engine := biodata.New(biodata.WithRegistry(reg))
	res, err := engine.Validate(validProfile(), region.Key("coastal"))
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Contains(t, errorFields(res), "personal.caste")
}
