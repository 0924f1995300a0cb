package deck

import (
	"strings"
	"testing"

	utils "github.com/minaorangina/splendor/internal"
	"github.com/minaorangina/splendor/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func rec(v ...interface{}) []interface{} { return v }

func TestCardFromRecord(t *testing.T) {
	t.Run("builds a card from a flat record", func(t *testing.T) {
		card, err := FromRecord(rec("e", 1, 1, 2, 0, 2, 0, 3, 1))
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, card.Category(), Emerald)
		utils.AssertEqual(t, card.Points(), 1)
		utils.AssertEqual(t, card.Tier(), 2)
		utils.AssertEqual(t, card.Cost(), Cost{0, 2, 0, 3, 1})
		utils.AssertEqual(t, card.ColorID(), 3)
		assert.False(t, card.IsAristocrat())
	})

	t.Run("accepts whole-number floats from decoded JSON", func(t *testing.T) {
		card, err := FromRecord(rec("x", 0.0, 3.0, 0.0, 4.0, 4.0, 0.0, 0.0, 0.0))
		utils.AssertNoError(t, err)
		assert.True(t, card.IsAristocrat())
		utils.AssertEqual(t, card.Points(), 3)
	})

	cases := []struct {
		name   string
		record []interface{}
	}{
		{"too short", rec("r", 1, 0, 1)},
		{"too long", rec("r", 1, 0, 1, 0, 0, 0, 0, 0, 0)},
		{"numeric category", rec(2, 1, 0, 1, 0, 0, 0, 0, 0)},
		{"long category code", rec("rd", 1, 0, 1, 0, 0, 0, 0, 0)},
		{"unknown category code", rec("b", 1, 0, 1, 0, 0, 0, 0, 0)},
		{"string where cost expected", rec("r", 1, 0, 1, 0, "a", 0, 0, 0)},
		{"fractional points", rec("r", 1, 0.5, 1, 0, 0, 0, 0, 0)},
		{"negative cost", rec("r", 1, 0, 1, 0, -1, 0, 0, 0)},
		{"tier out of range", rec("r", 1, 0, 4, 0, 0, 0, 0, 0)},
		{"aristocrat outside tier 0", rec("x", 0, 3, 1, 0, 0, 0, 0, 0)},
		{"gem card in tier 0", rec("s", 1, 0, 0, 0, 0, 0, 0, 0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := FromRecord(c.record)
			utils.AssertErrorKind(t, err, protocol.InvalidArgument)
		})
	}
}

func TestCardFromFields(t *testing.T) {
	t.Run("builds a card from named fields", func(t *testing.T) {
		card, err := FromFields(Fields{
			Category: strPtr("o"),
			Tier:     intPtr(3),
			Points:   intPtr(4),
			Cost:     []int{7, 0, 0, 0, 0},
		})
		utils.AssertNoError(t, err)

		want, err := New(Onyx, 3, 4, Cost{7, 0, 0, 0, 0})
		require.NoError(t, err)
		assert.True(t, card.Equal(want))
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := FromFields(Fields{Category: strPtr("o"), Tier: intPtr(3), Cost: []int{1, 1, 1, 1, 1}})
		utils.AssertErrorKind(t, err, protocol.InvalidArgument)
	})

	t.Run("wrong cost length", func(t *testing.T) {
		_, err := FromFields(Fields{Category: strPtr("o"), Tier: intPtr(1), Points: intPtr(0), Cost: []int{1, 1}})
		utils.AssertErrorKind(t, err, protocol.InvalidArgument)
	})

	t.Run("invalid colour code", func(t *testing.T) {
		_, err := FromFields(Fields{Category: strPtr("b"), Tier: intPtr(1), Points: intPtr(0), Cost: []int{1, 1, 1, 1, 1}})
		utils.AssertErrorKind(t, err, protocol.InvalidArgument)
	})
}

func TestCardEquality(t *testing.T) {
	a, _ := New(Ruby, 1, 0, Cost{0, 1, 1, 1, 1})
	b, _ := New(Ruby, 1, 0, Cost{0, 1, 1, 1, 1})
	c, _ := New(Ruby, 1, 1, Cost{0, 1, 1, 1, 1})

	t.Run("value equality", func(t *testing.T) {
		assert.True(t, a.Equal(b))
		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Equal(nil))
	})

	t.Run("dynamic comparison", func(t *testing.T) {
		eq, err := a.EqualTo(b)
		utils.AssertNoError(t, err)
		assert.True(t, eq)

		eq, err = a.EqualTo(nil)
		utils.AssertNoError(t, err)
		assert.False(t, eq)

		var none *Card
		eq, err = a.EqualTo(none)
		utils.AssertNoError(t, err)
		assert.False(t, eq)

		_, err = a.EqualTo(42)
		utils.AssertErrorKind(t, err, protocol.TypeMismatch)
	})
}

func TestCardBonusColor(t *testing.T) {
	gem, _ := New(Sapphire, 2, 2, Cost{})
	noble, _ := New(Aristocrat, 0, 3, Cost{3, 3, 3, 0, 0})

	color, ok := gem.BonusColor()
	assert.True(t, ok)
	utils.AssertEqual(t, color, Sapphire)

	_, ok = noble.BonusColor()
	assert.False(t, ok)
}

func TestColor(t *testing.T) {
	for i, code := range []string{"r", "d", "o", "e", "s", "x"} {
		color, err := ColorFromCode(code)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, int(color), i)
		utils.AssertEqual(t, color.Code(), code)
	}

	assert.True(t, Emerald.IsGem())
	assert.False(t, Gold.IsGem())
	assert.False(t, Color(6).Valid())
	assert.Len(t, strings.TrimSpace(Onyx.ShortName()), 4)
}

func TestTokens(t *testing.T) {
	a := Tokens{1, 2, 3, 0, 0, 1}
	b := Tokens{1, 0, 1, 0, 0, 1}

	utils.AssertEqual(t, a.Add(b), Tokens{2, 2, 4, 0, 0, 2})
	utils.AssertEqual(t, a.Sub(b), Tokens{0, 2, 2, 0, 0, 0})
	utils.AssertEqual(t, a.Total(), 7)
	utils.AssertEqual(t, Uniform(4, 5), Tokens{4, 4, 4, 4, 4, 5})
}
