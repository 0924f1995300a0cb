package deck

import (
	"fmt"
	"math"

	"github.com/minaorangina/splendor/protocol"
)

// RecordLen is the length of a flat catalog record:
// [code, buyable, points, tier, c0, c1, c2, c3, c4]
const RecordLen = 9

// Card is a development card or an aristocrat. Cards are immutable once built.
type Card struct {
	category Color
	tier     int
	points   int
	cost     Cost
}

// Fields holds the discrete named fields of a card. Nil fields are missing.
type Fields struct {
	Category *string `mapstructure:"category"`
	Tier     *int    `mapstructure:"tier"`
	Points   *int    `mapstructure:"points"`
	Cost     []int   `mapstructure:"cost"`
}

type cardValidator func(*Card) error

func validateTier(c *Card) error {
	if c.tier < 0 || c.tier > 3 {
		return protocol.Errorf(protocol.InvalidArgument, "tier %d out of range 0-3", c.tier)
	}
	if (c.category == Aristocrat) != (c.tier == 0) {
		return protocol.Errorf(protocol.InvalidArgument, "only aristocrats sit in tier 0, got %s in tier %d", c.category, c.tier)
	}
	return nil
}

func validatePoints(c *Card) error {
	if c.points < 0 {
		return protocol.Errorf(protocol.InvalidArgument, "points can't be negative, got %d", c.points)
	}
	return nil
}

func validateCost(c *Card) error {
	for i, n := range c.cost {
		if n < 0 {
			return protocol.Errorf(protocol.InvalidArgument, "negative %s cost %d", Color(i), n)
		}
	}
	return nil
}

// New constructs a card from typed values
func New(category Color, tier, points int, cost Cost) (*Card, error) {
	if !category.Valid() {
		return nil, protocol.Errorf(protocol.InvalidArgument, "unknown category %d", category)
	}
	c := &Card{category: category, tier: tier, points: points, cost: cost}

	validators := []cardValidator{
		validateTier,
		validatePoints,
		validateCost,
	}
	for _, v := range validators {
		if err := v(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FromFields constructs a card from discrete named fields
func FromFields(f Fields) (*Card, error) {
	if f.Category == nil || f.Tier == nil || f.Points == nil || f.Cost == nil {
		return nil, protocol.Errorf(protocol.InvalidArgument, "category, tier, points and cost are all required")
	}
	if len(f.Cost) != NumGems {
		return nil, protocol.Errorf(protocol.InvalidArgument, "cost has to have exactly %d values, got %d", NumGems, len(f.Cost))
	}
	category, err := ColorFromCode(*f.Category)
	if err != nil {
		return nil, err
	}

	var cost Cost
	copy(cost[:], f.Cost)

	return New(category, *f.Tier, *f.Points, cost)
}

// FromRecord constructs a card from a flat catalog record.
// The second field only marks buyable cards and is not kept.
func FromRecord(record []interface{}) (*Card, error) {
	if len(record) != RecordLen {
		return nil, protocol.Errorf(protocol.InvalidArgument, "record has to be exactly %d elements long, got %d", RecordLen, len(record))
	}

	code, ok := record[0].(string)
	if !ok {
		return nil, protocol.Errorf(protocol.InvalidArgument, "improper colour code type %T", record[0])
	}
	if len(code) != 1 {
		return nil, protocol.Errorf(protocol.InvalidArgument, "colour code has exactly one character, got %q", code)
	}
	category, err := ColorFromCode(code)
	if err != nil {
		return nil, err
	}

	nums := make([]int, 0, RecordLen-1)
	for i, v := range record[1:] {
		n, ok := toInt(v)
		if !ok {
			return nil, protocol.Errorf(protocol.InvalidArgument, "record field %d should be an integer, got %v", i+1, v)
		}
		nums = append(nums, n)
	}

	var cost Cost
	copy(cost[:], nums[3:])

	return New(category, nums[2], nums[1], cost)
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func (c *Card) Category() Color { return c.category }
func (c *Card) Tier() int       { return c.tier }
func (c *Card) Points() int     { return c.points }
func (c *Card) Cost() Cost      { return c.cost }

// ColorID is the index of the card's category
func (c *Card) ColorID() int { return int(c.category) }

func (c *Card) IsAristocrat() bool { return c.category == Aristocrat }

// BonusColor is the colour this card adds to its owner's buying power.
// Aristocrats add nothing.
func (c *Card) BonusColor() (Color, bool) {
	if c.IsAristocrat() {
		return 0, false
	}
	return c.category, true
}

// Equal compares by value. A nil card never equals anything.
func (c *Card) Equal(o *Card) bool {
	if c == nil || o == nil {
		return false
	}
	if c == o {
		return true
	}
	return c.category == o.category && c.tier == o.tier && c.points == o.points && c.cost == o.cost
}

// EqualTo compares c with a value of unknown type
func (c *Card) EqualTo(v interface{}) (bool, error) {
	switch o := v.(type) {
	case nil:
		return false, nil
	case *Card:
		if o == nil {
			return false, nil
		}
		return c.Equal(o), nil
	case Card:
		return c.Equal(&o), nil
	}
	return false, protocol.Errorf(protocol.TypeMismatch, "comparison between %T and card not implemented", v)
}

func (c *Card) String() string {
	if c == nil {
		return "<empty>"
	}
	return fmt.Sprintf("[%s %d %d %v]", c.category.Code(), c.tier, c.points, c.cost)
}
