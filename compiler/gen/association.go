package gen

import "github.com/syssam/dashgen/compiler/load"

// AssociationKind is the field kind of an association attribute.
type AssociationKind uint8

// Association kinds.
const (
	BelongsTo AssociationKind = iota
	HasOne
	HasMany
	Polymorphic
	RichText
)

var kindNames = [...]string{
	BelongsTo:   "BelongsTo",
	HasOne:      "HasOne",
	HasMany:     "HasMany",
	Polymorphic: "Polymorphic",
	RichText:    "RichText",
}

// String returns the field descriptor name of the kind.
func (k AssociationKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "AssociationKind(?)"
}

// AssociationKindOf classifies the association named attr. The checks run
// in a fixed order: singular (has_one) first, then collection, then
// polymorphic, with belongs_to as the fallback. A polymorphic has_one is
// therefore reported as HasOne (or RichText). The second result is false
// when the model declares no association with this name.
func AssociationKindOf(s *load.Schema, attr string) (AssociationKind, bool) {
	a, ok := s.Association(attr)
	if !ok {
		return 0, false
	}
	switch {
	case a.Macro == load.HasOne && a.ClassName == load.RichTextClass:
		return RichText, true
	case a.Macro == load.HasOne:
		return HasOne, true
	case a.Collection():
		return HasMany, true
	case a.Polymorphic:
		return Polymorphic, true
	default:
		return BelongsTo, true
	}
}
