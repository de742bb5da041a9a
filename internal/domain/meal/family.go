package meal

// FamilyMember identifies one of the fixed household roles a meal can be
// tagged with. The set is closed; anything else is not a valid preference tag.
type FamilyMember string

const (
	MemberDad     FamilyMember = "dad"
	MemberMom     FamilyMember = "mom"
	MemberBrother FamilyMember = "brother"
	MemberSister  FamilyMember = "sister"
	MemberBaby    FamilyMember = "baby"
	MemberGrandpa FamilyMember = "grandpa"
	MemberGrandma FamilyMember = "grandma"
)

// Members returns all household members in display order.
func Members() []FamilyMember {
	return []FamilyMember{
		MemberDad,
		MemberMom,
		MemberBrother,
		MemberSister,
		MemberBaby,
		MemberGrandpa,
		MemberGrandma,
	}
}

// Glyph returns the display glyph for a family member.
func (m FamilyMember) Glyph() string {
	switch m {
	case MemberDad:
		return "👨‍💼"
	case MemberMom:
		return "👩‍💼"
	case MemberBrother:
		return "👦"
	case MemberSister:
		return "👧"
	case MemberBaby:
		return "👶"
	case MemberGrandpa:
		return "👴"
	case MemberGrandma:
		return "👵"
	}
	return ""
}

// IsValid reports whether m is one of the seven household roles.
func (m FamilyMember) IsValid() bool {
	switch m {
	case MemberDad, MemberMom, MemberBrother, MemberSister, MemberBaby, MemberGrandpa, MemberGrandma:
		return true
	}
	return false
}
