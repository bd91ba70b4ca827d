package content

// Bilingual holds the English and Mongolian renditions of a text field.
// Both keys are expected to be present; missing translations degrade in
// Localize rather than being rejected at the data layer.
type Bilingual struct {
	EN string `bson:"en" json:"en"`
	MN string `bson:"mn" json:"mn"`
}

// Localize returns the text for lang, falling back en -> mn -> "".
func (b Bilingual) Localize(lang string) string {
	switch lang {
	case "mn":
		if b.MN != "" {
			return b.MN
		}
	default:
		if b.EN != "" {
			return b.EN
		}
	}
	if b.EN != "" {
		return b.EN
	}
	return b.MN
}

// Empty reports whether neither language carries any text.
func (b Bilingual) Empty() bool {
	return b.EN == "" && b.MN == ""
}
