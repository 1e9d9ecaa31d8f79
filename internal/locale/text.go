package locale

// Text is a localizable field of a catalog record, one value per supported
// locale. The English value is mandatory on valid records; the others are
// optional. Replaces runtime "field_" + lang lookups with typed access.
type Text struct {
	EN string
	DE string
	FR string
}

// Resolve returns the value for the requested locale, falling back to
// English when that locale's value is absent or empty. It never fails: if
// even the English value is missing the result is the empty string, and the
// caller decides how to render that.
func (t Text) Resolve(l Locale) string {
	var v string
	switch l {
	case DE:
		v = t.DE
	case FR:
		v = t.FR
	case EN:
		v = t.EN
	default:
		v = t.EN
	}
	if v == "" {
		return t.EN
	}
	return v
}

// Valid reports whether the mandatory English value is present.
func (t Text) Valid() bool {
	return t.EN != ""
}
