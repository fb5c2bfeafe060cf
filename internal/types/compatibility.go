package types

// Compatible reports whether a value of type src may appear where dst is
// expected (spec §4.6). Name equivalence is the general rule: identical
// pointers imply identical types. The listed exceptions are universal
// numeric types, string-literal-to-character-array, and parent/derived
// compatibility in either direction.
func Compatible(src, dst *Type) bool {
	if src == dst {
		return true
	}
	if src == nil || dst == nil {
		return false
	}

	if src.Kind == UniversalInteger && (dst.Kind == Integer || dst.Kind == UniversalInteger) {
		return true
	}
	if src.Kind == UniversalReal && (dst.Kind == Float || dst.Kind == Fixed || dst.Kind == UniversalReal) {
		return true
	}

	if isStringLiteralCompatible(src, dst) {
		return true
	}

	if src.ParentType == dst || dst.ParentType == src {
		return true
	}

	return false
}

// isStringLiteralCompatible implements "the string literal type is
// implicitly convertible to any array of the character type".
func isStringLiteralCompatible(src, dst *Type) bool {
	isCharArray := func(t *Type) bool {
		return t.Kind == Array && t.ElementType != nil && t.ElementType.Kind == Character
	}
	isStringLiteralType := func(t *Type) bool {
		return t.Kind == Array && t.Name == "string_literal"
	}
	return isStringLiteralType(src) && isCharArray(dst)
}
