package inventory

// NormalizedUnits collapses an item/box quantity pair into a single unit
// count. A boxSize of 0 means boxes do not apply for the product, so boxed
// quantity contributes nothing.
func NormalizedUnits(itemQuantity, boxQuantity, boxSize int) int {
	return itemQuantity + boxQuantity*boxSize
}

// Decompose splits a normalized unit total into the minimal box+item
// representation for the given boxSize. When boxSize is 0 everything stays
// as loose items.
func Decompose(totalUnits, boxSize int) (itemQuantity, boxQuantity int) {
	if boxSize <= 0 {
		return totalUnits, 0
	}
	return totalUnits % boxSize, totalUnits / boxSize
}
