package pricing

// MinFoodQuantity is the floor for the number of units of a food item.
const MinFoodQuantity = 1

// IncrementFood returns q + 1.
func IncrementFood(q int) int {
	return q + 1
}

// DecrementFood returns q - 1 but never less than MinFoodQuantity.
func DecrementFood(q int) int {
	if q <= MinFoodQuantity {
		return MinFoodQuantity
	}
	return q - 1
}
