package retry

// Immediate returns a strategy that retries without waiting. It is the same as Constant(0).
func Immediate() *ConstantStrategy {
	return Constant(0)
}
