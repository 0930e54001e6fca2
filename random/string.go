package random

// InsecureString returns a deterministic pseudo random alphanumeric
// string, suitable for test fixtures only.
func InsecureString(length int) (s string) {
	const Options = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	var parts = make([]byte, length)
	for index := range parts {
		parts[index] = Options[insecureSrc.IntN(len(Options))]
	}

	return string(parts)
}
