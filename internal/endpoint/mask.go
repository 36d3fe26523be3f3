package endpoint

// MaskKey hides all but the edges of an API key for display.
func MaskKey(key string) string {
	switch n := len(key); {
	case n == 0:
		return ""
	case n <= 8:
		return "****"
	default:
		return key[:3] + "..." + key[n-4:]
	}
}
