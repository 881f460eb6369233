package i18n

// T translates a key to a string. The first parameter identifies a message to
// translate, the second is the default string returned until a translation
// catalog is wired in.
func T(_ string, defaultValue string) string {
	return defaultValue
}
