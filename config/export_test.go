package config

// textValue builds a written Value the way the decoder would for a string.
func textValue(text string) Value {
	return Value{text: text, written: true, truthy: text != ""}
}
