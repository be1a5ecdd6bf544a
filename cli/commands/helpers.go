package commands

// resolveSchemaPath picks the schema path from the flag, the positional
// argument, or the configured default, in that order.
func resolveSchemaPath(flagValue string, args []string, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	return configured
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
