package store

// Well-known storage keys. The names match the records written by the web
// client so an exported browser profile can be imported verbatim.
const (
	// DurableAPIKey holds the packed envelope in the durable tier.
	DurableAPIKey = "wiseUserApiKey_encrypted"
	// SessionAPIKey holds the plaintext API key in the session tier.
	SessionAPIKey = "wiseUserApiKey_insecure"
)
