package document

// SecurityRequirement maps a security scheme name to the scopes required
// when that scheme is used to satisfy the requirement.
type SecurityRequirement map[string][]string

// SecurityScheme defines one entry of a document's securityDefinitions.
type SecurityScheme struct {
	Type        string // "basic", "apiKey", "oauth2"
	Description string

	// Type: apiKey
	Name string
	In   string // "query", "header"

	// Type: oauth2
	Flow             string // "implicit", "password", "application", "accessCode"
	AuthorizationURL string
	TokenURL         string
	Scopes           map[string]string
}
