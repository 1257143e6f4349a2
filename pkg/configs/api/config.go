package api

// ApiConfig is the immutable configuration of knitsocial api server.
//
// To get it, use `LoadApiConfig` or `TrySeal(*ApiConfigMarshall)`.
type ApiConfig struct {
	port             int32
	database         string
	schemaRepository string
	auth             *AuthConfig
	pagination       *PaginationConfig
}

func (c *ApiConfig) Port() int32 {
	return c.port
}

// Connection string for database.
func (c *ApiConfig) Database() string {
	return c.database
}

// Directory of versioned schema. Empty when the server does not watch it.
func (c *ApiConfig) SchemaRepository() string {
	return c.schemaRepository
}

func (c *ApiConfig) Auth() *AuthConfig {
	return c.auth
}

func (c *ApiConfig) Pagination() *PaginationConfig {
	return c.pagination
}

// Configuration for validating bearer tokens.
type AuthConfig struct {
	issuer   string
	audience string
	keyFile  string
}

// Expected "iss" claim. Empty means "not checked".
func (a *AuthConfig) Issuer() string {
	return a.issuer
}

// Expected "aud" claim. Empty means "not checked".
func (a *AuthConfig) Audience() string {
	return a.audience
}

// File containing HS256 shared key.
func (a *AuthConfig) KeyFile() string {
	return a.keyFile
}

type PaginationConfig struct {
	defaultPageSize int
	maxPageSize     int
}

// Page size used when a request does not specify.
func (p *PaginationConfig) DefaultPageSize() int {
	return p.defaultPageSize
}

// Upper limit of page size. Larger requests are clipped.
func (p *PaginationConfig) MaxPageSize() int {
	return p.maxPageSize
}
