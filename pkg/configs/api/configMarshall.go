package api

import (
	"fmt"

	"github.com/opst/knitsocial/pkg/domain"
)

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/api.XxxMarshall` are `Marshalled[*Xxx]` .
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type ApiConfigMarshall struct {
	Port             int32                     `yaml:"port"`
	Database         string                    `yaml:"database"`
	SchemaRepository string                    `yaml:"schemaRepository,omitempty"`
	Auth             *AuthConfigMarshall       `yaml:"auth"`
	Pagination       *PaginationConfigMarshall `yaml:"pagination,omitempty"`
}

var _ Marshalled[*ApiConfig] = &ApiConfigMarshall{}

func (a *ApiConfigMarshall) trySeal(path string) *ApiConfig {
	if a == nil {
		panic(path + " is required")
	}
	pagination := a.Pagination
	if pagination == nil {
		pagination = &PaginationConfigMarshall{}
	}
	return &ApiConfig{
		port:             positive(a.Port, path+".port"),
		database:         required(a.Database, path+".database"),
		schemaRepository: a.SchemaRepository,
		auth:             nonnil(a.Auth, path+".auth").trySeal(path + ".auth"),
		pagination:       pagination.trySeal(path + ".pagination"),
	}
}

type AuthConfigMarshall struct {
	Issuer   string `yaml:"issuer,omitempty"`
	Audience string `yaml:"audience,omitempty"`
	KeyFile  string `yaml:"keyFile"`
}

var _ Marshalled[*AuthConfig] = &AuthConfigMarshall{}

func (a *AuthConfigMarshall) trySeal(path string) *AuthConfig {
	return &AuthConfig{
		issuer:   a.Issuer,
		audience: a.Audience,
		keyFile:  required(a.KeyFile, path+".keyFile"),
	}
}

type PaginationConfigMarshall struct {
	DefaultPageSize int `yaml:"defaultPageSize,omitempty"`
	MaxPageSize     int `yaml:"maxPageSize,omitempty"`
}

var _ Marshalled[*PaginationConfig] = &PaginationConfigMarshall{}

func (p *PaginationConfigMarshall) trySeal(path string) *PaginationConfig {
	def := p.DefaultPageSize
	if def == 0 {
		def = domain.DefaultPageSize
	}
	limit := p.MaxPageSize
	if limit == 0 {
		limit = domain.MaxPageSize
	}
	positive(def, path+".defaultPageSize")
	positive(limit, path+".maxPageSize")
	if limit < def {
		panic(fmt.Sprintf(
			"%s.defaultPageSize (%d) should not exceed %s.maxPageSize (%d)", path, def, path, limit,
		))
	}
	return &PaginationConfig{defaultPageSize: def, maxPageSize: limit}
}

func nonnil[T any](v *T, path string) *T {
	if v == nil {
		panic(path + " is required")
	}
	return v
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}

func positive[T int | int32](v T, path string) T {
	if v <= 0 {
		panic(fmt.Sprintf("%s should be positive, but %d", path, v))
	}
	return v
}
