package mocks

import (
	"context"

	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/schema/db"
)

type SchemaInterface struct {
	Impl struct {
		Upgrade func(context.Context) error
		Version func(context.Context) (int, error)
		Context func(context.Context) (context.Context, context.CancelFunc)
	}
	Calls struct {
		Upgrade kdbmock.CallLog[struct{}]
		Version kdbmock.CallLog[struct{}]
		Context kdbmock.CallLog[struct{}]
	}
}

var _ kdb.SchemaInterface = &SchemaInterface{}

func NewSchemaInterface() *SchemaInterface {
	return &SchemaInterface{}
}

func (m *SchemaInterface) Upgrade(ctx context.Context) error {
	m.Calls.Upgrade = append(m.Calls.Upgrade, struct{}{})
	if m.Impl.Upgrade != nil {
		return m.Impl.Upgrade(ctx)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *SchemaInterface) Version(ctx context.Context) (int, error) {
	m.Calls.Version = append(m.Calls.Version, struct{}{})
	if m.Impl.Version != nil {
		return m.Impl.Version(ctx)
	}
	panic(kdbmock.ErrNotImplemented)
}

// Context returns ctx itself unless Impl.Context is set.
func (m *SchemaInterface) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	m.Calls.Context = append(m.Calls.Context, struct{}{})
	if m.Impl.Context != nil {
		return m.Impl.Context(ctx)
	}
	return ctx, func() {}
}
