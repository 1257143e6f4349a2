package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	kpgschema "github.com/opst/knitsocial/pkg/db/postgres/schema"
	kcomment "github.com/opst/knitsocial/pkg/domain/comment/db"
	kpgcomment "github.com/opst/knitsocial/pkg/domain/comment/db/postgres"
	kfeed "github.com/opst/knitsocial/pkg/domain/feed/db"
	kpgfeed "github.com/opst/knitsocial/pkg/domain/feed/db/postgres"
	kfollow "github.com/opst/knitsocial/pkg/domain/follow/db"
	kpgfollow "github.com/opst/knitsocial/pkg/domain/follow/db/postgres"
	dbInterface "github.com/opst/knitsocial/pkg/domain/knitsocial/db"
	klike "github.com/opst/knitsocial/pkg/domain/like/db"
	kpglike "github.com/opst/knitsocial/pkg/domain/like/db/postgres"
	knotification "github.com/opst/knitsocial/pkg/domain/notification/db"
	kpgnotification "github.com/opst/knitsocial/pkg/domain/notification/db/postgres"
	kpost "github.com/opst/knitsocial/pkg/domain/post/db"
	kpgpost "github.com/opst/knitsocial/pkg/domain/post/db/postgres"
	kschema "github.com/opst/knitsocial/pkg/domain/schema/db"
	kuser "github.com/opst/knitsocial/pkg/domain/user/db"
	kpguser "github.com/opst/knitsocial/pkg/domain/user/db/postgres"
	xe "github.com/opst/knitsocial/pkg/errors"
)

type knitSocialPostgres struct {
	pool          kpool.Pool
	users         kuser.UserInterface
	follows       kfollow.FollowInterface
	posts         kpost.PostInterface
	comments      kcomment.CommentInterface
	likes         klike.LikeInterface
	feed          kfeed.FeedInterface
	notifications knotification.NotificationInterface
	schema        kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

// WithSchemaRepository sets the directory of schema.
//
// Without this, the schema is not checked.
func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(ctx context.Context, url string, options ...Option) (dbInterface.KnitSocialDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return FromPool(kpool.Wrap(pool), options...), nil
}

// FromPool builds the database on an existing pool.
//
// Close of the returned database closes the pool.
func FromPool(p kpool.Pool, options ...Option) dbInterface.KnitSocialDatabase {
	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &knitSocialPostgres{
		pool:          p,
		users:         kpguser.New(p),
		follows:       kpgfollow.New(p),
		posts:         kpgpost.New(p),
		comments:      kpgcomment.New(p),
		likes:         kpglike.New(p),
		feed:          kpgfeed.New(p),
		notifications: kpgnotification.New(p),
		schema:        schema,
	}
}

func (k *knitSocialPostgres) Users() kuser.UserInterface {
	return k.users
}

func (k *knitSocialPostgres) Follows() kfollow.FollowInterface {
	return k.follows
}

func (k *knitSocialPostgres) Posts() kpost.PostInterface {
	return k.posts
}

func (k *knitSocialPostgres) Comments() kcomment.CommentInterface {
	return k.comments
}

func (k *knitSocialPostgres) Likes() klike.LikeInterface {
	return k.likes
}

func (k *knitSocialPostgres) Feed() kfeed.FeedInterface {
	return k.feed
}

func (k *knitSocialPostgres) Notifications() knotification.NotificationInterface {
	return k.notifications
}

func (k *knitSocialPostgres) Schema() kschema.SchemaInterface {
	return k.schema
}

func (k *knitSocialPostgres) Close() error {
	k.pool.Close()
	return nil
}
