package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/knitsocial/pkg/domain/user/db"
	xe "github.com/opst/knitsocial/pkg/errors"
)

// names of unique constraints on "account".
const (
	constraintUsername = "account_username_key"
	constraintEmail    = "account_email_key"
)

const userColumns = `
	"id", "username", "email", "first_name", "last_name", "bio", "profile_picture", "date_joined"
`

type pgUser struct {
	pool kpool.Pool
}

var _ kdb.UserInterface = &pgUser{}

func New(pool kpool.Pool) *pgUser {
	return &pgUser{pool: pool}
}

func (u *pgUser) Register(ctx context.Context, spec *domain.UserSpec) (*domain.User, error) {
	user, err := scanUser(u.pool.QueryRow(
		ctx,
		`insert into "account"
			("username", "email", "password_hash", "first_name", "last_name", "bio", "profile_picture")
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+userColumns,
		spec.Username(), spec.Email(), spec.PasswordHash(),
		spec.FirstName(), spec.LastName(), spec.Bio(), spec.ProfilePicture(),
	))
	if err != nil {
		return nil, asConflict(err)
	}
	return &user, nil
}

func (u *pgUser) Get(ctx context.Context, userId int64) (*domain.Profile, error) {
	return getProfile(ctx, u.pool, userId)
}

func (u *pgUser) Find(ctx context.Context, query domain.UserQuery) (domain.Page[domain.User], error) {
	pagination := query.Pagination.OrFirstPage()

	var total int
	if err := u.pool.QueryRow(ctx, `select count(*) from "account"`).Scan(&total); err != nil {
		return domain.Page[domain.User]{}, xe.Wrap(err)
	}

	page := domain.Page[domain.User]{Items: []domain.User{}, Total: total, Pagination: pagination}
	if total <= pagination.Offset() {
		return page, nil
	}

	args := &kpgintr.Args{}
	rows, err := u.pool.Query(
		ctx,
		`select `+userColumns+` from "account"
		order by "date_joined" desc, "id" desc
		limit `+args.Next(pagination.Limit())+` offset `+args.Next(pagination.Offset()),
		args.Values()...,
	)
	if err != nil {
		return domain.Page[domain.User]{}, xe.Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return domain.Page[domain.User]{}, xe.Wrap(err)
		}
		page.Items = append(page.Items, user)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.User]{}, xe.Wrap(err)
	}
	return page, nil
}

func (u *pgUser) UpdateProfile(ctx context.Context, userId int64, change *domain.ProfileChange) (*domain.Profile, error) {
	picture, changePicture := change.ProfilePicture()

	var profile *domain.Profile
	err := kpool.InTx(ctx, u.pool, func(tx kpool.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`update "account"
			set "email" = coalesce($2, "email"),
				"first_name" = coalesce($3, "first_name"),
				"last_name" = coalesce($4, "last_name"),
				"bio" = coalesce($5, "bio"),
				"profile_picture" = case when $6 then $7 else "profile_picture" end
			where "id" = $1`,
			userId, change.Email(), change.FirstName(), change.LastName(), change.Bio(),
			changePicture, picture,
		)
		if err != nil {
			return asConflict(err)
		}
		if tag.RowsAffected() == 0 {
			return xe.Wrap(kpgerr.Missing{Table: "account", Identity: idString(userId)})
		}

		profile, err = getProfile(ctx, tx, userId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *pgUser) Delete(ctx context.Context, userId int64) error {
	tag, err := u.pool.Exec(ctx, `delete from "account" where "id" = $1`, userId)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return xe.Wrap(kpgerr.Missing{Table: "account", Identity: idString(userId)})
	}
	return nil
}

func getProfile(ctx context.Context, q kpool.Queryer, userId int64) (*domain.Profile, error) {
	profile := domain.Profile{}
	var picture pgtype.Text
	err := q.QueryRow(
		ctx,
		`select
			"a"."id", "a"."username", "a"."email", "a"."first_name", "a"."last_name",
			"a"."bio", "a"."profile_picture", "a"."date_joined"
		from "account" as "a"
		where "a"."id" = $1`,
		userId,
	).Scan(
		&profile.Id, &profile.Username, &profile.Email, &profile.FirstName, &profile.LastName,
		&profile.Bio, &picture, &profile.DateJoined,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xe.Wrap(kpgerr.Missing{Table: "account", Identity: idString(userId)})
	} else if err != nil {
		return nil, xe.Wrap(err)
	}

	if profile.Followers, err = kpgintr.FollowersOf(ctx, q, userId); err != nil {
		return nil, err
	}
	if profile.Following, err = kpgintr.FollowingOf(ctx, q, userId); err != nil {
		return nil, err
	}
	profile.ProfilePicture = textAsPtr(picture)
	profile.FollowersCount = len(profile.Followers)
	profile.FollowingCount = len(profile.Following)
	return &profile, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	user := domain.User{}
	var picture pgtype.Text
	if err := row.Scan(
		&user.Id, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.Bio, &picture, &user.DateJoined,
	); err != nil {
		return user, err
	}
	user.ProfilePicture = textAsPtr(picture)
	return user, nil
}

// asConflict translates unique violations on "account" into domain errors.
func asConflict(err error) error {
	pgerr, ok := kpgerr.AsUniqueViolation(err)
	if !ok {
		return xe.Wrap(err)
	}
	switch pgerr.ConstraintName {
	case constraintUsername:
		return kerr.ErrUsernameTaken
	case constraintEmail:
		return kerr.ErrEmailTaken
	default:
		return xe.Wrap(err)
	}
}

func textAsPtr(t pgtype.Text) *string {
	if t.Status != pgtype.Present {
		return nil
	}
	s := t.String
	return &s
}

func idString(id int64) string {
	return "id=" + strconv.FormatInt(id, 10)
}
