package postgres

import (
	"context"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	xe "github.com/opst/knitsocial/pkg/errors"
)

// FollowersOf returns ids of users following the user, ascending.
func FollowersOf(ctx context.Context, q kpool.Queryer, userId int64) ([]int64, error) {
	return followIds(
		ctx, q,
		`select "follower_id" from "follow" where "followee_id" = $1 order by "follower_id"`,
		userId,
	)
}

// FollowingOf returns ids of users the user follows, ascending.
func FollowingOf(ctx context.Context, q kpool.Queryer, userId int64) ([]int64, error) {
	return followIds(
		ctx, q,
		`select "followee_id" from "follow" where "follower_id" = $1 order by "followee_id"`,
		userId,
	)
}

func followIds(ctx context.Context, q kpool.Queryer, query string, userId int64) ([]int64, error) {
	rows, err := q.Query(ctx, query, userId)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, xe.Wrap(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return ids, nil
}
