package domain

// domain package contains the domain models of knitsocial.
//
// `domain/knitsocial` package exposes the root object, the database.
// Entrypoints should instantiate it and reach every entity through it.
//
// `domain/ENTITY.go` has entities (Domain Model types) and their validations.
// For example, `domain/post.go` contains the `Post` entity.
//
// `domain/ENTITY/db` directory contains the interface to store the entity in RDB,
// `domain/ENTITY/db/postgres` implements it with PostgreSQL,
// and `domain/ENTITY/db/mock` is a mock of the interface for tests.
//
// # Entities
//
// - `user`: An account. Users can follow other users, asymmetrically.
//
// - `follow`: The social graph. An edge from a follower to a followee.
// Following someone notifies the followee.
//
// - `post`: A titled text written by a user. Posts of the users someone follows
// make the `feed` of them.
//
// - `comment`: A text attached to a post. Commenting notifies the post author.
//
// - `like`: An endorsement of a post by a user, at most once per (user, post).
// Liking notifies the post author.
//
// - `notification`: What happened to a user, written as a side effect of follow, like and comment.
// Notifications are never written for what a user does to themselves.
//
// Values passed to repositories are validated beforehand:
// `XxxParam.Validate()` returns `XxxSpec`, which cannot be constructed in other ways.
