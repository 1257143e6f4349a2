package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/opst/knitsocial-api-types/messages"
	"github.com/opst/knitsocial-api-types/misc/rfctime"
	apipages "github.com/opst/knitsocial-api-types/pages"
	apiusers "github.com/opst/knitsocial-api-types/users"
	"github.com/opst/knitsocial/cmd/knitsocial/handlers"
	httptestutil "github.com/opst/knitsocial/internal/testutils/http"
	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
	mockfollow "github.com/opst/knitsocial/pkg/domain/follow/db/mock"
	mockuser "github.com/opst/knitsocial/pkg/domain/user/db/mock"
)

func fakeHash(password string) (string, error) {
	return "hashed:" + password, nil
}

func TestRegisterHandler(t *testing.T) {
	t.Run("it registers a user with hashed password", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.Register = func(ctx context.Context, spec *domain.UserSpec) (*domain.User, error) {
			return &domain.User{
				UserSummary: domain.UserSummary{Id: 3, Username: spec.Username()},
				Email:       spec.Email(),
				Bio:         spec.Bio(),
				DateJoined:  t0,
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/register/", httptestutil.JSON(`{
			"username": "carol", "email": "carol@example.com",
			"password": "correct horse", "password_confirm": "correct horse",
			"bio": "hello"
		}`), httptestutil.ContentType("application/json"))

		if err := handlers.RegisterHandler(mock, fakeHash)(c); err != nil {
			t.Fatal(err)
		}

		actual := decode[apiusers.Registered](t, resp, http.StatusCreated)
		expected := apiusers.Registered{
			User: apiusers.Detail{
				Id: 3, Username: "carol", Email: "carol@example.com", Bio: "hello",
				DateJoined: rfctime.RFC3339(t0),
			},
			Message: "user registered successfully",
		}
		if !cmp.Equal(actual, expected) {
			t.Errorf("response: %s", cmp.Diff(expected, actual))
		}

		if mock.Calls.Register.Times() != 1 {
			t.Fatalf("Register is called %d times", mock.Calls.Register.Times())
		}
		if hash := mock.Calls.Register.Last().PasswordHash(); hash != "hashed:correct horse" {
			t.Errorf("password hash: %s", hash)
		}
	})

	for name, testcase := range map[string]struct {
		body     string
		ctype    string
		register error
		code     string
	}{
		"passwords do not match": {
			body: `{"username": "carol", "email": "carol@example.com",
				"password": "correct horse", "password_confirm": "battery staple"}`,
			ctype: "application/json",
			code:  "invalid",
		},
		"password is too short": {
			body: `{"username": "carol", "email": "carol@example.com",
				"password": "short", "password_confirm": "short"}`,
			ctype: "application/json",
			code:  "invalid",
		},
		"username is taken": {
			body: `{"username": "alice", "email": "carol@example.com",
				"password": "correct horse", "password_confirm": "correct horse"}`,
			ctype:    "application/json",
			register: kerr.ErrUsernameTaken,
			code:     "username_taken",
		},
		"email is taken": {
			body: `{"username": "carol", "email": "ALICE@example.com",
				"password": "correct horse", "password_confirm": "correct horse"}`,
			ctype:    "application/json",
			register: fmt.Errorf("wrapped: %w", kerr.ErrEmailTaken),
			code:     "email_taken",
		},
		"content type is not json": {
			body:  `username=carol`,
			ctype: "application/x-www-form-urlencoded",
		},
		"body is broken": {
			body:  `{"username": `,
			ctype: "application/json",
		},
	} {
		t.Run("it responds 400 when "+name, func(t *testing.T) {
			mock := mockuser.NewUserInterface()
			mock.Impl.Register = func(ctx context.Context, spec *domain.UserSpec) (*domain.User, error) {
				if testcase.register == nil {
					t.Fatal("Register should not be called")
				}
				return nil, testcase.register
			}

			e := echo.New()
			c, _ := httptestutil.Post(
				e, "/api/register/", httptestutil.JSON(testcase.body),
				httptestutil.ContentType(testcase.ctype),
			)

			msg := assertHTTPError(t, handlers.RegisterHandler(mock, fakeHash)(c), http.StatusBadRequest)
			if msg.Code != testcase.code {
				t.Errorf("code: %q (want %q)", msg.Code, testcase.code)
			}
		})
	}
}

func TestGetOwnProfileHandler(t *testing.T) {
	t.Run("anonymous gets 401", func(t *testing.T) {
		mock := mockuser.NewUserInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/profile/")

		assertHTTPError(t, handlers.GetOwnProfileHandler(mock)(c), http.StatusUnauthorized)
		if mock.Calls.Get.Times() != 0 {
			t.Error("Get is called")
		}
	})

	t.Run("it responds the profile of the actor", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.Get = func(ctx context.Context, userId int64) (*domain.Profile, error) {
			return &domain.Profile{
				User:           domain.User{UserSummary: bob, Email: "bob@example.com", DateJoined: t0},
				FollowersCount: 1, FollowingCount: 0,
				Followers: []int64{1}, Following: nil,
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/profile/", httptestutil.AsUser(bob.Id))
		if err := handlers.GetOwnProfileHandler(mock)(c); err != nil {
			t.Fatal(err)
		}

		actual := decode[apiusers.Profile](t, resp, http.StatusOK)
		expected := apiusers.Profile{
			Detail: apiusers.Detail{
				Id: 2, Username: "bob", Email: "bob@example.com", DateJoined: rfctime.RFC3339(t0),
			},
			FollowersCount: 1, FollowingCount: 0,
			Followers: []int64{1}, Following: []int64{},
		}
		if !cmp.Equal(actual, expected) {
			t.Errorf("response: %s", cmp.Diff(expected, actual))
		}
		if mock.Calls.Get.Last() != bob.Id {
			t.Errorf("Get is called with %d", mock.Calls.Get.Last())
		}
	})
}

func TestUpdateOwnProfileHandler(t *testing.T) {
	t.Run("it changes only given fields", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.UpdateProfile = func(ctx context.Context, userId int64, change *domain.ProfileChange) (*domain.Profile, error) {
			return &domain.Profile{
				User: domain.User{UserSummary: alice, Bio: *change.Bio(), DateJoined: t0},
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Patch(
			e, "/api/profile/", httptestutil.JSON(`{"bio": "gopher"}`),
			httptestutil.ContentType("application/json"), httptestutil.AsUser(alice.Id),
		)
		if err := handlers.UpdateOwnProfileHandler(mock)(c); err != nil {
			t.Fatal(err)
		}

		actual := decode[apiusers.Profile](t, resp, http.StatusOK)
		if actual.Bio != "gopher" {
			t.Errorf("bio: %s", actual.Bio)
		}

		call := mock.Calls.UpdateProfile.Last()
		if call.UserId != alice.Id {
			t.Errorf("user id: %d", call.UserId)
		}
		if call.Change.Email() != nil || call.Change.FirstName() != nil {
			t.Errorf("unexpected change: %+v", call.Change)
		}
		if _, ok := call.Change.ProfilePicture(); ok {
			t.Error("profile picture is changed")
		}
	})

	t.Run("invalid email is rejected before update", func(t *testing.T) {
		mock := mockuser.NewUserInterface()

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/profile/", httptestutil.JSON(`{"email": "not an email"}`),
			httptestutil.ContentType("application/json"), httptestutil.AsUser(alice.Id),
		)
		assertHTTPError(t, handlers.UpdateOwnProfileHandler(mock)(c), http.StatusBadRequest)
		if mock.Calls.UpdateProfile.Times() != 0 {
			t.Error("UpdateProfile is called")
		}
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		mock := mockuser.NewUserInterface()

		e := echo.New()
		c, _ := httptestutil.Patch(
			e, "/api/profile/", httptestutil.JSON(`{"bio": "gopher"}`),
			httptestutil.ContentType("application/json"),
		)
		assertHTTPError(t, handlers.UpdateOwnProfileHandler(mock)(c), http.StatusUnauthorized)
	})
}

func TestDeleteOwnAccountHandler(t *testing.T) {
	mock := mockuser.NewUserInterface()
	mock.Impl.Delete = func(ctx context.Context, userId int64) error { return nil }

	e := echo.New()
	c, resp := httptestutil.Delete(e, "/api/profile/", httptestutil.AsUser(bob.Id))
	if err := handlers.DeleteOwnAccountHandler(mock)(c); err != nil {
		t.Fatal(err)
	}
	if resp.Code != http.StatusNoContent {
		t.Errorf("status: %d", resp.Code)
	}
	if mock.Calls.Delete.Last() != bob.Id {
		t.Errorf("Delete is called with %d", mock.Calls.Delete.Last())
	}
}

func TestFindUsersHandler(t *testing.T) {
	t.Run("it passes pagination and links the next page", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.Find = func(ctx context.Context, query domain.UserQuery) (domain.Page[domain.User], error) {
			return domain.Page[domain.User]{
				Items:      []domain.User{{UserSummary: bob, DateJoined: t0}},
				Total:      3,
				Pagination: query.Pagination,
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/users/?page=2&page_size=1")
		if err := handlers.FindUsersHandler(mock, handlers.DefaultPaging)(c); err != nil {
			t.Fatal(err)
		}

		actual := decode[apipages.Page[apiusers.Detail]](t, resp, http.StatusOK)
		if actual.Count != 3 || len(actual.Results) != 1 || actual.Results[0].Username != "bob" {
			t.Errorf("unexpected page: %+v", actual)
		}
		if actual.Next == nil || *actual.Next != "/api/users/?page=3&page_size=1" {
			t.Errorf("next: %v", actual.Next)
		}
		if actual.Previous == nil || *actual.Previous != "/api/users/?page_size=1" {
			t.Errorf("previous: %v", actual.Previous)
		}

		if q := mock.Calls.Find.Last(); q.Pagination != (domain.Pagination{Page: 2, PageSize: 1}) {
			t.Errorf("pagination: %+v", q.Pagination)
		}
	})

	t.Run("too large page size is clipped", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.Find = func(ctx context.Context, query domain.UserQuery) (domain.Page[domain.User], error) {
			return domain.Page[domain.User]{Pagination: query.Pagination}, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/users/?page_size=1000")
		paging := handlers.Paging{DefaultPageSize: 5, MaxPageSize: 20}
		if err := handlers.FindUsersHandler(mock, paging)(c); err != nil {
			t.Fatal(err)
		}
		if q := mock.Calls.Find.Last(); q.Pagination != (domain.Pagination{Page: 1, PageSize: 20}) {
			t.Errorf("pagination: %+v", q.Pagination)
		}
	})

	t.Run("broken page is rejected", func(t *testing.T) {
		mock := mockuser.NewUserInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/users/?page=first")
		assertHTTPError(t, handlers.FindUsersHandler(mock, handlers.DefaultPaging)(c), http.StatusBadRequest)
	})
}

func TestGetUserHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		userId string
		err    error
		status int
	}{
		"missing user is 404": {userId: "99", err: kerr.ErrMissing, status: http.StatusNotFound},
		"non-numeric is 400":  {userId: "alice", status: http.StatusBadRequest},
		"non-positive is 400": {userId: "0", status: http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			mock := mockuser.NewUserInterface()
			mock.Impl.Get = func(ctx context.Context, userId int64) (*domain.Profile, error) {
				return nil, testcase.err
			}

			e := echo.New()
			c, _ := httptestutil.Get(e, "/api/users/"+testcase.userId+"/")
			c.SetParamNames("userId")
			c.SetParamValues(testcase.userId)

			assertHTTPError(t, handlers.GetUserHandler(mock, "userId")(c), testcase.status)
		})
	}

	t.Run("anyone can see profiles", func(t *testing.T) {
		mock := mockuser.NewUserInterface()
		mock.Impl.Get = func(ctx context.Context, userId int64) (*domain.Profile, error) {
			return &domain.Profile{User: domain.User{UserSummary: alice, DateJoined: t0}}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/users/1/")
		c.SetParamNames("userId")
		c.SetParamValues("1")

		if err := handlers.GetUserHandler(mock, "userId")(c); err != nil {
			t.Fatal(err)
		}
		actual := decode[apiusers.Profile](t, resp, http.StatusOK)
		if actual.Id != 1 || actual.Followers == nil || actual.Following == nil {
			t.Errorf("unexpected profile: %+v", actual)
		}
		if mock.Calls.Get.Last() != 1 {
			t.Errorf("Get is called with %d", mock.Calls.Get.Last())
		}
	})
}

func TestFollowHandler(t *testing.T) {
	type Then struct {
		status int
		code   string
	}

	theory := func(opts []httptestutil.RequestOption, follow error, then Then) func(*testing.T) {
		return func(t *testing.T) {
			mock := mockfollow.NewFollowInterface()
			mock.Impl.Follow = func(ctx context.Context, actor, target int64) error {
				return follow
			}

			e := echo.New()
			c, resp := httptestutil.Post(e, "/api/follow/2/", nil, opts...)
			c.SetParamNames("userId")
			c.SetParamValues("2")

			err := handlers.FollowHandler(mock, "userId")(c)
			if then.status != http.StatusOK {
				msg := assertHTTPError(t, err, then.status)
				if msg.Code != then.code {
					t.Errorf("code: %q (want %q)", msg.Code, then.code)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			actual := decode[messages.Message](t, resp, http.StatusOK)
			if actual.Message != "you are now following user 2" {
				t.Errorf("message: %s", actual.Message)
			}
			if edge := mock.Calls.Follow.Last(); edge.Actor != 1 || edge.Target != 2 {
				t.Errorf("Follow is called with %+v", edge)
			}
		}
	}

	asAlice := []httptestutil.RequestOption{httptestutil.AsUser(alice.Id)}

	t.Run("it follows", theory(asAlice, nil, Then{status: http.StatusOK}))
	t.Run("anonymous gets 401", theory(nil, nil, Then{status: http.StatusUnauthorized}))
	t.Run("following twice is 400", theory(
		asAlice, kerr.ErrAlreadyFollowing, Then{status: http.StatusBadRequest, code: "already_following"},
	))
	t.Run("self follow is 400", theory(
		asAlice, kerr.ErrSelfFollow, Then{status: http.StatusBadRequest, code: "self_follow"},
	))
	t.Run("following missing user is 404", theory(
		asAlice, fmt.Errorf("account: %w", kerr.ErrMissing), Then{status: http.StatusNotFound},
	))
}

func TestUnfollowHandler(t *testing.T) {
	t.Run("unfollowing whom not followed is 400", func(t *testing.T) {
		mock := mockfollow.NewFollowInterface()
		mock.Impl.Unfollow = func(ctx context.Context, actor, target int64) error {
			return kerr.ErrNotFollowing
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/unfollow/2/", nil, httptestutil.AsUser(alice.Id))
		c.SetParamNames("userId")
		c.SetParamValues("2")

		msg := assertHTTPError(t, handlers.UnfollowHandler(mock, "userId")(c), http.StatusBadRequest)
		if msg.Code != "not_following" {
			t.Errorf("code: %s", msg.Code)
		}
	})

	t.Run("it unfollows", func(t *testing.T) {
		mock := mockfollow.NewFollowInterface()
		mock.Impl.Unfollow = func(ctx context.Context, actor, target int64) error { return nil }

		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/unfollow/2/", nil, httptestutil.AsUser(alice.Id))
		c.SetParamNames("userId")
		c.SetParamValues("2")

		if err := handlers.UnfollowHandler(mock, "userId")(c); err != nil {
			t.Fatal(err)
		}
		decode[messages.Message](t, resp, http.StatusOK)
		if edge := mock.Calls.Unfollow.Last(); edge.Actor != 1 || edge.Target != 2 {
			t.Errorf("Unfollow is called with %+v", edge)
		}
	})
}
