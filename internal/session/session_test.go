package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/models"
	tu "github.com/desertthunder/spotui/internal/testing"
)

func validForm() SignUpForm {
	return SignUpForm{
		Email:    "amy@example.com",
		Password: "hunter22",
		FullName: "Amy Pond",
		Day:      "12",
		Month:    "04",
		Year:     "1990",
		Gender:   Female,
	}
}

func newService(t *testing.T) (*Service, *tu.FailingStore) {
	t.Helper()
	store := tu.NewFailingStore()
	logger, _ := tu.NewBufferLogger()
	return New(store, logger), store
}

func TestSignUpFormValidate(t *testing.T) {
	tt := []struct {
		name string
		edit func(*SignUpForm)
		want error
	}{
		{name: "valid", edit: func(*SignUpForm) {}},
		{name: "missing email", edit: func(f *SignUpForm) { f.Email = "" }, want: ErrMissingFields},
		{name: "missing name", edit: func(f *SignUpForm) { f.FullName = "" }, want: ErrMissingFields},
		{name: "missing password", edit: func(f *SignUpForm) { f.Password = "" }, want: ErrMissingFields},
		{name: "missing year", edit: func(f *SignUpForm) { f.Year = "" }, want: ErrMissingBirthDate},
		{name: "no gender", edit: func(f *SignUpForm) { f.Gender = "" }, want: ErrMissingGender},
		{name: "other gender", edit: func(f *SignUpForm) { f.Gender = "Unknown" }, want: ErrMissingGender},
		{name: "short password", edit: func(f *SignUpForm) { f.Password = "12345" }, want: ErrPasswordTooShort},
		{name: "exactly six", edit: func(f *SignUpForm) { f.Password = "123456" }},
		{
			name: "fields checked before birth date",
			edit: func(f *SignUpForm) { f.Email = ""; f.Day = "" },
			want: ErrMissingFields,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.edit(&f)
			err := f.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresProfile", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.SignUp(ctx, validForm()))

		raw, err := store.Get(ctx, UserKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Amy Pond","email":"amy@example.com","username":"Amy Pond"}`, raw)
		assert.NotContains(t, raw, "hunter22")
		assert.True(t, svc.IsLoggedIn(ctx))
	})

	t.Run("InvalidFormWritesNothing", func(t *testing.T) {
		svc, store := newService(t)
		f := validForm()
		f.Password = "abc"

		assert.ErrorIs(t, svc.SignUp(ctx, f), ErrPasswordTooShort)
		assert.Zero(t, store.Keys())
	})

	t.Run("StorageFailure", func(t *testing.T) {
		svc, store := newService(t)
		store.Fail(kvstore.OpSet)

		err := svc.SignUp(ctx, validForm())
		assert.ErrorIs(t, err, ErrSignUpFailed)
		assert.ErrorIs(t, err, tu.ErrInjected)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingCredentials", func(t *testing.T) {
		svc, _ := newService(t)
		assert.ErrorIs(t, svc.Login(ctx, "", "pw"), ErrMissingCredentials)
		assert.ErrorIs(t, svc.Login(ctx, "amy", "  "), ErrMissingCredentials)
		assert.False(t, svc.IsLoggedIn(ctx))
	})

	t.Run("CreatesUserWhenNoneStored", func(t *testing.T) {
		svc, _ := newService(t)
		require.NoError(t, svc.Login(ctx, "rory", "secret"))

		user, ok := svc.User(ctx)
		require.True(t, ok)
		assert.Equal(t, models.User{Name: "rory", Email: "rory@example.com", Username: "rory"}, *user)
		assert.True(t, svc.IsLoggedIn(ctx))
	})

	t.Run("EmailIdentifierKept", func(t *testing.T) {
		svc, _ := newService(t)
		require.NoError(t, svc.Login(ctx, "rory@tardis.uk", "secret"))

		user, _ := svc.User(ctx)
		assert.Equal(t, "rory@tardis.uk", user.Email)
	})

	t.Run("MatchesStoredUser", func(t *testing.T) {
		for _, id := range []string{"amy@example.com", "Amy Pond"} {
			svc, _ := newService(t)
			require.NoError(t, svc.SignUp(ctx, validForm()))
			svc.Logout(ctx)

			require.NoError(t, svc.Login(ctx, id, "anything"))
			user, _ := svc.User(ctx)
			assert.Equal(t, "Amy Pond", user.Name, id)
			assert.True(t, svc.IsLoggedIn(ctx))
		}
	})

	t.Run("ReplacesMismatchedUser", func(t *testing.T) {
		svc, _ := newService(t)
		require.NoError(t, svc.SignUp(ctx, validForm()))
		require.True(t, svc.UpdateUser(ctx, UserPatch{ProfilePicture: "file:///amy.png"}))

		require.NoError(t, svc.Login(ctx, "clara", "pw"))
		user, _ := svc.User(ctx)
		assert.Equal(t, models.User{
			Name:           "clara",
			Email:          "clara@example.com",
			Username:       "clara",
			ProfilePicture: "file:///amy.png",
		}, *user)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		svc, store := newService(t)
		store.Fail(kvstore.OpGet)

		assert.ErrorIs(t, svc.Login(ctx, "rory", "pw"), ErrLoginFailed)
	})

	t.Run("CorruptUser", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, store.Set(ctx, UserKey, "{not json"))

		assert.ErrorIs(t, svc.Login(ctx, "rory", "pw"), ErrLoginFailed)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearsFlagKeepsUser", func(t *testing.T) {
		svc, _ := newService(t)
		require.NoError(t, svc.Login(ctx, "rory", "pw"))

		svc.Logout(ctx)
		assert.False(t, svc.IsLoggedIn(ctx))
		_, ok := svc.User(ctx)
		assert.True(t, ok)
	})

	t.Run("FailureIsLogged", func(t *testing.T) {
		store := tu.NewFailingStore()
		logger, buf := tu.NewBufferLogger()
		svc := New(store, logger)
		require.NoError(t, svc.Login(ctx, "rory", "pw"))

		store.Fail(kvstore.OpRemove)
		svc.Logout(ctx)
		store.Heal()

		assert.True(t, svc.IsLoggedIn(ctx))
		assert.Contains(t, buf.String(), "logout failed")
	})
}

func TestIsLoggedIn(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	assert.False(t, svc.IsLoggedIn(ctx))

	require.NoError(t, store.Set(ctx, LoggedInKey, "false"))
	assert.False(t, svc.IsLoggedIn(ctx))

	require.NoError(t, store.Set(ctx, LoggedInKey, "true"))
	assert.True(t, svc.IsLoggedIn(ctx))

	store.Fail(kvstore.OpGet)
	assert.False(t, svc.IsLoggedIn(ctx))
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("NoUser", func(t *testing.T) {
		svc, _ := newService(t)
		assert.False(t, svc.UpdateUser(ctx, UserPatch{Name: "x"}))
	})

	t.Run("MergesNonEmpty", func(t *testing.T) {
		svc, _ := newService(t)
		require.NoError(t, svc.SignUp(ctx, validForm()))

		require.True(t, svc.UpdateUser(ctx, UserPatch{Name: " Amelia Pond ", Email: ""}))
		user, _ := svc.User(ctx)
		assert.Equal(t, "Amelia Pond", user.Name)
		assert.Equal(t, "amy@example.com", user.Email)
		assert.Equal(t, "Amy Pond", user.Username)
	})

	t.Run("WriteFailure", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.SignUp(ctx, validForm()))
		store.Fail(kvstore.OpSet)

		assert.False(t, svc.UpdateUser(ctx, UserPatch{Name: "x"}))
	})
}
