package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	acronymimpl "github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao/impl"
	"github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categoryimpl "github.com/mcmikius/TILApp/pkg/core/category/repository/dao/impl"
	categoryservice "github.com/mcmikius/TILApp/pkg/core/category/service"
	usermodel "github.com/mcmikius/TILApp/pkg/core/user/model"
	userimpl "github.com/mcmikius/TILApp/pkg/core/user/repository/dao/impl"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
)

type fixture struct {
	users      *userimpl.MemoryUserRepository
	categories *categoryimpl.MemoryCategoryRepository
	acronyms   *acronymimpl.MemoryAcronymRepository

	userSvc     *userservice.UserService
	categorySvc *categoryservice.CategoryService
	acronymSvc  *service.AcronymService
}

func newFixture() *fixture {
	users := userimpl.NewMemoryUserRepository()
	categories := categoryimpl.NewMemoryCategoryRepository()
	acronyms := acronymimpl.NewMemoryAcronymRepository()

	return &fixture{
		users:       users,
		categories:  categories,
		acronyms:    acronyms,
		userSvc:     userservice.NewUserService(users),
		categorySvc: categoryservice.NewCategoryService(categories),
		acronymSvc:  service.NewAcronymService(acronyms, users, categories),
	}
}

func (f *fixture) addUser(t *testing.T, name, username string) usermodel.User {
	t.Helper()
	user := usermodel.User{Name: name, Username: username, Password: "digest"}
	require.NoError(t, f.users.Create(context.Background(), &user))
	return user
}

func TestCreateOwnershipRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	jane := f.addUser(t, "Jane", "jane1")

	acronym, err := f.acronymSvc.Create(ctx, "OMG", "Oh My God", jane.ID)
	require.NoError(t, err)
	assert.NotZero(t, acronym.ID)
	assert.Equal(t, jane.ID, acronym.UserID)

	owner, err := f.acronymSvc.OwnerOf(ctx, acronym.ID)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, owner.ID)
	assert.Equal(t, "jane1", owner.Username)
}

func TestCreateRequiresExistingOwner(t *testing.T) {
	f := newFixture()

	_, err := f.acronymSvc.Create(context.Background(), "OMG", "Oh My God", "nobody")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Zero(t, f.acronyms.Len())
}

func TestAssociationRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	jane := f.addUser(t, "Jane", "jane1")

	acronym, err := f.acronymSvc.Create(ctx, "OMG", "Oh My God", jane.ID)
	require.NoError(t, err)

	category, err := f.categorySvc.Create(ctx, "Texting")
	require.NoError(t, err)

	require.NoError(t, f.acronymSvc.AttachCategory(ctx, acronym.ID, category.ID))

	categories, err := f.acronymSvc.CategoriesOf(ctx, acronym.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, category.ID, categories[0].ID)

	acronyms, err := f.acronymSvc.ByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, acronyms, 1)
	assert.Equal(t, acronym.ID, acronyms[0].ID)
}

func TestAttachCategoryRequiresBothEndpoints(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	jane := f.addUser(t, "Jane", "jane1")

	acronym, err := f.acronymSvc.Create(ctx, "OMG", "Oh My God", jane.ID)
	require.NoError(t, err)

	category, err := f.categorySvc.Create(ctx, "Texting")
	require.NoError(t, err)

	err = f.acronymSvc.AttachCategory(ctx, acronym.ID, category.ID+99)
	assert.True(t, apperrors.IsNotFound(err))

	err = f.acronymSvc.AttachCategory(ctx, acronym.ID+99, category.ID)
	assert.True(t, apperrors.IsNotFound(err))

	assert.Zero(t, f.acronyms.PivotCount())
}

func TestDuplicateEdgesTolerated(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	jane := f.addUser(t, "Jane", "jane1")

	acronym, err := f.acronymSvc.Create(ctx, "OMG", "Oh My God", jane.ID)
	require.NoError(t, err)

	category, err := f.categorySvc.Create(ctx, "Texting")
	require.NoError(t, err)

	require.NoError(t, f.acronymSvc.AttachCategory(ctx, acronym.ID, category.ID))
	require.NoError(t, f.acronymSvc.AttachCategory(ctx, acronym.ID, category.ID))
	assert.Equal(t, 2, f.acronyms.PivotCount())

	// Resolution collapses the duplicate edge into a single row.
	categories, err := f.acronymSvc.CategoriesOf(ctx, acronym.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

// TestUpdateReassignsOwnership documents the permissive edit policy: an edit
// by another authenticated user transfers ownership to the editor.
func TestUpdateReassignsOwnership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.addUser(t, "Alice", "alice")
	bob := f.addUser(t, "Bob", "bob")

	acronym, err := f.acronymSvc.Create(ctx, "BRB", "Be Right Back", alice.ID)
	require.NoError(t, err)

	updated, err := f.acronymSvc.Update(ctx, acronym.ID, "BRB", "Be Right Back!", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.UserID)

	owner, err := f.acronymSvc.OwnerOf(ctx, acronym.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, owner.ID)
}

func TestUpdateMissingAcronym(t *testing.T) {
	f := newFixture()
	jane := f.addUser(t, "Jane", "jane1")

	_, err := f.acronymSvc.Update(context.Background(), 42, "OMG", "Oh My God", jane.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteRemovesPivotsFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	jane := f.addUser(t, "Jane", "jane1")

	acronym, err := f.acronymSvc.Create(ctx, "OMG", "Oh My God", jane.ID)
	require.NoError(t, err)

	for _, name := range []string{"Texting", "Slang"} {
		category, err := f.categorySvc.Create(ctx, name)
		require.NoError(t, err)
		require.NoError(t, f.acronymSvc.AttachCategory(ctx, acronym.ID, category.ID))
	}
	require.Equal(t, 2, f.acronyms.PivotCount())

	require.NoError(t, f.acronymSvc.Delete(ctx, acronym.ID))

	assert.Zero(t, f.acronyms.PivotCount())
	_, err = f.acronymSvc.GetByID(ctx, acronym.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

// TestRegisterLoginCreateScenario walks the register/login/create/list flow
// end to end at the service level.
func TestRegisterLoginCreateScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	jane, err := f.userSvc.Register(ctx, "Jane", "jane1", "secret")
	require.NoError(t, err)

	authed, err := f.userSvc.Authenticate(ctx, "jane1", "secret")
	require.NoError(t, err)
	require.Equal(t, jane.ID, authed.ID)

	_, err = f.acronymSvc.Create(ctx, "OMG", "Oh My God", authed.ID)
	require.NoError(t, err)

	acronyms, err := f.acronymSvc.ByUser(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, acronyms, 1)
	assert.Equal(t, "OMG", acronyms[0].Short)

	_, err = f.userSvc.Authenticate(ctx, "jane1", "wrong")
	assert.ErrorIs(t, err, userservice.ErrInvalidCredentials)
}
