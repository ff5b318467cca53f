// Package service coordinates acronym mutations and resolves the relations
// between acronyms, their owning users and their categories.
package service

import (
	"context"

	"github.com/mcmikius/TILApp/pkg/core/acronym/model"
	"github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao"
	categorymodel "github.com/mcmikius/TILApp/pkg/core/category/model"
	categorydao "github.com/mcmikius/TILApp/pkg/core/category/repository/dao"
	usermodel "github.com/mcmikius/TILApp/pkg/core/user/model"
	userdao "github.com/mcmikius/TILApp/pkg/core/user/repository/dao"
)

type AcronymService struct {
	acronyms   dao.AcronymRepository
	users      userdao.UserRepository
	categories categorydao.CategoryRepository
}

func NewAcronymService(acronyms dao.AcronymRepository, users userdao.UserRepository, categories categorydao.CategoryRepository) *AcronymService {
	return &AcronymService{
		acronyms:   acronyms,
		users:      users,
		categories: categories,
	}
}

// Create persists a new acronym owned by ownerID. The owner must exist; the
// handler obtains ownerID from the authenticated session.
func (s *AcronymService) Create(ctx context.Context, short, long, ownerID string) (model.Acronym, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return model.Acronym{}, err
	}

	acronym := model.Acronym{
		Short:  short,
		Long:   long,
		UserID: ownerID,
	}
	if err := s.acronyms.Create(ctx, &acronym); err != nil {
		return model.Acronym{}, err
	}
	return acronym, nil
}

// Update overwrites short/long and stamps editorID as the owner. Edits by a
// user other than the original owner therefore reassign ownership to the
// editor. That mirrors the reference behavior; see UpdateReassignsOwnership
// in the tests.
func (s *AcronymService) Update(ctx context.Context, id int64, short, long, editorID string) (model.Acronym, error) {
	acronym, err := s.acronyms.GetByID(ctx, id)
	if err != nil {
		return model.Acronym{}, err
	}

	if _, err := s.users.GetByID(ctx, editorID); err != nil {
		return model.Acronym{}, err
	}

	acronym.Short = short
	acronym.Long = long
	acronym.UserID = editorID

	if err := s.acronyms.Update(ctx, &acronym); err != nil {
		return model.Acronym{}, err
	}
	return acronym, nil
}

// Delete removes the acronym and its pivot rows. Pivots go first so a crash
// between the two calls can not leave edges pointing at a deleted acronym;
// the pair is still not transactional.
func (s *AcronymService) Delete(ctx context.Context, id int64) error {
	if _, err := s.acronyms.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.acronyms.DeletePivotsOf(ctx, id); err != nil {
		return err
	}
	return s.acronyms.Delete(ctx, id)
}

// AttachCategory records one acronym/category edge. Both endpoints must
// exist. Duplicate edges for the same pair are tolerated.
func (s *AcronymService) AttachCategory(ctx context.Context, acronymID, categoryID int64) error {
	if _, err := s.acronyms.GetByID(ctx, acronymID); err != nil {
		return err
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return err
	}

	pivot := model.AcronymCategoryPivot{
		AcronymID:  acronymID,
		CategoryID: categoryID,
	}
	return s.acronyms.AttachCategory(ctx, &pivot)
}

func (s *AcronymService) GetByID(ctx context.Context, id int64) (model.Acronym, error) {
	return s.acronyms.GetByID(ctx, id)
}

func (s *AcronymService) List(ctx context.Context) ([]model.Acronym, error) {
	return s.acronyms.List(ctx)
}

// ByUser lists the acronyms owned by userID. The user must exist.
func (s *AcronymService) ByUser(ctx context.Context, userID string) ([]model.Acronym, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.acronyms.ListByUser(ctx, userID)
}

// ByCategory lists the acronyms tagged with categoryID: one pivot query for
// the edge ids, one fetch for the referenced rows.
func (s *AcronymService) ByCategory(ctx context.Context, categoryID int64) ([]model.Acronym, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	ids, err := s.acronyms.AcronymIDsOf(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.acronyms.ListByIDs(ctx, ids)
}

// CategoriesOf lists the categories attached to acronymID.
func (s *AcronymService) CategoriesOf(ctx context.Context, acronymID int64) ([]categorymodel.Category, error) {
	if _, err := s.acronyms.GetByID(ctx, acronymID); err != nil {
		return nil, err
	}

	ids, err := s.acronyms.CategoryIDsOf(ctx, acronymID)
	if err != nil {
		return nil, err
	}
	return s.categories.ListByIDs(ctx, ids)
}

// OwnerOf resolves the acronym's owning user as a public projection. A
// missing owner row is a referential-integrity fault and surfaces as not
// found.
func (s *AcronymService) OwnerOf(ctx context.Context, acronymID int64) (usermodel.Public, error) {
	acronym, err := s.acronyms.GetByID(ctx, acronymID)
	if err != nil {
		return usermodel.Public{}, err
	}

	owner, err := s.users.GetByID(ctx, acronym.UserID)
	if err != nil {
		return usermodel.Public{}, err
	}
	return owner.ToPublic(), nil
}
