// Package model holds the typed request payloads for the web layer. Each
// payload is validated explicitly before any domain entity is constructed.
package model

import "errors"

type (
	RegisterUserReq struct {
		Name     string `json:"name" form:"name"`
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	LoginReq struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	// CreateAcronymReq carries no owner: the owner is always the
	// authenticated session user.
	CreateAcronymReq struct {
		Short string `json:"short" form:"short"`
		Long  string `json:"long" form:"long"`
	}

	EditAcronymReq struct {
		Short string `json:"short" form:"short"`
		Long  string `json:"long" form:"long"`
	}

	CreateCategoryReq struct {
		Name string `json:"name" form:"name"`
	}

	AttachCategoryReq struct {
		CategoryID int64 `json:"categoryID" form:"categoryID"`
	}
)

func (r *RegisterUserReq) Validate() error {
	if r.Name == "" || r.Username == "" || r.Password == "" {
		return errors.New("name, username and password are required")
	}
	return nil
}

func (r *LoginReq) Validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

func (r *CreateAcronymReq) Validate() error {
	if r.Short == "" || r.Long == "" {
		return errors.New("short and long are required")
	}
	return nil
}

func (r *EditAcronymReq) Validate() error {
	if r.Short == "" || r.Long == "" {
		return errors.New("short and long are required")
	}
	return nil
}

func (r *CreateCategoryReq) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
