package authority

// == root ==
type CreateRootCARequest struct {
	Passphrase string `json:"passphrase,omitempty" example:"changeit"`
	Overwrite  bool   `json:"overwrite,omitempty" example:"false"`
}

// == intermediate ==
type CreateInterCARequest struct {
	RootPassphrase string `json:"root_passphrase,omitempty" example:"changeit"`
	Passphrase     string `json:"passphrase,omitempty" example:"changeit"`
	Overwrite      bool   `json:"overwrite,omitempty" example:"false"`
}
