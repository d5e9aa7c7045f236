package request

import (
	"strings"

	"github.com/mcubed/cubed/internal/model"
)

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Password string `json:"password"`
}

// CreatePasswordRequest is the request body for creating the admin account
type CreatePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the request body for changing the admin password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AlternateNameRequest is the edit form for an alternate name
type AlternateNameRequest struct {
	ID           string `json:"id"`
	ContestName  string `json:"contestName"`
	ExternalName string `json:"externalName"`
}

// Model converts the form to a record
func (r AlternateNameRequest) Model() model.AlternateName {
	return model.AlternateName{ID: r.ID, ContestName: r.ContestName, ExternalName: r.ExternalName}
}

// CategoryRequest is the edit form for a wheel category
type CategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Model converts the form to a record
func (r CategoryRequest) Model() model.WheelCategory {
	return model.WheelCategory{ID: r.ID, Name: r.Name}
}

// WordRequest is the edit form for a wheel word. The category comes from the path.
type WordRequest struct {
	ID   string `json:"id"`
	Word string `json:"word"`
}

// Model converts the form to a record in the given category
func (r WordRequest) Model(categoryID string) model.WheelWord {
	return model.WheelWord{ID: r.ID, CategoryID: categoryID, Word: r.Word}
}

// ApproveManyRequest carries word ids, comma-separated
type ApproveManyRequest struct {
	IDs string `json:"ids"`
}

// SplitIDs returns the non-empty ids
func (r ApproveManyRequest) SplitIDs() []string {
	var ids []string
	for _, id := range strings.Split(r.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ReportMissingNameRequest is the request body for reporting an unmapped feed name
type ReportMissingNameRequest struct {
	Name  string      `json:"name"`
	Team  string      `json:"team"`
	Sport model.Sport `json:"sport"`
}
