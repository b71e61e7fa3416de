// internal/app/features/aboutpage/types.go
package aboutpage

import "github.com/buildright/buildright-api/internal/domain/models"

// CreateRequest is the gated POST /about body: a full document for the
// one-time explicit create.
type CreateRequest struct {
	Story      models.StorySection      `json:"story"`
	Leadership models.LeadershipSection `json:"leadership"`
	Team       []models.TeamMember      `json:"team"`
	Values     []models.CompanyValue    `json:"values"`
	Stats      []models.Stat            `json:"stats"`
}

// StoryRequest is the PUT /about/story body. Omitted fields are left
// unchanged.
type StoryRequest struct {
	Heading *string `json:"heading"`
	Body    *string `json:"body"`
	Image   *string `json:"image"`
}

// LeadershipRequest is the PUT /about/leadership body.
type LeadershipRequest struct {
	Heading    *string `json:"heading"`
	Subheading *string `json:"subheading"`
}

// TeamMemberRequest is the POST /about/team body. An ID matching an
// existing member replaces it in place; otherwise a new entry is appended
// with a server-generated id.
type TeamMemberRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Photo    string `json:"photo"`
	Bio      string `json:"bio"`
}

// ValueRequest is the POST /about/values body.
type ValueRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
}

// StatRequest is the POST /about/stats and PUT /about/stats/:index body.
type StatRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}
