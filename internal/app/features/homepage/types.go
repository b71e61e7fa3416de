// internal/app/features/homepage/types.go
package homepage

import "github.com/buildright/buildright-api/internal/domain/models"

// CreateRequest is the gated POST /homepage body: a full document for the
// one-time explicit create. Most deployments never call this and rely on
// the lazily materialized default instead.
type CreateRequest struct {
	Hero       models.HeroSection       `json:"hero"`
	About      models.AboutSection      `json:"about"`
	ContactCTA models.ContactCTASection `json:"contactCTA"`
	Services   []models.HomepageService `json:"services"`
}

// HeroRequest is the PUT /homepage/hero body. Omitted fields are left
// unchanged.
type HeroRequest struct {
	Heading    *string `json:"heading"`
	Subheading *string `json:"subheading"`
	CTAText    *string `json:"ctaText"`
	CTALink    *string `json:"ctaLink"`
	Image      *string `json:"image"`
}

// AboutRequest is the PUT /homepage/about body.
type AboutRequest struct {
	Heading *string `json:"heading"`
	Body    *string `json:"body"`
	Image   *string `json:"image"`
}

// ContactCTARequest is the PUT /homepage/contact-cta body.
type ContactCTARequest struct {
	Heading    *string `json:"heading"`
	Subheading *string `json:"subheading"`
	ButtonText *string `json:"buttonText"`
}

// ServiceRequest is the POST /homepage/services body. An ID matching an
// existing embedded service replaces it in place; otherwise a new entry is
// appended with a server-generated id.
type ServiceRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
}
