// internal/domain/models/singleton.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Homepage is an enforced singleton: at most one document ever exists in
// its collection. The first public read materializes a hard-coded default.
// Sections are patched independently; siblings are never touched.
type Homepage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Hero       HeroSection        `bson:"hero" json:"hero"`
	About      AboutSection       `bson:"about" json:"about"`
	ContactCTA ContactCTASection  `bson:"contact_cta" json:"contactCTA"`
	Services   []HomepageService  `bson:"services,omitempty" json:"services,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HeroSection is the homepage hero banner.
type HeroSection struct {
	Heading    string `bson:"heading" json:"heading"`
	Subheading string `bson:"subheading" json:"subheading"`
	CTAText    string `bson:"cta_text" json:"ctaText"`
	CTALink    string `bson:"cta_link" json:"ctaLink"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
}

// AboutSection is the short company blurb on the homepage.
type AboutSection struct {
	Heading string `bson:"heading" json:"heading"`
	Body    string `bson:"body" json:"body"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

// ContactCTASection is the call-to-action strip above the footer.
type ContactCTASection struct {
	Heading    string `bson:"heading" json:"heading"`
	Subheading string `bson:"subheading" json:"subheading"`
	ButtonText string `bson:"button_text" json:"buttonText"`
}

// HomepageService is a service teaser embedded in the homepage document.
// It behaves as an independent ordered list: add-or-update-by-id and
// delete-by-id, with ids generated server-side.
type HomepageService struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// About is the second enforced singleton, backing the about page.
type About struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Story      StorySection       `bson:"story" json:"story"`
	Leadership LeadershipSection  `bson:"leadership" json:"leadership"`
	Team       []TeamMember       `bson:"team,omitempty" json:"team,omitempty"`
	Values     []CompanyValue     `bson:"values,omitempty" json:"values,omitempty"`
	Stats      []Stat             `bson:"stats,omitempty" json:"stats,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// StorySection is the company history block.
type StorySection struct {
	Heading string `bson:"heading" json:"heading"`
	Body    string `bson:"body" json:"body"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

// LeadershipSection introduces the team list.
type LeadershipSection struct {
	Heading    string `bson:"heading" json:"heading"`
	Subheading string `bson:"subheading" json:"subheading"`
}

// TeamMember is an embedded team entry on the about page.
type TeamMember struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Position string `bson:"position" json:"position"`
	Photo    string `bson:"photo,omitempty" json:"photo,omitempty"`
	Bio      string `bson:"bio,omitempty" json:"bio,omitempty"`
}

// CompanyValue is an embedded value statement on the about page.
type CompanyValue struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Stat is a headline figure ("250+ projects delivered"). Stats carry no id;
// they are addressed by index.
type Stat struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}
